// Package customheaders adds operator configured headers to every response.
package customheaders

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"net/textproto"
	"strings"
)

var errInvalidHeaderParameter = errors.New("invalid syntax specified as header parameter")

// ParseHeaderString parses "Key: Value" strings into headers. Keys are
// canonicalized and repeated keys keep every value.
func ParseHeaderString(customHeaders []string) (http.Header, error) {
	headers := http.Header{}

	for _, keyValueString := range customHeaders {
		tp := textproto.NewReader(bufio.NewReader(strings.NewReader(strings.TrimSpace(keyValueString) + "\n\n")))

		keyValue, err := tp.ReadMIMEHeader()
		if err != nil || len(keyValue) == 0 {
			return nil, fmt.Errorf("%w: %q", errInvalidHeaderParameter, keyValueString)
		}

		for k, v := range keyValue {
			k = textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(k))
			headers[k] = append(headers[k], v...)
		}
	}

	return headers, nil
}

// AddCustomHeaders adds headers to the response
func AddCustomHeaders(w http.ResponseWriter, headers http.Header) {
	for k, v := range headers {
		for _, value := range v {
			w.Header().Add(k, value)
		}
	}
}

// NewMiddleware adds headers to every response before handler runs
func NewMiddleware(handler http.Handler, headers http.Header) http.Handler {
	if len(headers) == 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddCustomHeaders(w, headers)

		handler.ServeHTTP(w, r)
	})
}
