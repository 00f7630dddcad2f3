package config

import (
	"errors"
	"strings"
)

var errMultiStringSetEmptyValue = errors.New("value cannot be empty")

const defaultSeparator = ","

// MultiStringFlag is a flag.Value that can be set multiple times, each value
// possibly holding several separated items
//
// e.g.:
//
//	-listen-http 127.0.0.1:80 -listen-http [::1]:80
//	-header "X-Frame-Options: DENY;;Referrer-Policy: strict-origin"
type MultiStringFlag struct {
	value     []string
	separator string
}

// String returns the values joined with the separator
func (s *MultiStringFlag) String() string {
	return strings.Join(s.value, s.sep())
}

// Set appends value
func (s *MultiStringFlag) Set(value string) error {
	if value == "" {
		return errMultiStringSetEmptyValue
	}

	s.value = append(s.value, value)
	return nil
}

// Split returns every item of every value
func (s *MultiStringFlag) Split() (result []string) {
	for _, str := range s.value {
		result = append(result, strings.Split(str, s.sep())...)
	}

	return
}

// Len returns the number of times the flag was set
func (s *MultiStringFlag) Len() int {
	return len(s.value)
}

func (s *MultiStringFlag) sep() string {
	if s.separator == "" {
		return defaultSeparator
	}

	return s.separator
}
