package healthcheck

import "net/http"

// Handler answers the status check of a running daemon
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		if r.Method != http.MethodHead {
			w.Write([]byte("success\n"))
		}
	})
}
