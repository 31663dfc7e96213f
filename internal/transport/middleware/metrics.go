package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records request counts and latencies by route pattern.
// It must wrap the ServeMux directly: the mux fills r.Pattern on the request
// it receives, and any r.WithContext copy in between would hide it.
func Metrics(observer httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveHTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
