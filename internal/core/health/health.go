package health

import "net/http"

// Liveness answers /healthz. The process has no external hard dependency:
// upstream outages degrade pages, they do not make the service unhealthy.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

// Ping answers the legacy /ping probe kept for the frontend's uptime checks.
func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	}
}
