package middlewares

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// headerTracker notes whether the handler already started the response.
type headerTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *headerTracker) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *headerTracker) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tracker := &headerTracker{ResponseWriter: w}

		defer func() {
			if err := recover(); err != nil {
				slog.Error("Recovered from panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", err,
					"stack", string(debug.Stack()),
				)

				if tracker.wroteHeader {
					return
				}
				writeError(w, "sorry, something went wrong on our side, please try again in a moment", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(tracker, r)
	})
}
