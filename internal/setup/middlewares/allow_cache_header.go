package middlewares

import (
	"fmt"
	"net/http"
	"time"
)

// AllowCacheHeader marks responses as publicly cacheable for maxAge.
// Only use it on routes whose body does not depend on the session.
func AllowCacheHeader(next http.Handler, maxAge time.Duration) http.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", value)
		next.ServeHTTP(w, r)
	})
}
