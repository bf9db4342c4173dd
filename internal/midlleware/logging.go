package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestLog tags every request with an ID and logs method, path and
// duration once the handler returns.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s %s", id, r.Method, r.URL.Path, time.Since(start))
	})
}
