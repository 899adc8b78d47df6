package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const requestIDContextKey contextKey = "request_id"

// RequestIDHeader is the response header carrying the request id
const RequestIDHeader = "X-Request-Id"

// RequestID assigns each request a unique id, echoed in the response header
// and available to downstream handlers and the logging middleware.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the request id from the context, if any
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
