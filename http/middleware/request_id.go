package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/terminus"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under terminus.RequestIDKey
// and echoes it back in the RequestIDHeader response header.
//
// A request arriving with a valid uuid in RequestIDHeader keeps it.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), terminus.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// GetRequestID returns the request ID RequestID stored in ctx, if any.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(terminus.RequestIDKey).(string)
	return id
}
