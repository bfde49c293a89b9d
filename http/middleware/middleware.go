package middleware

import (
	"net/http"
)

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// Chain glues the set of adapters to the handler.
// The first adapter is the outermost.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	//NOTE: Loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		if adapters[i] == nil {
			continue
		}
		handler = adapters[i](handler)
	}

	return handler
}

// NoopAdapter passes the request on to the handler untouched.
func NoopAdapter(h http.Handler) http.Handler { return h }

// An errResponder answers a request with an error.
//
// *resp.Responder implements errResponder.
type errResponder interface {
	Err(w http.ResponseWriter, r *http.Request, err error)
}
