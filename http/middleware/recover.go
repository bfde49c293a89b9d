package middleware

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/terminus/fault"
)

// Recover turns a panic in the handler into an exception answered by rp.
//
// A panic with a fault.Fault is answered as is.
// A panic with http.ErrAbortHandler is left for net/http to handle.
// A panic after the handler began writing its response cannot be answered;
// Recover panics with http.ErrAbortHandler so net/http drops the connection
// instead of completing a partial response.
//
// If rp is nil, NoopAdapter returns and this middleware does nothing.
func Recover(rp errResponder) Adapter {
	if rp == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w}
			defer func() {
				val := recover()
				if val == nil {
					return
				}

				err, ok := val.(error)
				if ok && errors.Is(err, http.ErrAbortHandler) {
					panic(val)
				}

				if sw.written() {
					panic(http.ErrAbortHandler)
				}

				if ok {
					var f fault.Fault
					if !errors.As(err, &f) {
						err = fault.Wrap(err)
					}

					rp.Err(sw, r, err)
					return
				}

				rp.Err(sw, r, fault.Errorf("panic: %v", val))
			}()

			h.ServeHTTP(sw, r)
		})
	}
}
