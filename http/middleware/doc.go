/*
The middleware package defines what a middleware is in terminus and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- RateLimit
- Recover
- ReportPanic
- RequestID
- Trace

Middlewares rejecting a request, or recovering from a panic,
hand a fault to the error responder rather than writing a response themselves.

Due to the amount of configuration required, middleware does not provide a default middleware chain
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors(middleware.DefaultRate, middleware.DefaultBurst)
	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.Recover(responder),
		middleware.ReportPanic(env),
		middleware.RateLimit(responder, vs),
		middleware.ForceHTTPS(env, responder),
		middleware.CORS(origin),
	}
*/
package middleware
