package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/xy-planning-network/terminus/http/middleware"

// Trace starts a server span for each request, ending it once the request is answered.
// The span rides in the request's context, where the error responder finds it.
//
// If tp is nil, NoopAdapter returns and this middleware does nothing.
func Trace(tp trace.TracerProvider) Adapter {
	if tp == nil {
		return NoopAdapter
	}

	tracer := tp.Tracer(tracerName)
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(
				r.Context(),
				r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
