package middleware

import (
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/terminus"
)

// ReportPanic reports panics in the handler to Sentry and panics again,
// so an enclosing Recover still answers the request.
//
// ReportPanic belongs after Recover in a Chain.
//
// In development, NoopAdapter returns and this middleware does nothing.
func ReportPanic(env terminus.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
		Timeout:         2 * time.Second,
	})

	return sh.Handle
}
