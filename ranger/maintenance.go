package ranger

import (
	"net/http"

	"github.com/xy-planning-network/terminus/fault"
	"github.com/xy-planning-network/terminus/http/resp"
)

const (
	// MaintenanceTemplate names the error template rendered in maintenance mode.
	MaintenanceTemplate = "maintenance"

	maintenanceRetryAfter = "600"
)

// MaintModeHandler answers every request with a 503 plain fault,
// asking clients to retry in ten minutes.
func MaintModeHandler() resp.HandlerFunc {
	return func(_ http.ResponseWriter, _ *http.Request) error {
		return fault.NewPlain(
			"down for maintenance",
			fault.WithStatus(http.StatusServiceUnavailable),
			fault.WithHeader("Retry-After", maintenanceRetryAfter),
			fault.WithTemplate(MaintenanceTemplate, map[string]any{"retryAfter": maintenanceRetryAfter}),
		)
	}
}
