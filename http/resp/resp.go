package resp

import (
	"net/http"

	"github.com/xy-planning-network/terminus/logger"
)

// newLogContext helps structure a logger.LogContext from the provided parts.
func newLogContext(r *http.Request, err error, data map[string]any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	return &logger.LogContext{Request: r, Error: err, Data: data}
}

// setContentType sets the Content-Type header unless one is already set.
func setContentType(w http.ResponseWriter, mediaType string) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", mediaType)
	}
}
