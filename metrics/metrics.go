// Package metrics counts the responses the terminal error stage sends.
package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for the shape of the error answered.
const (
	ShapeException = "exception"
	ShapePlain     = "plain"
)

// Label values for the format of the response body.
const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// A Recorder counts error responses by status code, error shape, and body format.
type Recorder struct {
	responses *prometheus.CounterVec
}

// New constructs a *Recorder whose counter is registered with reg.
//
// If reg already holds the counter, the *Recorder shares it.
// If reg is nil, the counter is not registered anywhere.
func New(reg prometheus.Registerer) (*Recorder, error) {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "terminus",
		Name:      "error_responses_total",
		Help:      "Error responses sent, by status code, error shape and body format.",
	}, []string{"code", "shape", "format"})

	if reg != nil {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}

			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			c = existing
		}
	}

	return &Recorder{responses: c}, nil
}

// Observe counts one response.
func (r *Recorder) Observe(code int, shape, format string) {
	if r == nil {
		return
	}

	r.responses.WithLabelValues(strconv.Itoa(code), shape, format).Inc()
}

// Handler exposes the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
