package resp

import (
	"github.com/xy-planning-network/terminus/http/template"
	"github.com/xy-planning-network/terminus/logger"
	"github.com/xy-planning-network/terminus/metrics"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of logger.Logger in order to log all statements through it.
//
// If no Logger is provided through this option, logger.New configures one.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithMetrics counts every response sent with the *metrics.Recorder.
func WithMetrics(m *metrics.Recorder) ResponderOptFn {
	return func(d *Responder) {
		d.metrics = m
	}
}

// WithRenderer sets the provided implementation of template.Renderer to use for rendering error templates.
//
// If no Renderer is provided through this option, Responder renders templates found in the working directory.
func WithRenderer(r template.Renderer) ResponderOptFn {
	return func(d *Responder) {
		d.renderer = r
	}
}

// WithTemplateExt sets the file extension appended to an error template's name.
//
// The default is template.Ext.
func WithTemplateExt(ext string) ResponderOptFn {
	return func(d *Responder) {
		d.ext = ext
	}
}

// WithTracing records errors on the OpenTelemetry span in the request's context.
func WithTracing() ResponderOptFn {
	return func(d *Responder) {
		d.tracing = true
	}
}
