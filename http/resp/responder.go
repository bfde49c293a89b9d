package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/xy-planning-network/terminus/fault"
	"github.com/xy-planning-network/terminus/http/req"
	"github.com/xy-planning-network/terminus/http/template"
	"github.com/xy-planning-network/terminus/logger"
	"github.com/xy-planning-network/terminus/metrics"
)

const (
	responderFrames = 0

	htmlMediaType = "text/html; charset=UTF-8"
	jsonMediaType = "application/json; charset=UTF-8"
)

// Responder answers failed HTTP requests.
// It is the terminal stage of a request whose handling returned an error:
// nothing runs after it.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
type Responder struct {
	logger logger.Logger

	// Renders error templates for clients accepting HTML
	renderer template.Renderer

	// Suffix of error template files
	ext string

	// Counts responses, if set
	metrics *metrics.Recorder

	// Records errors on the request's span
	tracing bool

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	// ranging over opts may or may not overwrite defaults
	d := &Responder{
		ext:  template.Ext,
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.renderer == nil {
		d.renderer = template.NewParser([]fs.FS{os.DirFS(".")})
	}

	return d
}

// A HandlerFunc handles an HTTP request, returning any error it could not handle.
//
// A HandlerFunc returning an error must not have written to the http.ResponseWriter.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h into an http.Handler answering any error h returns with doer.Err.
func (doer *Responder) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			doer.Err(w, r, err)
		}
	})
}

// Err responds to the request with err.
//
// err becomes a fault.Fault by way of fault.From.
// An exception-shaped fault has its message and then its stack logged;
// a plain fault is not logged.
//
// The response's status code is the fault's, http.StatusInternalServerError if unset.
// Every header the fault carries is set on the response.
//
// When the fault names a template and r accepts HTML,
// that template is rendered with its params as the response body.
// Otherwise, the body is the JSON object:
//
//	{"error": "the message"}
//
// The message is the exception's message or the plain fault's error,
// fault.DefaultMessage if empty.
//
// If the template cannot be rendered, the render error is logged
// and the JSON body is sent instead, with the same status code.
//
// r may be nil, in which case HTML is never rendered.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	n := fault.Normalize(fault.From(err))

	if n.Exception != nil {
		doer.logger.Error(n.Exception.Message(), newLogContext(r, n.Exception, nil))
		doer.logger.Error(n.Exception.Stack(), nil)
	}

	doer.trace(r, n)

	for k, v := range n.Header {
		w.Header().Set(k, v)
	}

	if n.Template != nil && req.AcceptsHTML(r) {
		err := doer.html(w, n)
		if err == nil {
			doer.observe(n, metrics.FormatHTML)
			return
		}

		err = fmt.Errorf("cannot render %q: %w", n.Template.Name+doer.ext, err)
		doer.logger.Error(err.Error(), newLogContext(r, err, nil))
	}

	doer.json(w, n)
	doer.observe(n, metrics.FormatJSON)
}

// html renders the template of n, writing it as the response.
// html writes nothing to w if rendering fails.
func (doer *Responder) html(w http.ResponseWriter, n fault.Normalized) error {
	if doer.renderer == nil {
		return fmt.Errorf("%w: no renderer", ErrBadConfig)
	}

	b, err := doer.renderer.Render(n.Template.Name+doer.ext, n.Template.Params)
	if err != nil {
		return err
	}

	setContentType(w, htmlMediaType)
	w.WriteHeader(n.StatusCode)
	if _, err := w.Write(b); err != nil {
		doer.logger.Warn(fmt.Sprintf("cannot write html response: %s", err), nil)
	}

	return nil
}

type jsonSchema struct {
	Error string `json:"error"`
}

// json writes {"error": n.Message} as the response.
func (doer *Responder) json(w http.ResponseWriter, n fault.Normalized) {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	// NOTE: a struct holding one string always encodes.
	_ = json.NewEncoder(b).Encode(jsonSchema{Error: n.Message})

	setContentType(w, jsonMediaType)
	w.WriteHeader(n.StatusCode)
	if _, err := b.WriteTo(w); err != nil {
		doer.logger.Warn(fmt.Sprintf("cannot write json response: %s", err), nil)
	}
}

// observe counts the response, when metrics are configured.
func (doer *Responder) observe(n fault.Normalized, format string) {
	if doer.metrics == nil {
		return
	}

	shape := metrics.ShapePlain
	if n.Exception != nil {
		shape = metrics.ShapeException
	}

	doer.metrics.Observe(n.StatusCode, shape, format)
}

// trace records n on the span in r's context, when tracing is enabled.
func (doer *Responder) trace(r *http.Request, n fault.Normalized) {
	if !doer.tracing || r == nil {
		return
	}

	span := trace.SpanFromContext(r.Context())
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int("http.response.status_code", n.StatusCode))
	if n.Exception != nil {
		span.RecordError(n.Exception)
	}

	if n.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, n.Message)
	}
}
