package fault

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// DefaultMessage is the message used when a Fault supplies none.
const DefaultMessage = "Server error occurred"

// A Fault is an error the terminal error stage knows how to answer.
//
// Only *Exception and *Plain implement Fault.
type Fault interface {
	error

	// Status is the HTTP status code to respond with. Zero means unset.
	Status() int

	// Header is the set of headers to add to the response.
	Header() map[string]string

	// Template is the error template to render for HTML clients, if any.
	Template() *Template

	fault()
}

// A Template names an error template and the parameters it's rendered with.
type Template struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// An Exception is a Fault carrying a message and a stack trace.
type Exception struct {
	cause error
	stack stackTracer
	msg   string
	opts  options
}

// New constructs an *Exception, capturing the stack at the call site.
func New(msg string, opts ...Option) *Exception {
	st, _ := pkgerrors.New(msg).(stackTracer)
	return &Exception{
		stack: st,
		msg:   msg,
		opts:  newOptions(opts),
	}
}

// Errorf formats according to the format specifier and constructs an *Exception from it.
func Errorf(format string, args ...any) *Exception {
	return New(fmt.Sprintf(format, args...))
}

// Wrap constructs an *Exception from err, whose message becomes the Exception's message.
//
// If err already carries a stack trace from github.com/pkg/errors, that stack is kept.
// Otherwise, the stack is captured at the call site.
//
// If err is nil, Wrap returns nil.
func Wrap(err error, opts ...Option) *Exception {
	if err == nil {
		return nil
	}

	var st stackTracer
	if !errors.As(err, &st) {
		st, _ = pkgerrors.WithStack(err).(stackTracer)
	}

	return &Exception{
		cause: err,
		stack: st,
		msg:   err.Error(),
		opts:  newOptions(opts),
	}
}

// Error implements error.
func (e *Exception) Error() string { return e.msg }

// Message is the human-readable message of the Exception.
func (e *Exception) Message() string { return e.msg }

// Stack is the message followed by the stack trace captured building the Exception.
func (e *Exception) Stack() string {
	if e.stack == nil {
		return e.msg
	}

	return fmt.Sprintf("%s%+v", e.msg, e.stack.StackTrace())
}

// Unwrap exposes the error the Exception was built from, if any.
func (e *Exception) Unwrap() error { return e.cause }

func (e *Exception) Status() int               { return e.opts.status }
func (e *Exception) Header() map[string]string { return e.opts.header }
func (e *Exception) Template() *Template       { return e.opts.tmpl }
func (*Exception) fault()                      {}

// A Plain is a Fault carrying a client-facing message and nothing else.
//
// A Plain decodes from and encodes to JSON objects like:
//
//	{"error": "not found", "status": 404}
type Plain struct {
	Msg     string            `json:"error"`
	Code    int               `json:"status,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Tmpl    *Template         `json:"template,omitempty"`
}

// NewPlain constructs a *Plain with msg.
func NewPlain(msg string, opts ...Option) *Plain {
	o := newOptions(opts)
	return &Plain{Msg: msg, Code: o.status, Headers: o.header, Tmpl: o.tmpl}
}

// Error implements error.
func (p *Plain) Error() string { return p.Msg }

func (p *Plain) Status() int               { return p.Code }
func (p *Plain) Header() map[string]string { return p.Headers }
func (p *Plain) Template() *Template       { return p.Tmpl }
func (*Plain) fault()                      {}

// From finds the first Fault in err's chain.
// If there is none, err is wrapped into an *Exception.
//
// If err is nil, From returns nil.
func From(err error) Fault {
	if err == nil {
		return nil
	}

	var f Fault
	if errors.As(err, &f) {
		return f
	}

	return Wrap(err)
}
