package fault

// An Option sets an optional attribute on a Fault when constructing it.
type Option func(*options)

type options struct {
	status int
	header map[string]string
	tmpl   *Template
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStatus sets the HTTP status code of the Fault.
func WithStatus(code int) Option {
	return func(o *options) {
		o.status = code
	}
}

// WithHeader adds a response header to the Fault.
func WithHeader(key, val string) Option {
	return func(o *options) {
		if o.header == nil {
			o.header = make(map[string]string)
		}
		o.header[key] = val
	}
}

// WithHeaders adds every key-value pair in h as a response header to the Fault.
func WithHeaders(h map[string]string) Option {
	return func(o *options) {
		for k, v := range h {
			WithHeader(k, v)(o)
		}
	}
}

// WithTemplate sets the error template, and its parameters,
// to render when the client accepts HTML.
func WithTemplate(name string, params map[string]any) Option {
	return func(o *options) {
		o.tmpl = &Template{Name: name, Params: params}
	}
}
