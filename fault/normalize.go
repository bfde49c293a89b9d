package fault

import "net/http"

// The range of status codes http.ResponseWriter.WriteHeader accepts.
const (
	minStatus = 100
	maxStatus = 999
)

// A Normalized is the response a Fault resolves to.
type Normalized struct {
	StatusCode int
	Message    string
	Header     map[string]string
	Template   *Template

	// Exception is set when the Fault is exception-shaped.
	Exception *Exception
}

// Normalize resolves f into the status code, message, headers and template to respond with.
//
// A zero status, or one net/http cannot write, becomes http.StatusInternalServerError.
// An empty message becomes DefaultMessage.
// A nil f normalizes to an empty Exception.
func Normalize(f Fault) Normalized {
	n := Normalized{StatusCode: http.StatusInternalServerError, Message: DefaultMessage}

	var msg string
	switch t := f.(type) {
	case *Exception:
		if t == nil {
			return n
		}
		n.Exception = t
		msg = t.Message()
	case *Plain:
		if t == nil {
			return n
		}
		msg = t.Msg
	default:
		return n
	}

	if code := f.Status(); code >= minStatus && code <= maxStatus {
		n.StatusCode = code
	}

	if msg != "" {
		n.Message = msg
	}

	if h := f.Header(); len(h) > 0 {
		n.Header = make(map[string]string, len(h))
		for k, v := range h {
			n.Header[k] = v
		}
	}

	n.Template = f.Template()

	return n
}
