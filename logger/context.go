package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/xy-planning-network/terminus"
)

const (
	callerTmpl = "%s:%d"
	maskVal    = "xxxxx"
)

var maskedHeaders = []string{"Authorization", "Cookie"}

var (
	_ encoding.TextMarshaler = LogContext{}
)

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	//
	// Caller helps goroutines identify the callers of the process that spawned it.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// The request's "Authorization" and "Cookie" headers are masked.
// The request ID and IP address stashed in the request's context are included, when present.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		m["request"] = requestFields(lc.Request)
	}

	return json.Marshal(m)
}

func requestFields(req *http.Request) map[string]any {
	r := map[string]any{"method": req.Method}
	if req.URL != nil {
		r["url"] = req.URL.String()
	}

	header := req.Header.Clone()
	for _, k := range maskedHeaders {
		if header.Get(k) != "" {
			header.Set(k, maskVal)
		}
	}
	r["header"] = header

	if req.Form != nil {
		r["form"] = req.Form
	}

	if id, ok := req.Context().Value(terminus.RequestIDKey).(string); ok && id != "" {
		r["id"] = id
	}

	if ip, ok := req.Context().Value(terminus.IpAddrKey).(string); ok && ip != "" {
		r["ip"] = ip
	}

	return r
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf("%q", err.Error())
	}
	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() { 		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return formatCaller(file, line)
}
