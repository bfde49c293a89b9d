package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xy-planning-network/terminus"
	"github.com/xy-planning-network/terminus/logger"
)

// LogMaskVal replaces the values of sensitive query parameters in logs.
const LogMaskVal = "xxxxx"

var maskedParams = []string{"password", "token"}

// LogRequest logs the request's originating IP address, method, requested URL and response status
// using the enclosed implementation of logger.Logger, once the request is answered.
//
// LogRequest scrubs the values for the following keys:
// - password
// - token
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			defer logAnswered(ls, sw, r, start)

			h.ServeHTTP(sw, r)
		})
	}
}

// logAnswered writes the line for r, answered through sw.
func logAnswered(ls logger.Logger, sw *statusWriter, r *http.Request, start time.Time) {
	strs := []string{r.Method, maskedURI(r), strconv.Itoa(sw.Status())}
	if val, ok := r.Context().Value(terminus.IpAddrKey).(string); ok {
		strs = append([]string{val}, strs...)
	}

	data := map[string]any{
		"bytes":    sw.size,
		"duration": time.Since(start).String(),
		"status":   sw.Status(),
	}
	if id := GetRequestID(r.Context()); id != "" {
		data["request_id"] = id
	}

	ls.Info(strings.Join(strs, " "), &logger.LogContext{Data: data})
}

func maskedURI(r *http.Request) string {
	uri := r.URL.Path
	q := r.URL.Query()
	for _, key := range maskedParams {
		if q.Has(key) {
			q.Set(key, LogMaskVal)
		}
	}

	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	return uri
}

// statusWriter records the status code and body size written through it.
type statusWriter struct {
	http.ResponseWriter
	size   int
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}

	n, err := sw.ResponseWriter.Write(b)
	sw.size += n
	return n, err
}

// written reports whether a status or body went out through sw.
func (sw *statusWriter) written() bool { return sw.status != 0 }

// Status is the status code written, http.StatusOK if none was written explicitly.
func (sw *statusWriter) Status() int {
	if sw.status == 0 {
		return http.StatusOK
	}

	return sw.status
}

// Unwrap lets http.ResponseController reach the underlying http.ResponseWriter.
func (sw *statusWriter) Unwrap() http.ResponseWriter { return sw.ResponseWriter }
