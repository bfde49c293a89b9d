package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/terminus"
	"github.com/xy-planning-network/terminus/fault"
	"github.com/xy-planning-network/terminus/http/middleware"
	"github.com/xy-planning-network/terminus/logger"
	"github.com/xy-planning-network/terminus/logger/loggermock"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	ip := "192.168.0.0"
	tcs := []struct {
		name     string
		method   string
		ip       string
		url      *url.URL
		expected string
	}{
		{"Zero-Value", http.MethodGet, "", &url.URL{Path: "/"}, "GET / 200"},
		{"With-IP", http.MethodPost, ip, &url.URL{Path: "/"}, ip + " POST / 200"},
		{
			"With-Query-Params",
			http.MethodPut,
			ip,
			&url.URL{Path: "/hitting/the/end", RawQuery: "param=true"},
			ip + " PUT /hitting/the/end?param=true 200",
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			ip,
			&url.URL{Scheme: "http", Path: "/", RawQuery: "param=true&password=hunter2&token=abc"},
			ip + " GET /?param=true&password=" + middleware.LogMaskVal + "&token=" + middleware.LogMaskVal + " 200",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			l := loggermock.NewMockLogger(ctrl)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.url.String(), nil)
			r = r.Clone(context.WithValue(r.Context(), terminus.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), terminus.IpAddrKey, tc.ip))
			}

			var ctx *logger.LogContext
			l.EXPECT().Info(tc.expected, gomock.Any()).Do(func(_ string, c *logger.LogContext) { ctx = c })

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.NotNil(t, ctx)
			require.Equal(t, "test-id", ctx.Data["request_id"])
			require.Equal(t, len("test"), ctx.Data["bytes"])
			require.Equal(t, http.StatusOK, ctx.Data["status"])
		})
	}
}

func TestLogRequestErrorStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	l := loggermock.NewMockLogger(ctrl)
	rp := newResponder(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "https://example.com/thing", nil)
	r.Header.Set("Accept", "application/json")

	l.EXPECT().Info("DELETE /thing 404", gomock.Any())

	// Act
	middleware.LogRequest(l)(rp.Handle(func(_ http.ResponseWriter, _ *http.Request) error {
		return fault.NewPlain("no thing", fault.WithStatus(http.StatusNotFound))
	})).ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogRequestPanicking(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	l := loggermock.NewMockLogger(ctrl)
	l.EXPECT().Info("GET /panicky 200", gomock.Any()).Times(1)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/panicky", nil)
	h := middleware.LogRequest(l)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("whoops")
	}))

	// Act + Assert
	require.PanicsWithValue(t, "whoops", func() { h.ServeHTTP(w, r) })
}
