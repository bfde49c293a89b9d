package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/terminus/http/middleware"
	"github.com/xy-planning-network/terminus/http/resp"
	tt "github.com/xy-planning-network/terminus/http/template/templatetest"
	"github.com/xy-planning-network/terminus/logger/loggermock"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

// tag appends name to the X-Order header, recording the order adapters run in.
func tag(name string) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", name)
			h.ServeHTTP(w, r)
		})
	}
}

func TestChain(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(noopHandler(), tag("first"), nil, middleware.NoopAdapter, tag("second")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "first,second", strings.Join(w.Header().Values("X-Order"), ","))
}

// newResponder builds a *resp.Responder tolerating any error logs.
func newResponder(t *testing.T) *resp.Responder {
	t.Helper()

	l := loggermock.NewMockLogger(gomock.NewController(t))
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	return resp.NewResponder(resp.WithLogger(l), resp.WithRenderer(tt.NewParser()))
}
