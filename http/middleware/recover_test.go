package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/terminus/fault"
	"github.com/xy-planning-network/terminus/http/middleware"
)

func TestRecover(t *testing.T) {
	// Arrange + Act
	actual := middleware.Recover(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name         string
		val          any
		expectedCode int
		expectedBody string
	}{
		{"String", "whoops", http.StatusInternalServerError, `{"error": "panic: whoops"}`},
		{"Error", errors.New("broken"), http.StatusInternalServerError, `{"error": "broken"}`},
		{
			"Fault",
			fault.NewPlain("conflict", fault.WithStatus(http.StatusConflict)),
			http.StatusConflict,
			`{"error": "conflict"}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			r.Header.Set("Accept", "application/json")

			h := middleware.Recover(newResponder(t))(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				panic(tc.val)
			}))

			// Act
			require.NotPanics(t, func() { h.ServeHTTP(w, r) })

			// Assert
			require.Equal(t, tc.expectedCode, w.Code)
			require.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}

	t.Run("Abort-Handler", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		h := middleware.Recover(newResponder(t))(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		// Act + Assert
		require.PanicsWithError(t, http.ErrAbortHandler.Error(), func() { h.ServeHTTP(w, r) })
	})

	t.Run("Already-Written", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		h := middleware.Recover(newResponder(t))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("after writing")
		}))

		// Act + Assert
		require.PanicsWithError(t, http.ErrAbortHandler.Error(), func() { h.ServeHTTP(w, r) })
		require.Equal(t, http.StatusAccepted, w.Code)
		require.Empty(t, w.Body.String())
	})

	t.Run("No-Panic", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

		// Act
		middleware.Recover(newResponder(t))(noopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
	})
}
