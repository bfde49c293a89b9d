package logger_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/terminus"
	"github.com/xy-planning-network/terminus/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com",
			"header": map[string]any{
				"Host": []any{"example.com"},
			},
		},
	}

	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("Host", "example.com")
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)

	// Arrange
	expected = map[string]any{
		"request": map[string]any{
			"method": http.MethodPost,
			"url":    "https://example.com/test?some=param",
			"header": map[string]any{
				"Host":         []any{"example.com"},
				"Content-Type": []any{"application/x-www-form-urlencoded"},
			},
			"form": map[string]any{
				"email": []any{"spinoza@example.com"},
				"name":  []any{"Baruch Spinoza"},
				"some":  []any{"param"},
			},
		},
	}

	form := url.Values{}
	form.Set("email", "spinoza@example.com")
	form.Set("name", "Baruch Spinoza")
	s := strings.NewReader(form.Encode())

	r = httptest.NewRequest(http.MethodPost, "https://example.com/test?some=param", s)
	r.Header.Set("Host", "example.com")
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ParseForm()

	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)

	// Arrange
	expected = map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/account",
			"header": map[string]any{
				"Authorization": []any{"xxxxx"},
				"Cookie":        []any{"xxxxx"},
				"Accept":        []any{"application/json"},
			},
			"id": "7c1c0a62-63a3-4bd9-9f1e-3e3d3b0a61a9",
			"ip": "203.0.113.7",
		},
	}

	r = httptest.NewRequest(http.MethodGet, "https://example.com/account", nil)
	r.Header.Set("Authorization", "Bearer secret")
	r.Header.Set("Cookie", "session=secret")
	r.Header.Set("Accept", "application/json")
	ctx := context.WithValue(r.Context(), terminus.RequestIDKey, "7c1c0a62-63a3-4bd9-9f1e-3e3d3b0a61a9")
	ctx = context.WithValue(ctx, terminus.IpAddrKey, "203.0.113.7")
	r = r.WithContext(ctx)

	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
}

func TestLogContextString(t *testing.T) {
	// Arrange
	lc := logger.LogContext{Data: map[string]any{"fn": func() {}}}

	// Act
	s := lc.String()

	// Assert
	require.True(t, strings.HasPrefix(s, `"json: unsupported type`))
	require.Equal(t, `{"error":"boom"}`, logger.LogContext{Error: errors.New("boom")}.String())
}
