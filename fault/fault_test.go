package fault_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/terminus/fault"
)

func TestNew(t *testing.T) {
	// Arrange + Act
	e := fault.New("boom", fault.WithStatus(http.StatusTeapot), fault.WithHeader("X-Reason", "tea"))

	// Assert
	require.Equal(t, "boom", e.Error())
	require.Equal(t, "boom", e.Message())
	require.Equal(t, http.StatusTeapot, e.Status())
	require.Equal(t, map[string]string{"X-Reason": "tea"}, e.Header())
	require.Nil(t, e.Template())
	require.Nil(t, e.Unwrap())
	require.True(t, strings.HasPrefix(e.Stack(), "boom\n"))
	require.Contains(t, e.Stack(), "fault_test.go")
}

func TestErrorf(t *testing.T) {
	e := fault.Errorf("no %s for %d", "user", 7)
	require.Equal(t, "no user for 7", e.Message())
	require.Zero(t, e.Status())
}

func TestWrap(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		require.Nil(t, fault.Wrap(nil))
	})

	t.Run("Std-Error", func(t *testing.T) {
		// Act
		e := fault.Wrap(io.EOF, fault.WithStatus(http.StatusBadGateway))

		// Assert
		require.ErrorIs(t, e, io.EOF)
		require.Equal(t, io.EOF.Error(), e.Message())
		require.Equal(t, http.StatusBadGateway, e.Status())
		require.Contains(t, e.Stack(), "fault_test.go")
	})

	t.Run("Keeps-Stack", func(t *testing.T) {
		// Arrange
		inner := raise()

		// Act
		e := fault.Wrap(inner)

		// Assert
		require.ErrorIs(t, e, inner)
		require.Contains(t, e.Stack(), "raise")
	})
}

func TestNewPlain(t *testing.T) {
	// Act
	p := fault.NewPlain("forbidden",
		fault.WithStatus(http.StatusForbidden),
		fault.WithHeaders(map[string]string{"X-Reason": "forbidden", "X-Other": "1"}),
		fault.WithTemplate("403", map[string]any{"who": "you"}),
	)

	// Assert
	require.Equal(t, "forbidden", p.Error())
	require.Equal(t, http.StatusForbidden, p.Status())
	require.Equal(t, map[string]string{"X-Reason": "forbidden", "X-Other": "1"}, p.Header())
	require.Equal(t, &fault.Template{Name: "403", Params: map[string]any{"who": "you"}}, p.Template())
}

func TestPlainJSON(t *testing.T) {
	// Arrange
	raw := `{"error":"not found","status":404,"headers":{"X-Reason":"gone"},"template":{"name":"404"}}`

	// Act
	var p fault.Plain
	err := json.Unmarshal([]byte(raw), &p)

	// Assert
	require.Nil(t, err)
	require.Equal(t, fault.Plain{
		Msg:     "not found",
		Code:    http.StatusNotFound,
		Headers: map[string]string{"X-Reason": "gone"},
		Tmpl:    &fault.Template{Name: "404"},
	}, p)
}

func TestFrom(t *testing.T) {
	plain := fault.NewPlain("nope")
	exc := fault.New("boom")

	for _, tc := range []struct {
		name   string
		err    error
		assert func(*testing.T, fault.Fault)
	}{
		{"Nil", nil, func(t *testing.T, f fault.Fault) { require.Nil(t, f) }},
		{"Plain", plain, func(t *testing.T, f fault.Fault) { require.Same(t, plain, f) }},
		{"Exception", exc, func(t *testing.T, f fault.Fault) { require.Same(t, exc, f) }},
		{
			"Wrapped-Plain",
			fmt.Errorf("handler: %w", plain),
			func(t *testing.T, f fault.Fault) { require.Same(t, plain, f) },
		},
		{
			"Other",
			io.ErrUnexpectedEOF,
			func(t *testing.T, f fault.Fault) {
				e, ok := f.(*fault.Exception)
				require.True(t, ok)
				require.ErrorIs(t, e, io.ErrUnexpectedEOF)
				require.Zero(t, e.Status())
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tc.assert(t, fault.From(tc.err))
		})
	}
}

func TestNormalize(t *testing.T) {
	exc := fault.New("boom")
	for _, tc := range []struct {
		name     string
		f        fault.Fault
		expected fault.Normalized
	}{
		{"Nil", nil, fault.Normalized{StatusCode: 500, Message: fault.DefaultMessage}},
		{"Nil-Exception", (*fault.Exception)(nil), fault.Normalized{StatusCode: 500, Message: fault.DefaultMessage}},
		{"Nil-Plain", (*fault.Plain)(nil), fault.Normalized{StatusCode: 500, Message: fault.DefaultMessage}},
		{
			"Plain-With-Status",
			fault.NewPlain("not found", fault.WithStatus(http.StatusNotFound)),
			fault.Normalized{StatusCode: 404, Message: "not found"},
		},
		{
			"Status-Too-Large",
			fault.NewPlain("teapot", fault.WithStatus(1000)),
			fault.Normalized{StatusCode: 500, Message: "teapot"},
		},
		{
			"Status-Negative",
			fault.NewPlain("teapot", fault.WithStatus(-1)),
			fault.Normalized{StatusCode: 500, Message: "teapot"},
		},
		{
			"Status-Below-Informational",
			fault.NewPlain("teapot", fault.WithStatus(99)),
			fault.Normalized{StatusCode: 500, Message: "teapot"},
		},
		{
			"Status-Nonstandard",
			fault.NewPlain("teapot", fault.WithStatus(599)),
			fault.Normalized{StatusCode: 599, Message: "teapot"},
		},
		{
			"Plain-Empty",
			fault.NewPlain(""),
			fault.Normalized{StatusCode: 500, Message: fault.DefaultMessage},
		},
		{
			"Exception",
			exc,
			fault.Normalized{StatusCode: 500, Message: "boom", Exception: exc},
		},
		{
			"Headers-And-Template",
			fault.NewPlain("forbidden",
				fault.WithStatus(http.StatusForbidden),
				fault.WithHeader("X-Reason", "forbidden"),
				fault.WithTemplate("403", map[string]any{}),
			),
			fault.Normalized{
				StatusCode: 403,
				Message:    "forbidden",
				Header:     map[string]string{"X-Reason": "forbidden"},
				Template:   &fault.Template{Name: "403", Params: map[string]any{}},
			},
		},
		{
			"Empty-Headers",
			&fault.Plain{Msg: "x", Headers: map[string]string{}},
			fault.Normalized{StatusCode: 500, Message: "x"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, fault.Normalize(tc.f))
		})
	}
}

func TestNormalizeCopiesHeader(t *testing.T) {
	// Arrange
	p := fault.NewPlain("x", fault.WithHeader("A", "1"))

	// Act
	n := fault.Normalize(p)
	n.Header["A"] = "2"

	// Assert
	require.Equal(t, "1", p.Header()["A"])
}

func raise() error { return pkgerrors.New("raised") }

