package req_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/terminus/http/req"
)

func TestAccepts(t *testing.T) {
	for _, tc := range []struct {
		name     string
		accept   []string
		offers   []string
		expected string
	}{
		{"No-Offers", []string{"text/html"}, nil, ""},
		{"No-Header", nil, []string{"html"}, "html"},
		{"No-Header-First-Offer", nil, []string{"json", "html"}, "json"},
		{"Blank-Header", []string{" "}, []string{"html"}, "html"},
		{"Malformed-Header", []string{"garbage"}, []string{"html"}, "html"},
		{"Exact", []string{"text/html"}, []string{"html"}, "html"},
		{"Exact-Case", []string{"Text/HTML"}, []string{"html"}, "html"},
		{"Full-Offer", []string{"text/html"}, []string{"text/html"}, "text/html"},
		{"Wildcard", []string{"*/*"}, []string{"html"}, "html"},
		{"Subtype-Wildcard", []string{"text/*"}, []string{"html"}, "html"},
		{"Mismatch", []string{"application/json"}, []string{"html"}, ""},
		{"Zero-Quality", []string{"text/html;q=0"}, []string{"html"}, ""},
		{"Excluded-Over-Wildcard", []string{"text/html;q=0, */*"}, []string{"html"}, ""},
		{"Browser", []string{"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"}, []string{"html"}, "html"},
		{"Quality-Wins", []string{"text/html;q=0.5, application/json"}, []string{"html", "json"}, "json"},
		{"Specificity-Wins", []string{"*/*, application/json"}, []string{"html", "json"}, "json"},
		{"Order-Breaks-Ties", []string{"*/*"}, []string{"json", "html"}, "json"},
		{"Multiple-Headers", []string{"application/json", "text/html"}, []string{"html"}, "html"},
		{"Params-Ignored", []string{"text/html; level=1; q=0.7"}, []string{"html"}, "html"},
		{"Bad-Quality-Ignored", []string{"text/html;q=2"}, []string{"html"}, "html"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			for _, val := range tc.accept {
				r.Header.Add("Accept", val)
			}

			// Act
			actual := req.Accepts(r, tc.offers...)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestAcceptsNilRequest(t *testing.T) {
	require.Equal(t, "", req.Accepts(nil, "html"))
	require.False(t, req.AcceptsHTML(nil))
}

func TestAcceptsHTML(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	require.True(t, req.AcceptsHTML(r))

	r.Header.Set("Accept", "application/json")
	require.False(t, req.AcceptsHTML(r))
}
