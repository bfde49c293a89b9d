package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/terminus"
	"github.com/xy-planning-network/terminus/fault"
)

// ForceHTTPS redirects HTTP requests to HTTPS if the environment is not development.
//
// Only GET and HEAD requests are redirected.
// Any other request made over HTTP is answered by rp with a plain fault,
// status http.StatusBadRequest, since a redirect would drop its body.
//
// The "X-Forwarded-Proto" is used to check whether HTTP was requested due to a terminus application
// running behind a proxy.
func ForceHTTPS(env terminus.Environment, rp errResponder) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
				handler.ServeHTTP(w, r)
				return
			}

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				rp.Err(w, r, fault.NewPlain("HTTPS required", fault.WithStatus(http.StatusBadRequest)))
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
