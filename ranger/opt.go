package ranger

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/xy-planning-network/terminus/http/router"
	"github.com/xy-planning-network/terminus/http/template"
	"github.com/xy-planning-network/terminus/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRoutes is an example of the second.
// Routes are registered only when the closure it returns is called,
// once the *Ranger's router exists.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithConfig replaces the Config read from the environment.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := cfg.Env.Valid(); err != nil {
			return nil, fmt.Errorf("%w: env %q", err, cfg.Env)
		}

		rng.cfg = cfg
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the terminus app.
// Cancelling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", ErrNotValid)
		}

		rng.ctx, rng.cancel = context.WithCancel(ctx)
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the terminus app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return nil, nil
	}
}

// WithRegistry registers the metrics of the terminus app with reg,
// and serves those reg gathers.
func WithRegistry(reg *prometheus.Registry) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.reg = reg
		return nil, nil
	}
}

// WithRenderer sets the template.Renderer error templates are rendered with,
// replacing the default *template.Parser.
func WithRenderer(p template.Renderer) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.p = p
		return nil, nil
	}
}

// WithRoutes constructs a followup option that, when called,
// registers the routes on the *Ranger's router.
func WithRoutes(routes ...router.Route) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.Router.HandleRoutes(routes)
			rng.l.Debug(fmt.Sprintf("registered %d routes", len(routes)), nil)
			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the terminus app.
// The server's Handler is always replaced with the *Ranger's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", ErrNotValid)
		}

		rng.srv = s
		return nil, nil
	}
}

// WithTemplates looks up error templates in the dirs, in order,
// before the configured TemplateDir.
func WithTemplates(dirs ...fs.FS) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.tmpls = append(rng.tmpls, dirs...)
		return nil, nil
	}
}
