package ranger

import (
	"embed"
	"io/fs"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"

	"github.com/xy-planning-network/terminus/http/middleware"
	"github.com/xy-planning-network/terminus/http/resp"
	"github.com/xy-planning-network/terminus/http/router"
	"github.com/xy-planning-network/terminus/http/template"
	"github.com/xy-planning-network/terminus/logger"
	"github.com/xy-planning-network/terminus/metrics"
)

//go:embed tmpl/*
var embedded embed.FS

// tmpls holds the error templates ranger ships, at its root.
var tmpls = func() fs.FS {
	sub, err := fs.Sub(embedded, "tmpl")
	if err != nil {
		panic(err)
	}

	return sub
}()

// defaultLogger constructs a [logger.Logger] configured for use in the application.
//
// A SentryDSN in cfg upgrades it to a [*logger.SentryLogger].
func defaultLogger(cfg Config) logger.Logger {
	sl := logger.NewStdLogger(
		logger.WithDate(true),
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
		logger.WithPrefix(cfg.LogPrefix),
	)
	sl.Debug("setting up app logger", nil)

	if cfg.SentryDSN != "" {
		l := logger.NewSentryLogger(sl, cfg.SentryDSN)
		l.Debug("using SentryLogger for app logger", nil)
		return l
	}

	return sl
}

// defaultParser constructs a *template.Parser for rendering error templates.
// Templates are looked up in dirs, in order,
// followed by the TemplateDir in cfg, then ranger's and package template's own.
//
// defaultParser makes available these functions in an HTML template:
//   - "env"
//   - "nonce"
//   - "statusText"
func defaultParser(cfg Config, dirs []fs.FS) *template.Parser {
	all := append([]fs.FS{}, dirs...)
	if cfg.TemplateDir != "" {
		all = append(all, os.DirFS(cfg.TemplateDir))
	}
	all = append(all, tmpls)

	return template.NewParser(all).AddFn(template.Env(cfg.Env)).AddFn(template.Nonce())
}

// defaultRegistry constructs a *prometheus.Registry holding the Go runtime and process collectors.
func defaultRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// defaultResponder configures the [*resp.Responder] every error is answered by.
func defaultResponder(cfg Config, l logger.Logger, p template.Renderer, m *metrics.Recorder) *resp.Responder {
	args := []resp.ResponderOptFn{
		resp.WithLogger(l),
		resp.WithMetrics(m),
		resp.WithRenderer(p),
	}
	if cfg.Tracing {
		args = append(args, resp.WithTracing())
	}

	return resp.NewResponder(args...)
}

// defaultMiddlewares is the stack every request passes through.
//
// Recover sits inside the middlewares stashing the span, request ID and IP address,
// so a recovered panic is answered, traced and logged with them.
// ReportPanic sits inside Recover, seeing each panic before it is recovered.
func defaultMiddlewares(cfg Config, l logger.Logger, rp *resp.Responder) []middleware.Adapter {
	mws := make([]middleware.Adapter, 0)
	if cfg.Tracing {
		mws = append(mws, middleware.Trace(otel.GetTracerProvider()))
	}

	mws = append(mws,
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.Recover(rp),
		middleware.ReportPanic(cfg.Env),
	)
	if cfg.ForceHTTPS {
		mws = append(mws, middleware.ForceHTTPS(cfg.Env, rp))
	}

	return append(mws,
		middleware.RateLimit(rp, middleware.NewVisitors(cfg.RateLimit, cfg.RateBurst)),
		middleware.CORS(cfg.CORSOrigin),
	)
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
//
// In maintenance mode, every request is answered by MaintModeHandler.
func defaultRouter(cfg Config, rp *resp.Responder, reg prometheus.Gatherer, mws []middleware.Adapter) *router.Router {
	r := router.New(rp)
	r.OnEveryRequest(mws...)

	if cfg.MetricsPath != "" {
		h := metrics.Handler(reg)
		r.Handle(router.Route{
			Path:   cfg.MetricsPath,
			Method: http.MethodGet,
			Handler: func(w http.ResponseWriter, req *http.Request) error {
				h.ServeHTTP(w, req)
				return nil
			},
		})
	}

	if cfg.MaintenanceMode {
		r.CatchAll(MaintModeHandler())
	}

	return r
}

// defaultServer constructs a default [*http.Server].
func defaultServer(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
