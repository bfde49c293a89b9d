package ranger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/xy-planning-network/terminus/http/resp"
	"github.com/xy-planning-network/terminus/http/router"
	"github.com/xy-planning-network/terminus/http/template"
	"github.com/xy-planning-network/terminus/logger"
	"github.com/xy-planning-network/terminus/metrics"
)

// A Ranger manages and exposes all components of a terminus app to one another.
type Ranger struct {
	*router.Router

	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc
	l      logger.Logger
	p      template.Renderer
	reg    *prometheus.Registry
	rp     *resp.Responder
	srv    *http.Server
	tmpls  []fs.FS
}

// New constructs a Ranger from the provided options.
// The Config is read from the environment first; see NewConfig.
// Components the options do not supply are then built with defaults,
// in this order: logger, parser, metrics, responder, router, server.
func New(opts ...RangerOption) (*Ranger, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	r := &Ranger{cfg: cfg}
	followups := make([]OptFollowup, 0)

	// Options needing the router or logger defer their work to a followup,
	// run once setDefaults completes the *Ranger.
	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.setDefaults(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	return r, nil
}

func (r *Ranger) setDefaults() error {
	if r.ctx == nil {
		r.ctx, r.cancel = context.WithCancel(context.Background())
	}

	if r.l == nil {
		r.l = defaultLogger(r.cfg)
	}

	if r.p == nil {
		r.p = defaultParser(r.cfg, r.tmpls)
	}

	if r.reg == nil {
		r.reg = defaultRegistry()
	}

	m, err := metrics.New(r.reg)
	if err != nil {
		return err
	}

	r.rp = defaultResponder(r.cfg, r.l, r.p, m)
	r.Router = defaultRouter(r.cfg, r.rp, r.reg, defaultMiddlewares(r.cfg, r.l, r.rp))

	if r.srv == nil {
		r.srv = defaultServer(r.cfg)
	}
	r.srv.Handler = r.Router

	r.l.Debug(fmt.Sprintf("configured %s app listening at %s", r.cfg.Env, r.srv.Addr), nil)
	return nil
}

// Config is the Config the *Ranger was built with.
func (r *Ranger) Config() Config { return r.cfg }

// EmitLogger exposes the logger.Logger the terminus app logs through.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// Responder exposes the *resp.Responder answering every error in the terminus app.
func (r *Ranger) Responder() *resp.Responder { return r.rp }

// Cancel stops Guide, shutting down the web server.
func (r *Ranger) Cancel() { r.cancel() }

// Guide begins the web server.
//
// These, and (*Ranger).Cancel, stop Guide, shutting the web server down:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// Calling (*Ranger).Shutdown directly also stops Guide.
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	errs := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		err := r.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}

		if err != nil {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
		}

		errs <- err
	}()

	select {
	case s := <-ch:
		r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
	case <-r.ctx.Done():
		r.l.Info("context done", nil)
	case err := <-errs:
		return err
	}

	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.cfg.ShutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
