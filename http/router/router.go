package router

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/xy-planning-network/terminus/fault"
	"github.com/xy-planning-network/terminus/http/middleware"
	"github.com/xy-planning-network/terminus/http/resp"
)

// NotFoundTemplate names the error template rendered for unmatched paths.
const NotFoundTemplate = "404"

// A Route maps a path and HTTP method to a [resp.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// An empty Method matches every method.
type Route struct {
	Path        string
	Method      string
	Handler     resp.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to their handlers,
// funnelling every error a handler returns to a [*resp.Responder].
type Router struct {
	everyReqStack []middleware.Adapter
	notFound      resp.HandlerFunc
	rp            *resp.Responder
	r             *mux.Router
}

// New constructs a [*Router] answering errors with rp.
//
// Requests for unmatched paths are answered with a 404 plain fault naming the NotFoundTemplate.
// Requests for matched paths, but with an unregistered method, are answered with a 405 plain fault.
func New(rp *resp.Responder) *Router {
	if rp == nil {
		rp = resp.NewResponder()
	}

	router := &Router{notFound: notFound, rp: rp, r: mux.NewRouter()}

	router.r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		router.chain(rp.Handle(router.notFound)).ServeHTTP(w, req)
	})

	router.r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		router.chain(rp.Handle(methodNotAllowed)).ServeHTTP(w, req)
	})

	return router
}

// Assets serves the files in fsys under the path prefix, with a long "Cache-Control".
//
// A missing file, or a directory, is answered like an unmatched path.
func (r *Router) Assets(prefix string, fsys fs.FS) {
	files := http.FileServer(http.FS(fsys))
	h := r.rp.Handle(func(w http.ResponseWriter, req *http.Request) error {
		fi, err := fs.Stat(fsys, strings.TrimPrefix(req.URL.Path, "/"))
		if err != nil || fi.IsDir() {
			return r.notFound(w, req)
		}

		w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
		files.ServeHTTP(w, req)
		return nil
	})

	r.r.PathPrefix(prefix).Handler(r.chain(http.StripPrefix(prefix, h)))
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler resp.HandlerFunc) {
	r.r.PathPrefix("/").Handler(r.chain(r.rp.Handle(handler)))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [resp.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler resp.HandlerFunc) {
	if handler == nil {
		handler = notFound
	}

	r.notFound = handler
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append([]middleware.Adapter{}, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := r.chain(r.rp.Handle(route.Handler), mws...)

		rt := r.r.Handle(route.Path, handler)
		if route.Method != "" {
			rt.Methods(route.Method)
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Routes registered before calling OnEveryRequest do not receive the middlewares,
// unmatched requests always do.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// SubrouterHost constructs a [*Router] that handles requests for the host.
func (r *Router) SubrouterHost(host string) *Router {
	return &Router{
		everyReqStack: append([]middleware.Adapter{}, r.everyReqStack...),
		notFound:      r.notFound,
		rp:            r.rp,
		r:             r.r.Host(host).Subrouter(),
	}
}

// Subrouter constructs a [*Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		everyReqStack: append([]middleware.Adapter{}, r.everyReqStack...),
		notFound:      r.notFound,
		rp:            r.rp,
		r:             r.r.PathPrefix(prefix).Subrouter(),
	}
}

// chain wraps h in the every request stack, followed by mws.
func (r *Router) chain(h http.Handler, mws ...middleware.Adapter) http.Handler {
	all := append(append([]middleware.Adapter{}, r.everyReqStack...), mws...)
	return middleware.Chain(h, all...)
}

func notFound(_ http.ResponseWriter, _ *http.Request) error {
	msg := http.StatusText(http.StatusNotFound)
	return fault.NewPlain(
		msg,
		fault.WithStatus(http.StatusNotFound),
		fault.WithTemplate(NotFoundTemplate, map[string]any{"status": http.StatusNotFound, "error": msg}),
	)
}

func methodNotAllowed(_ http.ResponseWriter, _ *http.Request) error {
	return fault.NewPlain(http.StatusText(http.StatusMethodNotAllowed), fault.WithStatus(http.StatusMethodNotAllowed))
}
