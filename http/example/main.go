/*
Package main provides a toy example use of the terminus http stack,
focusing on the basics of:

(1) constructing a default Ranger;
(2) binding routes to handlers that return their errors;
(3) raising plain faults and exceptions, with and without an error template;
(4) and letting the responder choose between HTML and JSON.
*/
package main

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/xy-planning-network/terminus/fault"
	"github.com/xy-planning-network/terminus/http/router"
	"github.com/xy-planning-network/terminus/ranger"
)

//go:embed tmpl/*.jade
var files embed.FS

var errNoLedger = errors.New("ledger unreachable")

// RangerHandler wraps a configured *Ranger.
// The methods attached to it are the handlers the Router
// will direct requests to.
type RangerHandler struct {
	*ranger.Ranger
}

// root answers successfully, never reaching the responder.
func (h *RangerHandler) root(w http.ResponseWriter, _ *http.Request) error {
	_, err := fmt.Fprintln(w, "hello from terminus")
	return err
}

// forbidden raises a plain fault with a header and a template:
// browsers get tmpl/403.jade, everyone else JSON.
func (h *RangerHandler) forbidden(_ http.ResponseWriter, _ *http.Request) error {
	return fault.NewPlain(
		"forbidden",
		fault.WithStatus(http.StatusForbidden),
		fault.WithHeader("X-Reason", "forbidden"),
		fault.WithTemplate("403", map[string]any{"reason": "staff only"}),
	)
}

// account raises a 400 for a malformed ID and a 404 for a missing one.
func (h *RangerHandler) account(_ http.ResponseWriter, r *http.Request) error {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		return fault.NewPlain("id must be a number", fault.WithStatus(http.StatusBadRequest))
	}

	if id != 1 {
		return fault.NewPlain(fmt.Sprintf("no account %d", id), fault.WithStatus(http.StatusNotFound))
	}

	return fault.Wrap(fmt.Errorf("loading account %d: %w", id, errNoLedger), fault.WithStatus(http.StatusBadGateway))
}

// broken returns a bare error, which is answered as a 500 exception
// and logged with its stack.
func (h *RangerHandler) broken(_ http.ResponseWriter, _ *http.Request) error {
	return errors.New("something broke")
}

// panicky panics, recovered into a 500 by the default middlewares.
func (h *RangerHandler) panicky(_ http.ResponseWriter, _ *http.Request) error {
	panic("oh no")
}

func newRanger() (*ranger.Ranger, error) {
	tmpls, err := fs.Sub(files, "tmpl")
	if err != nil {
		return nil, err
	}

	h := new(RangerHandler)
	rng, err := ranger.New(
		ranger.WithTemplates(tmpls),
		ranger.WithRoutes(
			router.Route{Path: "/", Method: http.MethodGet, Handler: h.root},
			router.Route{Path: "/forbidden", Method: http.MethodGet, Handler: h.forbidden},
			router.Route{Path: "/account", Method: http.MethodGet, Handler: h.account},
			router.Route{Path: "/broken", Method: http.MethodGet, Handler: h.broken},
			router.Route{Path: "/panic", Method: http.MethodGet, Handler: h.panicky},
		),
	)
	if err != nil {
		return nil, err
	}

	h.Ranger = rng
	return rng, nil
}

func main() {
	rng, err := newRanger()
	if err != nil {
		fmt.Println(err)
		return
	}

	// start the web server until receiving a signal to stop.
	if err := rng.Guide(); err != nil {
		fmt.Println(err)
		return
	}
}
