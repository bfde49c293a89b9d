/*
Package resp answers HTTP requests that failed.

A [*Responder] is the last stage a request passes through when something upstream returned an error.
[*Responder.Err] turns that error into exactly one response:
either the error's template rendered as HTML, for clients accepting HTML,
or a JSON object:

	{"error": "not found"}

The response status and any extra headers come from the error; see package fault.

Handlers written as a [HandlerFunc] return their errors instead of writing them:

	rp := resp.NewResponder(resp.WithLogger(l), resp.WithRenderer(p))
	http.Handle("/", rp.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return fault.NewPlain("not found", fault.WithStatus(http.StatusNotFound))
	}))
*/
package resp
