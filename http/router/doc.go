/*
Package router routes HTTP requests to handlers that return their errors.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
A [resp.HandlerFunc] is the function called when a request matches a Route;
any error it returns is answered by the [*resp.Responder] the Router was constructed with.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

Requests no Route matches never reach a handler of the application.
They are answered by that same responder with a plain fault:
a 404 naming the "404" error template, or a 405 when only the method is wrong.
*/
package router
