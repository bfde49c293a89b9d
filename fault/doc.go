/*
Package fault defines the error values a handler raises into the terminal error stage.

A [Fault] is one of two shapes, chosen where the error is raised:

  - [*Exception] carries a message and the stack trace captured when it was built.
    The responder logs both before answering.
  - [*Plain] carries only a client-facing message under the "error" key.
    It is assumed to be logged, if at all, where it was raised.

Either shape may carry an HTTP status, response headers, and an error template to render
for clients accepting HTML:

	return fault.NewPlain("forbidden",
		fault.WithStatus(http.StatusForbidden),
		fault.WithHeader("X-Reason", "forbidden"),
		fault.WithTemplate("403", nil),
	)

Any other error reaching the stage is treated as an [*Exception] by [From].
[Normalize] reduces a Fault to the status code, message, headers and template used in the response.
*/
package fault
