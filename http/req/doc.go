/*
Package req provides helpers for inspecting an *http.Request.

Accepts negotiates which representation of a response the client prefers
using the request's Accept header.
*/
package req
