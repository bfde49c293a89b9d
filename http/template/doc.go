/*
Package template renders the HTML error pages of a terminus app.

A [*Parser] looks up templates, by name, in the filesystems it is given,
falling back to the templates embedded in this package.
Templates are html/template files named with the [Ext] suffix, ".jade";
the "403" error template is the file "403.jade".

Anything needing HTML rendered depends on the [Renderer] interface,
which [*Parser] implements.
*/
package template
