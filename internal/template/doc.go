// Package template renders the built-in HTML bodies sent when no
// configured content applies.
//
// Two bodies are embedded in the binary:
//
//	pages/error.html.tmpl        status page for the error trigger
//	pages/placeholder.html.tmpl  body for a page with no redirect, file or handler
//
// Rendering uses html/template, so request paths echoed into the error page
// are escaped.
//
//	body := template.RenderError(404, "/missing")
//	// <title>404</title><h1>404</h1><p>An error occurred while accessing <u>/missing</u>.</p>
package template
