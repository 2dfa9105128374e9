// Package router is the dispatch engine of sitemux.
//
// A Router owns a Registry of callbacks and reads the site document through
// a config.Loader on every request. Dispatch takes a normalized Request and
// writes exactly one outcome to a Response: a redirect, a file, a body
// produced by a callback, or an error rendered by TriggerError.
//
// # Registration
//
// Callbacks are registered per host before the transport starts. Hosts
// are stored without a leading "www.", so registering on www.example.com
// and example.com is the same thing.
//
//	rt := router.New(config.NewFileLoader("server.json"))
//	rt.Get("home", home, "example.com").
//		Post("contact", contact, "example.com").
//		Error(404, notFound, "example.com")
//
//	rt.Host("blog.example.com").
//		All("post", showPost).
//		Static(minify, "css", "js")
//
// Page lookups consult the registry of the request method and fall back to
// the one filled by All. Static hooks are keyed by Extension, which takes
// the segment after the first dot: "archive.tar.gz" is a "tar" file.
//
// # Pages
//
// A page template is a literal path where each "*" matches one path
// segment. Captures are available in order through Request.Param and
// Request.Params. Pages are tried in document order and the first match
// wins. Its content comes from the first of:
//
//   - the page's redirect
//   - the page's file, when it exists
//   - the callback registered for the page id and method
//   - the host's catch-all registered with Use
//
// When none applies a "nothing here" placeholder is sent.
//
// # Errors
//
// Every failure goes through TriggerError, which clears the captures, sets
// the status and renders the website's error page for that status if the
// document declares one. Otherwise the callback registered with Error runs,
// and without one a small built-in HTML page is sent.
package router
