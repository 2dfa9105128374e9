package router

import "github.com/ksyq12/sitemux/config"

// PageData is passed to page, catch-all and error-page callbacks.
type PageData struct {
	Page    config.PageConfig
	Website config.WebsiteConfig
}

// PageHandler renders a matched page. It also serves as the type of the
// per-host catch-all registered with Use. Handlers must finish the
// response before returning.
type PageHandler func(data PageData, req *Request, res Response)

// ErrorHandler renders a triggered error status. The status is already
// set when it runs.
type ErrorHandler func(req *Request, res Response)

// StaticData is passed to static hooks.
type StaticData struct {
	Website  config.WebsiteConfig
	Filename string // base name of the served file
	Content  string // file content read as text
}

// StaticHandler may rewrite a static file before it is sent. Returning
// ok == false sends the original content.
type StaticHandler func(data StaticData, req *Request, res Response) (replacement string, ok bool)
