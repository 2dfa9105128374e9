package router

import "github.com/ksyq12/sitemux/config"

// renderContext carries what a content source needs to render one page.
type renderContext struct {
	router *Router
	req    *Request
	res    Response
	site   *siteContext
	page   config.PageConfig
}

func (c *renderContext) data() PageData {
	return PageData{Page: c.page, Website: c.site.website}
}

// contentSource is one way of producing a page's content. serve reports
// whether it handled the request.
type contentSource interface {
	name() string
	serve(c *renderContext) bool
}

// contentSources are tried in priority order.
var contentSources = []contentSource{
	redirectSource{},
	fileSource{},
	callbackSource{},
	catchAllSource{},
}

// render serves c.page from the first source that can, returning that
// source's name.
func (rt *Router) render(c *renderContext) (string, bool) {
	for _, src := range contentSources {
		if src.serve(c) {
			return src.name(), true
		}
	}
	return "", false
}

type redirectSource struct{}

func (redirectSource) name() string { return "redirect" }

func (redirectSource) serve(c *renderContext) bool {
	if c.page.Redirect == "" {
		return false
	}
	c.res.Redirect(c.page.Redirect)
	return true
}

// fileSource sends the page's file when it exists. A missing file falls
// through to the callbacks.
type fileSource struct{}

func (fileSource) name() string { return "file" }

func (fileSource) serve(c *renderContext) bool {
	if c.page.File == "" {
		return false
	}
	path := c.site.resolve(c.page.File)
	if !isFile(path) {
		return false
	}
	c.res.SendFile(path)
	return true
}

type callbackSource struct{}

func (callbackSource) name() string { return "handler" }

func (callbackSource) serve(c *renderContext) bool {
	h := c.router.LookupPage(c.page.ID, c.req.Host(), c.req.Method)
	if h == nil {
		return false
	}
	h(c.data(), c.req, c.res)
	return true
}

type catchAllSource struct{}

func (catchAllSource) name() string { return "catch-all" }

func (catchAllSource) serve(c *renderContext) bool {
	h := c.router.CatchAll(c.req.Host())
	if h == nil {
		return false
	}
	h(c.data(), c.req, c.res)
	return true
}
