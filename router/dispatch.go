package router

import (
	"github.com/ksyq12/sitemux/internal/errors"
	"github.com/ksyq12/sitemux/internal/hostname"
	"github.com/ksyq12/sitemux/internal/logger"
	"github.com/ksyq12/sitemux/internal/template"
)

// dispatch is the state of one request moving through the cascade.
type dispatch struct {
	router  *Router
	req     *Request
	res     Response
	host    string
	site    *siteContext
	log     *logger.Entry
	outcome string
}

// Dispatch resolves req to exactly one outcome and writes it to res:
//
//  1. a disabled process answers 503
//  2. the website is looked up by canonical host; unknown hosts get an
//     empty website
//  3. the website's www policy may redirect to the canonical hostname
//  4. a disabled website answers 503
//  5. /favicon.ico is served from the website's favicon file
//  6. the first static rule whose prefix matches decides the static branch
//  7. the first page whose template matches is rendered
//  8. anything else answers 404
//
// Every failure, including an unreadable configuration, is rendered by
// the error trigger.
func (rt *Router) Dispatch(req *Request, res Response) {
	d := &dispatch{
		router: rt,
		req:    req,
		res:    res,
		host:   req.Host(),
	}
	d.log = logger.With(logger.Fields{
		"request_id": rt.newRequestID(),
		"host":       d.host,
		"method":     req.Method,
		"path":       req.Path,
	})

	req.site = nil
	d.run()

	d.log.With(logger.Fields{"outcome": d.outcome}).Debug("dispatched")
}

func (d *dispatch) run() {
	cfg, err := d.router.loader.Load(d.req.Context())
	if err != nil {
		d.log.Warn("configuration: %v", err)
		d.fail(err)
		return
	}

	if !cfg.IsEnabled() {
		d.fail(errors.ServiceDisabled(""))
		return
	}

	website, known := cfg.Website(d.host)
	d.site = &siteContext{cfg: cfg, website: website, known: known}
	d.req.site = d.site

	if d.canonicalize() {
		return
	}

	if !website.IsEnabled() {
		d.fail(errors.ServiceDisabled(d.host))
		return
	}

	if d.favicon() || d.static() {
		return
	}

	if len(website.Pages) == 0 {
		d.fail(errors.NotFound(d.host, d.req.Path))
		return
	}

	if d.pages() {
		return
	}
	d.fail(errors.NotFound(d.host, d.req.Path))
}

// fail renders err through the error trigger.
func (d *dispatch) fail(err error) {
	code := errors.StatusCode(err)
	d.outcome = "error"
	d.log.Debug("%v (status %d)", err, code)
	d.router.TriggerError(code, d.req, d.res)
}

// canonicalize redirects when the hostname disagrees with the website's
// www policy. It runs for every request of a known website, whether or not
// the path exists.
func (d *dispatch) canonicalize() bool {
	want, set := d.site.website.WWWPolicy()
	if !set {
		return false
	}

	raw := d.req.Hostname
	var target string
	switch {
	case want && !hostname.IsWWW(raw):
		target = hostname.WithWWW(raw)
	case !want && hostname.IsWWW(raw):
		target = d.host
	default:
		return false
	}

	d.res.Redirect(d.req.Protocol + "://" + target + d.req.OriginalURL())
	d.outcome = "canonical-redirect"
	return true
}

func (d *dispatch) favicon() bool {
	w := &d.site.website
	if w.Favicon == "" || d.req.Path != "/favicon.ico" {
		return false
	}
	path := d.site.resolve(w.Favicon)
	if !isFile(path) {
		return false
	}
	d.res.SendFile(path)
	d.outcome = "favicon"
	return true
}

// pages renders the first page whose template matches the path.
func (d *dispatch) pages() bool {
	for _, page := range d.site.website.Pages {
		m, err := d.router.compile(page.Path)
		if err != nil {
			d.log.Warn("page %q skipped: %v", page.ID, err)
			continue
		}
		params, ok := m.Match(d.req.Path)
		if !ok {
			continue
		}

		d.req.Params = params
		c := &renderContext{router: d.router, req: d.req, res: d.res, site: d.site, page: page}
		if source, ok := d.router.render(c); ok {
			d.outcome = "page:" + source
			return true
		}

		d.log.Debug("%v", errors.HandlerMissing(d.host, page.ID))
		d.res.Send([]byte(template.RenderPlaceholder()))
		d.outcome = "placeholder"
		return true
	}
	return false
}
