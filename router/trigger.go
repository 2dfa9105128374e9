package router

import (
	"github.com/ksyq12/sitemux/internal/template"
)

// TriggerError renders status code for req. Params are cleared and the
// status is set first. The website's configured error page is rendered
// when one exists; otherwise the host's registered error callback runs;
// otherwise a built-in HTML page is sent.
//
// Error pages come from the website resolved by the current dispatch.
// When the process is disabled or the document cannot be loaded no website
// is resolved, so only registered callbacks and the built-in page apply.
//
// A configured error page with no content source leaves the body empty.
func (rt *Router) TriggerError(code int, req *Request, res Response) {
	req.Params = nil
	res.Status(code)

	if site := req.site; site != nil {
		if page, ok := site.errorPage(code); ok {
			rt.render(&renderContext{router: rt, req: req, res: res, site: site, page: page})
			return
		}
	}

	if h := rt.LookupError(req.Host(), code); h != nil {
		h(req, res)
		return
	}

	res.Send([]byte(template.RenderError(code, req.Path)))
}
