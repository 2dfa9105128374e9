package router

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/internal/hostname"
	"github.com/ksyq12/sitemux/pathmatch"
)

// Request is the normalized descriptor of one incoming request.
type Request struct {
	Hostname string // as received, without port; may start with "www."
	Protocol string // "http" or "https"
	Path     string // escaped URL path without query string
	Query    string // raw query without the leading "?"
	Method   string
	Origin   string // value of the Origin header, "" when absent

	// Params holds the wildcard captures of the matched page. It is
	// cleared whenever the error trigger runs.
	Params pathmatch.Params

	ctx  context.Context
	site *siteContext // website resolved by the current dispatch
}

// NewRequest builds a Request from an absolute URL, mostly for tests and
// dry runs. The transport builds requests from *http.Request instead.
func NewRequest(ctx context.Context, method, rawURL string) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %q has no host", rawURL)
	}
	proto := u.Scheme
	if proto == "" {
		proto = "http"
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if method == "" {
		method = "GET"
	}
	return (&Request{
		Hostname: u.Hostname(),
		Protocol: proto,
		Path:     path,
		Query:    u.RawQuery,
		Method:   method,
	}).WithContext(ctx), nil
}

// Host returns the canonical hostname used for lookups.
func (r *Request) Host() string {
	return hostname.Canonical(r.Hostname)
}

// OriginalURL returns the path with its query string, as received.
func (r *Request) OriginalURL() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// Param returns wildcard capture i of the matched page.
func (r *Request) Param(i int) string {
	return r.Params.Get(i)
}

// Context returns the request context, never nil.
func (r *Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext sets the request context and returns r.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// Website returns the website resolved for this request, if any.
func (r *Request) Website() (config.WebsiteConfig, bool) {
	if r.site == nil || !r.site.known {
		return config.WebsiteConfig{}, false
	}
	return r.site.website, true
}

// Response receives the directives a dispatch produces. The transport
// executes them; Recorder captures them.
type Response interface {
	Status(code int)
	SetHeader(key, value string)
	Redirect(url string)
	SendFile(path string)
	Send(body []byte)
}
