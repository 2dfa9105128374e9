package transport

import (
	"net/http"

	"github.com/ksyq12/sitemux/internal/hostname"
	"github.com/ksyq12/sitemux/router"
)

// NewRequest builds the engine's view of r. The path is kept in its
// escaped form so redirects and page captures see it as the client sent it.
func NewRequest(r *http.Request) *router.Request {
	proto := "http"
	if r.TLS != nil {
		proto = "https"
	}
	path := r.URL.EscapedPath()
	if path == "" {
		path = "/"
	}
	req := &router.Request{
		Hostname: hostname.StripPort(r.Host),
		Protocol: proto,
		Path:     path,
		Query:    r.URL.RawQuery,
		Method:   r.Method,
		Origin:   r.Header.Get("Origin"),
	}
	return req.WithContext(r.Context())
}
