package router

import (
	"strings"
	"sync"

	"github.com/ksyq12/sitemux/internal/hostname"
)

// methodClass selects one of the per-method page registries.
type methodClass int

const (
	classGet methodClass = iota
	classPost
	classPut
	classDelete
	classAll
)

// classOf maps an HTTP method to its registry. Methods other than POST,
// PUT and DELETE use the GET registry.
func classOf(method string) methodClass {
	switch method {
	case "POST":
		return classPost
	case "PUT":
		return classPut
	case "DELETE":
		return classDelete
	default:
		return classGet
	}
}

// Registry holds the callbacks registered per host. Hosts are stored in
// canonical form. A nil callback may be registered; lookups treat it like
// a missing entry.
//
// Registration is expected to finish before traffic starts, but the
// registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	statics map[string]map[string]StaticHandler
	uses    map[string]PageHandler
	pages   map[methodClass]map[string]map[string]PageHandler
	errors  map[string]map[int]ErrorHandler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		statics: make(map[string]map[string]StaticHandler),
		uses:    make(map[string]PageHandler),
		pages:   make(map[methodClass]map[string]map[string]PageHandler),
		errors:  make(map[string]map[int]ErrorHandler),
	}
}

// Static registers h for files with any of exts served on hosts.
// Extensions are given without the leading dot.
func (r *Registry) Static(exts []string, h StaticHandler, hosts ...string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, host := range hosts {
		host = hostname.Canonical(host)
		if r.statics[host] == nil {
			r.statics[host] = make(map[string]StaticHandler)
		}
		for _, ext := range exts {
			r.statics[host][strings.TrimPrefix(ext, ".")] = h
		}
	}
	return r
}

// Use registers the catch-all for hosts, invoked for matched pages and
// error pages nothing more specific can render.
func (r *Registry) Use(h PageHandler, hosts ...string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, host := range hosts {
		r.uses[hostname.Canonical(host)] = h
	}
	return r
}

// Get registers h for page id on GET (and any method other than POST, PUT
// and DELETE).
func (r *Registry) Get(id string, h PageHandler, hosts ...string) *Registry {
	return r.page(classGet, id, h, hosts)
}

// Post registers h for page id on POST.
func (r *Registry) Post(id string, h PageHandler, hosts ...string) *Registry {
	return r.page(classPost, id, h, hosts)
}

// Put registers h for page id on PUT.
func (r *Registry) Put(id string, h PageHandler, hosts ...string) *Registry {
	return r.page(classPut, id, h, hosts)
}

// Delete registers h for page id on DELETE.
func (r *Registry) Delete(id string, h PageHandler, hosts ...string) *Registry {
	return r.page(classDelete, id, h, hosts)
}

// All registers h for page id on every method. Method-specific
// registrations take precedence.
func (r *Registry) All(id string, h PageHandler, hosts ...string) *Registry {
	return r.page(classAll, id, h, hosts)
}

// Error registers h for status code on hosts.
func (r *Registry) Error(code int, h ErrorHandler, hosts ...string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, host := range hosts {
		host = hostname.Canonical(host)
		if r.errors[host] == nil {
			r.errors[host] = make(map[int]ErrorHandler)
		}
		r.errors[host][code] = h
	}
	return r
}

func (r *Registry) page(class methodClass, id string, h PageHandler, hosts []string) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	byHost := r.pages[class]
	if byHost == nil {
		byHost = make(map[string]map[string]PageHandler)
		r.pages[class] = byHost
	}
	for _, host := range hosts {
		host = hostname.Canonical(host)
		if byHost[host] == nil {
			byHost[host] = make(map[string]PageHandler)
		}
		byHost[host][id] = h
	}
	return r
}

// LookupPage returns the callback for page id on host for method,
// falling back to the All registry. It returns nil when nothing callable
// is registered.
func (r *Registry) LookupPage(id, host, method string) PageHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h := r.pages[classOf(method)][host][id]; h != nil {
		return h
	}
	return r.pages[classAll][host][id]
}

// CatchAll returns the Use callback of host, or nil.
func (r *Registry) CatchAll(host string) PageHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uses[host]
}

// LookupStatic returns the hook for filename on host, keyed by
// Extension(filename), or nil.
func (r *Registry) LookupStatic(host, filename string) StaticHandler {
	ext := Extension(filename)
	if ext == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.statics[host][ext]
}

// LookupError returns the callback for code on host, or nil.
func (r *Registry) LookupError(host string, code int) ErrorHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.errors[host][code]
}

// Extension returns the segment between the first and second dot of
// filename: "site.css" gives "css", "archive.tar.gz" gives "tar". It
// returns "" when there is no such segment.
func Extension(filename string) string {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
