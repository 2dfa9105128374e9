package router

// HostView is a Registry curried over one host.
//
//	r.Host("example.com").
//	    Get("home", home).
//	    Post("contact", contact).
//	    Error(404, notFound)
type HostView struct {
	registry *Registry
	host     string
}

// Host returns a view registering everything on host.
func (r *Registry) Host(host string) *HostView {
	return &HostView{registry: r, host: host}
}

// Name returns the host the view registers on.
func (v *HostView) Name() string {
	return v.host
}

// Static registers h for files with any of exts.
func (v *HostView) Static(h StaticHandler, exts ...string) *HostView {
	v.registry.Static(exts, h, v.host)
	return v
}

// Use registers the catch-all.
func (v *HostView) Use(h PageHandler) *HostView {
	v.registry.Use(h, v.host)
	return v
}

// Get registers h for page id on GET.
func (v *HostView) Get(id string, h PageHandler) *HostView {
	v.registry.Get(id, h, v.host)
	return v
}

// Post registers h for page id on POST.
func (v *HostView) Post(id string, h PageHandler) *HostView {
	v.registry.Post(id, h, v.host)
	return v
}

// Put registers h for page id on PUT.
func (v *HostView) Put(id string, h PageHandler) *HostView {
	v.registry.Put(id, h, v.host)
	return v
}

// Delete registers h for page id on DELETE.
func (v *HostView) Delete(id string, h PageHandler) *HostView {
	v.registry.Delete(id, h, v.host)
	return v
}

// All registers h for page id on every method.
func (v *HostView) All(id string, h PageHandler) *HostView {
	v.registry.All(id, h, v.host)
	return v
}

// Error registers h for status code.
func (v *HostView) Error(code int, h ErrorHandler) *HostView {
	v.registry.Error(code, h, v.host)
	return v
}
