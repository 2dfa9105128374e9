package router

import (
	"context"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/internal/logger"
	"github.com/ksyq12/sitemux/pathmatch"
)

// Router dispatches requests across the websites of a configuration and
// owns the handler registry consulted while doing so.
type Router struct {
	*Registry

	loader config.Loader

	// compiled templates and static prefixes, keyed by source text
	matchers sync.Map
	prefixes sync.Map

	newRequestID func() string
}

// New returns a Router reading its configuration from loader.
func New(loader config.Loader) *Router {
	return &Router{
		Registry:     NewRegistry(),
		loader:       loader,
		newRequestID: uuid.NewString,
	}
}

// Websites returns the configured websites. Load failures yield an empty
// list.
func (rt *Router) Websites(ctx context.Context) []config.WebsiteConfig {
	cfg, err := rt.loader.Load(ctx)
	if err != nil {
		logger.Debug("websites: %v", err)
		return []config.WebsiteConfig{}
	}
	return cfg.Websites
}

// Each calls fn for every configured website, in document order.
func (rt *Router) Each(ctx context.Context, fn func(config.WebsiteConfig)) {
	if fn == nil {
		return
	}
	for _, w := range rt.Websites(ctx) {
		fn(w)
	}
}

// ReadFile returns the content of path as text.
func (rt *Router) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (rt *Router) compile(template string) (*pathmatch.Matcher, error) {
	if m, ok := rt.matchers.Load(template); ok {
		return m.(*pathmatch.Matcher), nil
	}
	m, err := pathmatch.Compile(template)
	if err != nil {
		return nil, err
	}
	rt.matchers.Store(template, m)
	return m, nil
}

func (rt *Router) prefix(urlPrefix string) (*pathmatch.Matcher, error) {
	if m, ok := rt.prefixes.Load(urlPrefix); ok {
		return m.(*pathmatch.Matcher), nil
	}
	m, err := pathmatch.Prefix(urlPrefix)
	if err != nil {
		return nil, err
	}
	rt.prefixes.Store(urlPrefix, m)
	return m, nil
}

// siteContext is the website a dispatch resolved, with the configuration
// it came from.
type siteContext struct {
	cfg     *config.Config
	website config.WebsiteConfig
	known   bool
}

func (s *siteContext) resolve(path string) string {
	return s.cfg.Resolve(path)
}

// errorPage returns the page configured for code. When several entries
// name the same code the last one whose page exists wins.
func (s *siteContext) errorPage(code int) (config.PageConfig, bool) {
	var (
		page  config.PageConfig
		found bool
	)
	for _, e := range s.website.ErrorPages {
		if e.Code != code {
			continue
		}
		if p, ok := s.website.Page(e.Page); ok {
			page, found = p, true
		}
	}
	return page, found
}
