package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// WebsiteConfig describes one virtual host.
type WebsiteConfig struct {
	ID             string       `json:"id" yaml:"id"` // canonical host, no "www."
	Enabled        *bool        `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	WWW            *bool        `json:"www,omitempty" yaml:"www,omitempty"`
	Favicon        string       `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	AllowedOrigins []string     `json:"allowedOrigins,omitempty" yaml:"allowedOrigins,omitempty"`
	Static         []StaticRule `json:"static,omitempty" yaml:"static,omitempty"`
	Pages          []PageConfig `json:"pages,omitempty" yaml:"pages,omitempty"`
	ErrorPages     []ErrorPage  `json:"errorPages,omitempty" yaml:"errorPages,omitempty"`
}

// PageConfig is a named route matched by a wildcard path template.
type PageConfig struct {
	ID       string `json:"id" yaml:"id"`
	Path     string `json:"path" yaml:"path"`
	Redirect string `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
}

// ErrorPage renders page Page whenever status Code is triggered.
type ErrorPage struct {
	Code int    `json:"code" yaml:"code"`
	Page string `json:"page" yaml:"page"`
}

// StaticRule serves files from Directory for paths under URLPrefix.
// In the document it is written as a pair: ["public", "/assets"].
type StaticRule struct {
	Directory string
	URLPrefix string
	// Valid is false when the document entry was not a pair of strings.
	// Invalid rules are skipped during dispatch.
	Valid bool
}

// IsEnabled reports whether the website serves content. Absent means yes.
func (w *WebsiteConfig) IsEnabled() bool {
	return w.Enabled == nil || *w.Enabled
}

// WWWPolicy returns the canonicalization policy and whether one is set.
func (w *WebsiteConfig) WWWPolicy() (want bool, set bool) {
	if w.WWW == nil {
		return false, false
	}
	return *w.WWW, true
}

// Page returns the first page with the given id.
func (w *WebsiteConfig) Page(id string) (PageConfig, bool) {
	for _, p := range w.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return PageConfig{}, false
}

// AllowsAnyOrigin reports whether "*" is among the allowed origins.
func (w *WebsiteConfig) AllowsAnyOrigin() bool {
	return w.AllowsOrigin("*")
}

// AllowsOrigin reports whether origin is listed verbatim.
func (w *WebsiteConfig) AllowsOrigin(origin string) bool {
	for _, o := range w.AllowedOrigins {
		if o == origin {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts ["directory", "/prefix"]. Any other shape yields
// an invalid rule instead of an error.
func (r *StaticRule) UnmarshalJSON(data []byte) error {
	*r = StaticRule{}
	var pair []interface{}
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) < 2 {
		return nil
	}
	dir, ok1 := pair[0].(string)
	prefix, ok2 := pair[1].(string)
	if ok1 && ok2 {
		*r = StaticRule{Directory: dir, URLPrefix: prefix, Valid: true}
	}
	return nil
}

// MarshalJSON writes the rule back in pair form.
func (r StaticRule) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{r.Directory, r.URLPrefix})
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (r *StaticRule) UnmarshalYAML(value *yaml.Node) error {
	*r = StaticRule{}
	if value.Kind != yaml.SequenceNode || len(value.Content) < 2 {
		return nil
	}
	dir, prefix := value.Content[0], value.Content[1]
	if dir.Kind != yaml.ScalarNode || prefix.Kind != yaml.ScalarNode {
		return nil
	}
	if dir.ShortTag() != "!!str" || prefix.ShortTag() != "!!str" {
		return nil
	}
	*r = StaticRule{Directory: dir.Value, URLPrefix: prefix.Value, Valid: true}
	return nil
}
