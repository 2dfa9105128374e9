package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/sitemux/internal/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the well-known name of the site document.
const DefaultFile = "server.json"

// Config is the parsed site document.
type Config struct {
	Enabled  *bool           `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Websites []WebsiteConfig `json:"websites" yaml:"websites"`

	// Root is the directory relative file paths resolve against.
	// Loaders set it to the directory holding the document.
	Root string `json:"-" yaml:"-"`
}

// Format selects the document decoder.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the decoder from the file extension. Anything that is not
// .yaml or .yml is decoded as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// New returns an empty, enabled configuration.
func New() *Config {
	return &Config{Websites: []WebsiteConfig{}}
}

// IsEnabled reports whether the process-wide switch is on. Absent means yes.
func (c *Config) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Website returns the first website whose id equals host.
func (c *Config) Website(host string) (WebsiteConfig, bool) {
	for _, w := range c.Websites {
		if w.ID == host {
			return w, true
		}
	}
	return WebsiteConfig{}, false
}

// Resolve turns a document-relative path into one usable on disk.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}

// Parse decodes a document. Decoding errors are reported as
// errors.ErrConfigMalformed against name.
func Parse(name string, data []byte, format Format) (*Config, error) {
	cfg := New()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.ConfigMalformed(name, err)
	}
	if cfg.Websites == nil {
		cfg.Websites = []WebsiteConfig{}
	}
	return cfg, nil
}

// Loader produces the configuration for one dispatch.
type Loader interface {
	Load(ctx context.Context) (*Config, error)
}

// FileLoader reads and parses the document on every call.
type FileLoader struct {
	Path string
}

// NewFileLoader returns a loader for path, defaulting to DefaultFile.
func NewFileLoader(path string) *FileLoader {
	if path == "" {
		path = DefaultFile
	}
	return &FileLoader{Path: path}
}

// Load reads the document. A read failure is errors.ErrConfigUnavailable,
// a decode failure errors.ErrConfigMalformed.
func (l *FileLoader) Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ConfigUnavailable(l.Path, err)
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, errors.ConfigUnavailable(l.Path, err)
	}

	cfg, err := Parse(l.Path, data, FormatFor(l.Path))
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Dir(l.Path))
	if err != nil {
		root = filepath.Dir(l.Path)
	}
	cfg.Root = root
	return cfg, nil
}

// MemoryLoader serves a fixed configuration, or a fixed error.
type MemoryLoader struct {
	Config *Config
	Err    error
}

// Load returns the stored configuration.
func (m *MemoryLoader) Load(ctx context.Context) (*Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return New(), nil
	}
	return m.Config, nil
}
