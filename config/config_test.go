package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ksyq12/sitemux/internal/errors"
)

const sampleJSON = `{
  "enabled": true,
  "websites": [
    {
      "id": "example.com",
      "www": true,
      "favicon": "favicon.ico",
      "allowedOrigins": ["*"],
      "static": [["public", "/assets"], [1, "/bad"], ["only-one"]],
      "pages": [
        {"id": "home", "path": "/", "file": "index.html"},
        {"id": "post", "path": "/blog/*"},
        {"id": "old", "path": "/old", "redirect": "https://example.com/"}
      ],
      "errorPages": [{"code": 404, "page": "home"}]
    },
    {"id": "off.com", "enabled": false}
  ]
}`

const sampleYAML = `enabled: true
websites:
  - id: example.com
    www: false
    static:
      - [public, /assets]
      - [public, 3]
    pages:
      - id: home
        path: /
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestFileLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("valid json", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "server.json", sampleJSON)

		cfg, err := NewFileLoader(path).Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if !cfg.IsEnabled() {
			t.Error("expected process enabled")
		}
		if len(cfg.Websites) != 2 {
			t.Fatalf("expected 2 websites, got %d", len(cfg.Websites))
		}

		site, ok := cfg.Website("example.com")
		if !ok {
			t.Fatal("example.com not found")
		}
		if want, set := site.WWWPolicy(); !set || !want {
			t.Errorf("WWWPolicy() = %v, %v; want true, true", want, set)
		}
		if !site.AllowsAnyOrigin() {
			t.Error("expected wildcard origin")
		}
		if len(site.Static) != 3 {
			t.Fatalf("expected 3 static rules, got %d", len(site.Static))
		}
		if r := site.Static[0]; !r.Valid || r.Directory != "public" || r.URLPrefix != "/assets" {
			t.Errorf("unexpected first rule: %+v", r)
		}
		if site.Static[1].Valid || site.Static[2].Valid {
			t.Error("malformed static pairs should be invalid")
		}
		if p, ok := site.Page("old"); !ok || p.Redirect != "https://example.com/" {
			t.Errorf("Page(old) = %+v, %v", p, ok)
		}
		if len(site.ErrorPages) != 1 || site.ErrorPages[0].Code != 404 {
			t.Errorf("unexpected error pages: %+v", site.ErrorPages)
		}

		off, _ := cfg.Website("off.com")
		if off.IsEnabled() {
			t.Error("off.com should be disabled")
		}

		absDir, _ := filepath.Abs(dir)
		if cfg.Root != absDir {
			t.Errorf("Root = %s, want %s", cfg.Root, absDir)
		}
		if got := cfg.Resolve("index.html"); got != filepath.Join(absDir, "index.html") {
			t.Errorf("Resolve() = %s", got)
		}
		if got := cfg.Resolve("/etc/hosts"); got != "/etc/hosts" {
			t.Errorf("absolute paths must be kept, got %s", got)
		}
	})

	t.Run("valid yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "server.yaml", sampleYAML)

		cfg, err := NewFileLoader(path).Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		site, ok := cfg.Website("example.com")
		if !ok {
			t.Fatal("example.com not found")
		}
		if want, set := site.WWWPolicy(); !set || want {
			t.Errorf("WWWPolicy() = %v, %v; want false, true", want, set)
		}
		if len(site.Static) != 2 || !site.Static[0].Valid || site.Static[1].Valid {
			t.Errorf("unexpected static rules: %+v", site.Static)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileLoader(filepath.Join(t.TempDir(), "server.json")).Load(ctx)
		if !errors.Is(err, errors.ErrConfigUnavailable) {
			t.Errorf("expected ErrConfigUnavailable, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "server.json", `{"websites": [`)
		_, err := NewFileLoader(path).Load(ctx)
		if !errors.Is(err, errors.ErrConfigMalformed) {
			t.Errorf("expected ErrConfigMalformed, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "server.json", sampleJSON)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := NewFileLoader(path).Load(cctx); !errors.Is(err, errors.ErrConfigUnavailable) {
			t.Errorf("expected ErrConfigUnavailable, got %v", err)
		}
	})

	t.Run("default path", func(t *testing.T) {
		if l := NewFileLoader(""); l.Path != DefaultFile {
			t.Errorf("Path = %s, want %s", l.Path, DefaultFile)
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse("inline", []byte(`{}`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !cfg.IsEnabled() {
		t.Error("absent enabled should mean enabled")
	}
	if cfg.Websites == nil {
		t.Error("Websites should be initialized")
	}

	var w WebsiteConfig
	if !w.IsEnabled() {
		t.Error("absent website enabled should mean enabled")
	}
	if _, set := w.WWWPolicy(); set {
		t.Error("absent www should mean no policy")
	}
}

func TestWebsiteFirstMatchWins(t *testing.T) {
	cfg := &Config{Websites: []WebsiteConfig{
		{ID: "a.com", Favicon: "first.ico"},
		{ID: "a.com", Favicon: "second.ico"},
	}}
	w, ok := cfg.Website("a.com")
	if !ok || w.Favicon != "first.ico" {
		t.Errorf("expected first entry, got %+v", w)
	}
	if _, ok := cfg.Website("www.a.com"); ok {
		t.Error("lookup must be exact")
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"server.json":     FormatJSON,
		"server.yaml":     FormatYAML,
		"conf/server.YML": FormatYAML,
		"server":          FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%s) = %v, want %v", path, got, want)
		}
	}
}

func TestMemoryLoader(t *testing.T) {
	cfg := New()
	got, err := (&MemoryLoader{Config: cfg}).Load(context.Background())
	if err != nil || got != cfg {
		t.Errorf("Load() = %v, %v", got, err)
	}

	want := errors.ConfigUnavailable("x", nil)
	if _, err := (&MemoryLoader{Err: want}).Load(context.Background()); err != want {
		t.Errorf("expected stored error, got %v", err)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{EnvListen, EnvConfig, EnvReadTimeout, EnvWriteTimeout, EnvIdleTimeout, EnvGzip} {
			t.Setenv(k, "")
		}
		s, err := LoadSettings(filepath.Join(t.TempDir(), ".env"))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.Listen != ":8080" || s.ConfigPath != DefaultFile || s.ReadTimeout != 30*time.Second || s.Gzip {
			t.Errorf("unexpected defaults: %+v", s)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvListen, ":9000")
		t.Setenv(EnvReadTimeout, "5")
		t.Setenv(EnvIdleTimeout, "2m")
		t.Setenv(EnvGzip, "true")

		s, err := LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.Listen != ":9000" {
			t.Errorf("Listen = %s", s.Listen)
		}
		if s.ReadTimeout != 5*time.Second || s.IdleTimeout != 2*time.Minute {
			t.Errorf("timeouts = %v, %v", s.ReadTimeout, s.IdleTimeout)
		}
		if !s.Gzip {
			t.Error("expected gzip on")
		}
	})

	t.Run("dotenv file", func(t *testing.T) {
		// godotenv never overrides a variable that exists, even if empty
		t.Setenv(EnvConfig, "")
		os.Unsetenv(EnvConfig)
		envFile := writeFile(t, t.TempDir(), ".env", EnvConfig+"=/srv/sites/server.json\n")

		s, err := LoadSettings(envFile)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.ConfigPath != "/srv/sites/server.json" {
			t.Errorf("ConfigPath = %s", s.ConfigPath)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv(EnvWriteTimeout, "soon")
		if _, err := LoadSettings(""); err == nil {
			t.Error("expected error for invalid duration")
		}
	})
}
