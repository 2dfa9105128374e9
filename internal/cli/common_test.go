package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/ksyq12/sitemux/config"
	"github.com/spf13/cobra"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

func boolPtr(b bool) *bool { return &b }

// runCommand runs fn with a command whose output is captured
func runCommand(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	err := fn(cmd, args)
	return buf.String(), err
}

// setJSON toggles --json for one test
func setJSON(t *testing.T, on bool) {
	t.Helper()
	old := jsonOutput
	jsonOutput = on
	t.Cleanup(func() { jsonOutput = old })
}

func sampleConfig() *config.Config {
	return &config.Config{
		Websites: []config.WebsiteConfig{
			{
				ID:             "example.com",
				WWW:            boolPtr(true),
				AllowedOrigins: []string{"*"},
				Static:         []config.StaticRule{{Directory: "public", URLPrefix: "/assets", Valid: true}},
				Pages: []config.PageConfig{
					{ID: "home", Path: "/"},
					{ID: "old", Path: "/old", Redirect: "/"},
					{ID: "post", Path: "/blog/*"},
				},
				ErrorPages: []config.ErrorPage{{Code: 404, Page: "home"}},
			},
			{ID: "off.test", Enabled: boolPtr(false)},
		},
	}
}

func TestLoadSettings_ConfigFlag(t *testing.T) {
	useDeps(t, NewMockDeps().Build())

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.ConfigPath != config.DefaultFile {
		t.Errorf("ConfigPath = %q, want %q", settings.ConfigPath, config.DefaultFile)
	}

	old := configPath
	configPath = "/srv/sites.yaml"
	defer func() { configPath = old }()

	settings, err = loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.ConfigPath != "/srv/sites.yaml" {
		t.Errorf("ConfigPath = %q, want flag value", settings.ConfigPath)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("settings", func(t *testing.T) {
		useDeps(t, &Dependencies{
			ConfigLoader:   &MockConfigLoader{},
			SettingsLoader: &MockSettingsLoader{Err: errors.New("bad env")},
			ServerRunner:   &MockServerRunner{},
		})
		if _, err := loadConfig(context.Background()); err == nil || !strings.Contains(err.Error(), "bad env") {
			t.Errorf("loadConfig() error = %v", err)
		}
	})

	t.Run("document", func(t *testing.T) {
		useDeps(t, NewMockDeps().WithConfigError(errors.New("no such file")).Build())
		_, err := loadConfig(context.Background())
		if err == nil || !strings.Contains(err.Error(), "server.json") {
			t.Errorf("loadConfig() error = %v", err)
		}
	})
}

func TestWWWPolicy(t *testing.T) {
	tests := []struct {
		www  *bool
		want string
	}{
		{nil, "-"},
		{boolPtr(true), "force"},
		{boolPtr(false), "strip"},
	}
	for _, tt := range tests {
		w := &config.WebsiteConfig{WWW: tt.www}
		if got := wwwPolicy(w); got != tt.want {
			t.Errorf("wwwPolicy(%v) = %q, want %q", tt.www, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "ab..."},
		{"multibyte", "héllo wörld", 8, "héllo..."},
		{"cjk", "http://例え.jp/ページ", 10, "http://..."},
		{"cjk boundary", "例え例え例え例え", 6, "例え例..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) is not valid UTF-8", tt.in, tt.max)
			}
		})
	}
}

func TestRunSites(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		setJSON(t, false)
		useDeps(t, NewMockDeps().WithConfig(sampleConfig()).Build())

		out, err := runCommand(t, runSites)
		if err != nil {
			t.Fatalf("runSites() error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header, separator and 2 rows, got %q", out)
		}
		if !strings.HasPrefix(lines[2], "example.com") || !strings.Contains(lines[2], "force") {
			t.Errorf("row = %q", lines[2])
		}
		if !strings.HasPrefix(lines[3], "off.test") || !strings.Contains(lines[3], "no") {
			t.Errorf("row = %q", lines[3])
		}
	})

	t.Run("json", func(t *testing.T) {
		setJSON(t, true)
		useDeps(t, NewMockDeps().WithConfig(sampleConfig()).Build())

		out, err := runCommand(t, runSites)
		if err != nil {
			t.Fatalf("runSites() error = %v", err)
		}
		var items []siteListItem
		if err := json.Unmarshal([]byte(out), &items); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(items) != 2 || items[0].Pages != 3 || items[0].Static != 1 || items[1].Enabled {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("empty", func(t *testing.T) {
		setJSON(t, true)
		useDeps(t, NewMockDeps().Build())

		out, err := runCommand(t, runSites)
		if err != nil {
			t.Fatalf("runSites() error = %v", err)
		}
		if strings.TrimSpace(out) != "[]" {
			t.Errorf("output = %q, want []", out)
		}
	})

	t.Run("load error", func(t *testing.T) {
		setJSON(t, false)
		useDeps(t, NewMockDeps().WithConfigError(errors.New("boom")).Build())

		if _, err := runCommand(t, runSites); err == nil {
			t.Error("expected error")
		}
	})
}
