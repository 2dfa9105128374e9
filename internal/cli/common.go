package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/internal/output"
	"github.com/spf13/cobra"
)

// loadSettings reads process settings and applies the --config flag
func loadSettings() (*config.Settings, error) {
	settings, err := deps.SettingsLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if configPath != "" {
		settings.ConfigPath = configPath
	}
	return settings, nil
}

// siteLoader returns the loader for the configured site document
func siteLoader() (config.Loader, string, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, "", err
	}
	return deps.ConfigLoader.Loader(settings.ConfigPath), settings.ConfigPath, nil
}

// loadConfig loads the site document once
func loadConfig(ctx context.Context) (*config.Config, error) {
	loader, path, err := siteLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// printer returns an output printer bound to the command's stdout
func printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout())
}

// commandContext returns the command context, never nil
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// yesNo renders a boolean for tables
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// wwwPolicy renders a website's www policy
func wwwPolicy(w *config.WebsiteConfig) string {
	want, set := w.WWWPolicy()
	if !set {
		return "-"
	}
	if want {
		return "force"
	}
	return "strip"
}

// itoa is strconv.Itoa for table cells
func itoa(n int) string {
	return strconv.Itoa(n)
}

// truncate shortens s to at most limit runes, ending in "..." when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
