package cli

import (
	"context"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/router"
	"github.com/ksyq12/sitemux/transport"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader   ConfigLoader
	SettingsLoader SettingsLoader
	ServerRunner   ServerRunner
}

// ConfigLoader opens the site document at a path
type ConfigLoader interface {
	Loader(path string) config.Loader
}

// SettingsLoader reads process settings
type SettingsLoader interface {
	Load() (*config.Settings, error)
}

// ServerRunner serves a router until ctx is done
type ServerRunner interface {
	Run(ctx context.Context, rt *router.Router, settings config.Settings) error
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:   &realConfigLoader{},
	SettingsLoader: &realSettingsLoader{envFile: ".env"},
	ServerRunner:   &realServerRunner{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing functions

type realConfigLoader struct{}

func (r *realConfigLoader) Loader(path string) config.Loader {
	return config.NewFileLoader(path)
}

type realSettingsLoader struct {
	envFile string
}

func (r *realSettingsLoader) Load() (*config.Settings, error) {
	return config.LoadSettings(r.envFile)
}

type realServerRunner struct{}

func (r *realServerRunner) Run(ctx context.Context, rt *router.Router, settings config.Settings) error {
	return transport.NewServer(rt, settings).Run(ctx)
}
