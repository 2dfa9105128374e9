package cli

import (
	"context"

	"github.com/ksyq12/sitemux/config"
	"github.com/ksyq12/sitemux/router"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg     *config.Config
	LoadErr error
	Paths   []string
}

func (m *MockConfigLoader) Loader(path string) config.Loader {
	m.Paths = append(m.Paths, path)
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return &config.MemoryLoader{Config: m.Cfg, Err: m.LoadErr}
}

// MockSettingsLoader is a test double for SettingsLoader
type MockSettingsLoader struct {
	Settings *config.Settings
	Err      error
}

func (m *MockSettingsLoader) Load() (*config.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		return config.DefaultSettings(), nil
	}
	s := *m.Settings
	return &s, nil
}

// MockServerRunner is a test double for ServerRunner
type MockServerRunner struct {
	Calls    int
	Settings config.Settings
	Router   *router.Router
	Err      error
}

func (m *MockServerRunner) Run(ctx context.Context, rt *router.Router, settings config.Settings) error {
	m.Calls++
	m.Router = rt
	m.Settings = settings
	return m.Err
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			ConfigLoader:   &MockConfigLoader{Cfg: config.New()},
			SettingsLoader: &MockSettingsLoader{},
			ServerRunner:   &MockServerRunner{},
		},
	}
}

// WithConfig sets the config for the mock
func (b *MockDependenciesBuilder) WithConfig(cfg *config.Config) *MockDependenciesBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithConfigLoader sets a custom config loader
func (b *MockDependenciesBuilder) WithConfigLoader(loader ConfigLoader) *MockDependenciesBuilder {
	b.deps.ConfigLoader = loader
	return b
}

// WithConfigError makes every load fail with err
func (b *MockDependenciesBuilder) WithConfigError(err error) *MockDependenciesBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{LoadErr: err}
	return b
}

// WithSettings sets the process settings
func (b *MockDependenciesBuilder) WithSettings(s *config.Settings) *MockDependenciesBuilder {
	b.deps.SettingsLoader = &MockSettingsLoader{Settings: s}
	return b
}

// WithServerRunner sets a custom server runner
func (b *MockDependenciesBuilder) WithServerRunner(runner ServerRunner) *MockDependenciesBuilder {
	b.deps.ServerRunner = runner
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// useDeps installs d for the duration of a test
func useDeps(t interface {
	Helper()
	Cleanup(func())
}, d *Dependencies) {
	t.Helper()
	old := deps
	deps = d
	t.Cleanup(func() {
		deps = old
	})
}
