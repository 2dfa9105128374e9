package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds process-level options that are not part of the site
// document.
type Settings struct {
	Listen       string
	ConfigPath   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Gzip         bool
}

// Environment variable names read by LoadSettings.
const (
	EnvListen       = "SITEMUX_LISTEN"
	EnvConfig       = "SITEMUX_CONFIG"
	EnvReadTimeout  = "SITEMUX_READ_TIMEOUT"
	EnvWriteTimeout = "SITEMUX_WRITE_TIMEOUT"
	EnvIdleTimeout  = "SITEMUX_IDLE_TIMEOUT"
	EnvGzip         = "SITEMUX_GZIP"
)

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings() *Settings {
	return &Settings{
		Listen:       ":8080",
		ConfigPath:   DefaultFile,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// LoadSettings reads an optional dotenv file and then the environment.
// Variables already set in the environment win over the file. A missing
// envFile is not an error.
func LoadSettings(envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	s := DefaultSettings()
	s.Listen = getEnv(EnvListen, s.Listen)
	s.ConfigPath = getEnv(EnvConfig, s.ConfigPath)
	s.Gzip = getEnv(EnvGzip, "false") == "true"

	var err error
	if s.ReadTimeout, err = getEnvDuration(EnvReadTimeout, s.ReadTimeout); err != nil {
		return nil, err
	}
	if s.WriteTimeout, err = getEnvDuration(EnvWriteTimeout, s.WriteTimeout); err != nil {
		return nil, err
	}
	if s.IdleTimeout, err = getEnvDuration(EnvIdleTimeout, s.IdleTimeout); err != nil {
		return nil, err
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// getEnvDuration accepts Go durations ("45s") or bare seconds ("45").
func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return d, nil
}
