// Package config loads the endpoint settings from the environment,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names.
const (
	EnvHost        = "API_HOST"
	EnvURL         = "API_URL"
	EnvInsecure    = "API_INSECURE"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFile     = "LOG_FILE"
	EnvLogMaxSize  = "LOG_MAX_SIZE"
	EnvLogMaxFiles = "LOG_MAX_FILES"
)

// DotEnvFile is the file read by LoadDotEnv.
const DotEnvFile = ".env"

// ErrMissing is returned when a required setting is absent or empty.
var ErrMissing = errors.New("required setting missing")

// Config holds the settings for a single run.
type Config struct {
	Host     string
	BaseURL  string
	Insecure bool
	Log      LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level    string // debug, info, warn, error (default: warn)
	File     string // empty logs to stderr
	MaxSize  int    // MB
	MaxFiles int
}

// LoadDotEnv populates the process environment from .env files. Variables
// already set are left alone. Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{DotEnvFile}
	}

	var present []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load %s: %w", strings.Join(present, ", "), err)
	}
	return nil
}

// Bind registers defaults and environment bindings on v.
func Bind(v *viper.Viper) {
	v.SetDefault(EnvInsecure, true)
	v.SetDefault(EnvLogLevel, "warn")
	v.SetDefault(EnvLogMaxSize, 10)
	v.SetDefault(EnvLogMaxFiles, 5)

	for _, key := range []string{EnvHost, EnvURL, EnvInsecure, EnvLogLevel, EnvLogFile, EnvLogMaxSize, EnvLogMaxFiles} {
		_ = v.BindEnv(key)
	}
}

// Load reads the configuration from v. API_HOST and API_URL are required.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Host:     strings.TrimSpace(v.GetString(EnvHost)),
		BaseURL:  strings.TrimSpace(v.GetString(EnvURL)),
		Insecure: v.GetBool(EnvInsecure),
		Log: LogConfig{
			Level:    v.GetString(EnvLogLevel),
			File:     v.GetString(EnvLogFile),
			MaxSize:  v.GetInt(EnvLogMaxSize),
			MaxFiles: v.GetInt(EnvLogMaxFiles),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: %s must be set in .env file or environment", ErrMissing, EnvHost)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: %s must be set in .env file or environment", ErrMissing, EnvURL)
	}
	return nil
}

// WriteDotEnv writes host and base URL to filename in .env format.
func WriteDotEnv(filename, host, baseURL string) error {
	env := map[string]string{
		EnvHost: host,
		EnvURL:  baseURL,
	}
	if err := godotenv.Write(env, filename); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
