// Package config loads the settings of the gofault HTTP server.
//
// Settings come from an optional YAML file; environment variables (optionally
// read from a .env file) override the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values used for fields absent from the config file.
const (
	DefaultAddr            = ":8080"
	DefaultRatePerSecond   = 10.0
	DefaultBurst           = 20
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxSweepSteps   = 500
)

// Environment variables that override the config file
const (
	EnvAddr  = "GOFAULT_ADDR"
	EnvRate  = "GOFAULT_RATE"
	EnvBurst = "GOFAULT_BURST"
)

// Config is the server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds the HTTP listener and limits
type ServerConfig struct {
	// Addr is the listen address (host:port).
	Addr string `yaml:"addr"`

	// RatePerSecond is the sustained request rate allowed per client IP.
	// Zero disables rate limiting.
	RatePerSecond float64 `yaml:"rate_per_second"`

	// Burst is the number of requests a client may make at once.
	Burst int `yaml:"burst"`

	// ShutdownTimeout bounds the graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxSweepSteps caps the number of points a sweep request may ask for.
	MaxSweepSteps int `yaml:"max_sweep_steps"`
}

// Default returns a config with every default applied
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			RatePerSecond:   DefaultRatePerSecond,
			Burst:           DefaultBurst,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxSweepSteps:   DefaultMaxSweepSteps,
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty), loads
// envFile into the environment if it exists, applies environment overrides
// and validates the result. Fields the file leaves out keep their defaults;
// fields it sets, including explicit zeros, are kept as written.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if envFile != "" {
		// Variables already set in the environment take precedence
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvRate); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvRate, err)
		}
		cfg.Server.RatePerSecond = r
	}
	if v := os.Getenv(EnvBurst); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvBurst, err)
		}
		cfg.Server.Burst = b
	}
	return nil
}

func validate(cfg *Config) error {
	s := cfg.Server
	if s.RatePerSecond < 0 {
		return fmt.Errorf("config: server.rate_per_second must be >= 0, got %g", s.RatePerSecond)
	}
	if s.Addr == "" {
		return fmt.Errorf("config: server.addr must not be empty")
	}
	if s.Burst < 1 {
		return fmt.Errorf("config: server.burst must be >= 1, got %d", s.Burst)
	}
	if s.MaxSweepSteps < 2 {
		return fmt.Errorf("config: server.max_sweep_steps must be >= 2, got %d", s.MaxSweepSteps)
	}
	return nil
}
