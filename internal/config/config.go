package config

import (
	"os"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"cyberscore-engine/internal/scoring"
)

// Config is the application configuration, loaded once at startup.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Auth    AuthConfig    `toml:"auth"`
	Logging LoggingConfig `toml:"logging"`
	Report  ReportConfig  `toml:"report"`
	Scoring ScoringConfig `toml:"scoring"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type AuthConfig struct {
	// AccessKey gates all scoring endpoints when set. Clients send it in
	// the X-Access-Key header. Empty means no gate.
	AccessKey string `toml:"access_key"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type ReportConfig struct {
	BrandLeft       string `toml:"brand_left"`
	BrandRight      string `toml:"brand_right"`
	Confidentiality string `toml:"confidentiality"`
}

type ScoringConfig struct {
	// Weights optionally overrides the built-in section weight table. When
	// set it must cover all scored sections and sum to 1.0; that is checked
	// at load, never renormalized.
	Weights map[string]float64 `toml:"weights"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Report: ReportConfig{
			BrandLeft:       "Cybastion",
			BrandRight:      "Riskare",
			Confidentiality: "Confidential - for internal use only",
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and the
// environment (PORT, ACCESS_KEY). It fails fast on an invalid weight table.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid PORT environment variable", goerr.V("value", port))
		}
		cfg.Server.Port = p
	}
	if key := os.Getenv("ACCESS_KEY"); key != "" {
		cfg.Auth.AccessKey = key
	}

	if _, err := cfg.Weights(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Weights resolves the effective section weight table: the configured
// override when present, otherwise the built-in table. The sum-to-1.0
// invariant is asserted here so a broken table aborts startup.
func (c *Config) Weights() (scoring.Weights, error) {
	w := scoring.DefaultWeights()
	if len(c.Scoring.Weights) > 0 {
		w = scoring.Weights(c.Scoring.Weights)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
