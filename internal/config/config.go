package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Session  SessionConfig  `yaml:"session"`
	Loan     LoanConfig     `yaml:"loan"`
	Log      LogConfig      `yaml:"log"`
	Accounts AccountsConfig `yaml:"accounts,omitempty"`
}

// SessionConfig controls the inactivity logout.
type SessionConfig struct {
	Timeout time.Duration `yaml:"timeout"` // whole seconds
}

// LoanConfig controls loan underwriting.
type LoanConfig struct {
	Delay           time.Duration `yaml:"delay"`
	MinDepositRatio float64       `yaml:"min_deposit_ratio"` // largest deposit must reach ratio * amount
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AccountsConfig points at an optional seed file replacing the demo accounts.
type AccountsConfig struct {
	SeedFile string `yaml:"seed_file,omitempty"`
}

// Load reads a bankist.yaml file from disk. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the demo configuration.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Timeout: 5 * time.Minute,
		},
		Loan: LoanConfig{
			Delay:           2500 * time.Millisecond,
			MinDepositRatio: 0.3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Session.Timeout < time.Second {
		return fmt.Errorf("session.timeout must be at least 1s, got %s", c.Session.Timeout)
	}
	if c.Loan.Delay < 0 {
		return fmt.Errorf("loan.delay must not be negative, got %s", c.Loan.Delay)
	}
	if c.Loan.MinDepositRatio < 0 {
		return fmt.Errorf("loan.min_deposit_ratio must not be negative, got %v", c.Loan.MinDepositRatio)
	}
	return nil
}
