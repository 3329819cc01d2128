package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level emolog configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Platform PlatformConfig `yaml:"platform"`
}

// LoggingConfig holds console output settings.
type LoggingConfig struct {
	// Colorize enables ANSI colors on console lines.
	Colorize bool `yaml:"colorize"`
}

// PlatformConfig holds settings for the host platform log sink.
type PlatformConfig struct {
	SyslogEnabled bool   `yaml:"syslog_enabled"`
	SyslogNetwork string `yaml:"syslog_network"`
	SyslogAddress string `yaml:"syslog_address"`
	Tag           string `yaml:"tag"`
}

// LoadConfig loads configuration from the specified file path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}

	// A remote syslog transport needs an address to dial.
	if cfg.Platform.SyslogNetwork != "" && cfg.Platform.SyslogAddress == "" {
		return nil, fmt.Errorf("missing required field in config: platform.syslog_address")
	}

	return &cfg, nil
}
