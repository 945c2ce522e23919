package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	defaultConfigPath = "configs/diagnostics.yaml"
	maxReportWidth    = 32
)

func LoadDiagnosticsConfig() (*Config, error) {
	path := os.Getenv("DIAGNOSTICS_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no config file shipped next to the binary; defaults apply
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Report.MaxWidth == 0 {
		cfg.Report.MaxWidth = maxReportWidth
	}
	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = "diagnostics:"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 30 * time.Minute
	}
}

func (c *Config) Validate() error {
	if c.Report.MaxWidth < 1 || c.Report.MaxWidth > maxReportWidth {
		return fmt.Errorf("invalid max_width %d: must be between 1 and %d", c.Report.MaxWidth, maxReportWidth)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("negative cache ttl %s", c.Cache.TTL)
	}
	return nil
}
