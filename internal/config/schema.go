package config

import "time"

// Config represents the diagnostics configuration file
type Config struct {
	Report ReportConfig `yaml:"report"`
	Cache  CacheConfig  `yaml:"cache"`
}

// ReportConfig bounds the reports the service accepts
type ReportConfig struct {
	MaxWidth int `yaml:"max_width"`
}

// CacheConfig controls the Redis result cache (used only when REDIS_ADDR is set)
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	KeyPrefix string        `yaml:"key_prefix"`
	TTL       time.Duration `yaml:"ttl"`
}
