package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty means the public Yahoo endpoint
	} `yaml:"data_source"`
	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
		TTLMinutes int    `yaml:"ttl_minutes"`
		PurgeCron  string `yaml:"purge_cron"`
	} `yaml:"cache"`
	Symbols []struct {
		Name   string `yaml:"name"`
		Ticker string `yaml:"ticker"`
	} `yaml:"symbols"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment
// variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.TTLMinutes = n
		}
	}
	if v := os.Getenv("CACHE_PURGE_CRON"); v != "" {
		cfg.Cache.PurgeCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/daxboard_cache.db"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Cache.PurgeCron == "" {
		cfg.Cache.PurgeCron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Cache.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes must not be negative")
	}
	for i, s := range c.Symbols {
		if s.Name == "" || s.Ticker == "" {
			return fmt.Errorf("symbols[%d]: name and ticker are required", i)
		}
	}
	return nil
}
