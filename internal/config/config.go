// Package config loads startup configuration from an optional YAML file with
// environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort   = 3000
	defaultDBName = "projects"
	defaultEnv    = "development"
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int      `yaml:"port"`
	MongoURI       string   `yaml:"mongo_uri"`
	DBName         string   `yaml:"db_name"`
	Env            string   `yaml:"env"` // "development" | "production"
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// Load reads the YAML file at path (if it exists), applies environment
// overrides, and validates the result. The store connection string is
// mandatory: startup must fail fast without it.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:   defaultPort,
		DBName: defaultDBName,
		Env:    defaultEnv,
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Config file is optional; env vars alone are enough.
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if strings.TrimSpace(cfg.MongoURI) == "" {
		return nil, errors.New("MONGODB_URI is not set")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("MONGODB_URI")); v != "" {
		cfg.MongoURI = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_NAME")); v != "" {
		cfg.DBName = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_ENV")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		origins := strings.Split(v, ",")
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, o := range origins {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
}
