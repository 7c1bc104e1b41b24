// Package config loads the runtime configuration for the board-backend:
// record-store credentials, session verification secret, and server settings.
// Values come from an optional config.toml with environment variable
// overrides; the store credentials are required and startup fails without them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the fully resolved runtime configuration. It is constructed once
// in main and passed explicitly to the components that need it.
type Config struct {
	Port          string
	AllowOrigins  string
	SessionSecret string

	StoreURL    string
	StoreBaseID string
	StoreAPIKey string

	Tables Tables
}

// Load reads config.toml (if present) and the environment, validates the
// required credentials, and resolves the table-name map.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.allow_origins", "http://localhost:4321")
	v.SetDefault("store.url", "https://api.airtable.com/v0")
	v.SetDefault("store.tables_file", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:          v.GetString("server.port"),
		AllowOrigins:  v.GetString("server.allow_origins"),
		SessionSecret: v.GetString("auth.session_secret"),
		StoreURL:      v.GetString("store.url"),
		StoreBaseID:   v.GetString("store.base_id"),
		StoreAPIKey:   v.GetString("store.api_key"),
	}

	if cfg.StoreBaseID == "" || cfg.StoreAPIKey == "" {
		return nil, fmt.Errorf("store.base_id and store.api_key must be configured")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("auth.session_secret must be configured")
	}

	tables, err := LoadTables(v.GetString("store.tables_file"))
	if err != nil {
		return nil, err
	}
	cfg.Tables = tables

	return cfg, nil
}
