/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: goredis-server/internal/config/config.go
*/

// Package config loads server configuration from a config file, the
// GOREDIS_ environment prefix, and an optional explicit path, via viper.
// The surface is deliberately small: bind address, port, logging, and a
// connection cap.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server's bootstrap settings.
type Config struct {
	Bind       string `mapstructure:"bind"`
	Port       int    `mapstructure:"port"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	MaxClients int    `mapstructure:"max_clients"`
}

// DefaultConfig returns the settings used when no file or env var
// overrides them.
func DefaultConfig() *Config {
	return &Config{
		Bind:       "127.0.0.1",
		Port:       6379,
		LogLevel:   "info",
		LogFormat:  "text",
		MaxClients: 10000,
	}
}

// Load reads configuration from (in ascending priority) defaults, a
// config file, and GOREDIS_-prefixed environment variables. The config
// file is configPath when it is non-empty; otherwise an optional
// goredis.yaml is searched for in the working directory, /etc/goredis/,
// and $HOME/.goredis.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("goredis")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/goredis/")
		v.AddConfigPath("$HOME/.goredis")
	}

	v.SetEnvPrefix("GOREDIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("bind", cfg.Bind)
	v.SetDefault("port", cfg.Port)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("max_clients", cfg.MaxClients)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d (must be 1-65535)", c.Port)
	}
	if c.MaxClients < 1 {
		return fmt.Errorf("config: max_clients must be at least 1")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log_format %q (must be text or json)", c.LogFormat)
	}
	return nil
}
