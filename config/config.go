// Package config loads service configuration from defaults, an optional YAML
// file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Store     StoreConfig     `koanf:"store"`
	Recommend RecommendConfig `koanf:"recommend"`
	Chat      ChatConfig      `koanf:"chat"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gte=0"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig points at the course catalog.
type CatalogConfig struct {
	// Source is an http(s) URL or a local file path.
	Source       string        `koanf:"source" validate:"required"`
	Timeout      time.Duration `koanf:"timeout" validate:"gte=0"`
	WarmInterval time.Duration `koanf:"warm_interval" validate:"gte=0"`
}

// StoreConfig selects the backend for client-local state.
type StoreConfig struct {
	Driver      string `koanf:"driver" validate:"oneof=memory badger postgres"`
	BadgerPath  string `koanf:"badger_path"`
	DatabaseURL string `koanf:"database_url"`
}

// RecommendConfig tunes the similar-items block.
type RecommendConfig struct {
	Limit int `koanf:"limit" validate:"min=1,max=20"`
}

// ChatConfig throttles the chatbot endpoint.
type ChatConfig struct {
	// RateLimit is requests per minute per client IP; 0 disables the limit.
	RateLimit int `koanf:"rate_limit" validate:"gte=0"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3003,
			CORSOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Source:       "data/courses.json",
			Timeout:      10 * time.Second,
			WarmInterval: 30 * time.Second,
		},
		Store: StoreConfig{
			Driver:     "memory",
			BadgerPath: "data/state",
		},
		Recommend: RecommendConfig{Limit: 3},
		Chat:      ChatConfig{RateLimit: 30},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

var validate = validator.New()

// Validate checks field constraints and driver-specific requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	switch c.Store.Driver {
	case "badger":
		if c.Store.BadgerPath == "" {
			return errors.New("store.badger_path is required for the badger driver")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	}
	return nil
}
