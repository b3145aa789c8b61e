package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks variables that belong to this service, e.g. SWAPI_PORT.
const EnvPrefix = "SWAPI_"

// Config is the runtime configuration of the API server.
type Config struct {
	Port               int           `koanf:"port"`
	DatabaseURL        string        `koanf:"database_url"`
	LogLevel           string        `koanf:"log_level"`
	LogFormat          string        `koanf:"log_format"`
	GinMode            string        `koanf:"gin_mode"`
	AutoMigrate        bool          `koanf:"auto_migrate"`
	CORSAllowedOrigins string        `koanf:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Port:               3000,
		DatabaseURL:        "/tmp/test.db",
		LogLevel:           "info",
		LogFormat:          "json",
		GinMode:            "release",
		AutoMigrate:        true,
		CORSAllowedOrigins: "*",
		ShutdownTimeout:    10 * time.Second,
	}
}

var keys = map[string]bool{
	"port":                 true,
	"database_url":         true,
	"log_level":            true,
	"log_format":           true,
	"gin_mode":             true,
	"auto_migrate":         true,
	"cors_allowed_origins": true,
	"shutdown_timeout":     true,
}

// Load builds a Config by layering, low to high precedence:
//  1. Defaults()
//  2. the YAML file named by SWAPI_CONFIG, if set
//  3. bare env vars (PORT, DATABASE_URL, ...)
//  4. prefixed env vars (SWAPI_PORT, ...)
//
// A .env file in the working directory is read into the environment first.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	bare := env.Provider("", ".", func(s string) string {
		s = strings.ToLower(s)
		if !keys[s] {
			return ""
		}
		return s
	})
	if err := k.Load(bare, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	prefixed := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !keys[s] {
			return ""
		}
		return s
	})
	if err := k.Load(prefixed, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("database_url must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be json or console, got %q", c.LogFormat)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("gin_mode must be debug, release or test, got %q", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be > 0")
	}
	return nil
}

// Addr is the listen address for net/http.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
