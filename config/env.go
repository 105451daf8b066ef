// Package config loads GrubDash settings from the environment.
//
// Values are read from an optional `.env` file and from GRUBDASH_* variables.
// Keys nest on the first underscore after the prefix:
//
//	GRUBDASH_APP_PORT        -> app.port
//	GRUBDASH_HTTP_BASE_PATH  -> http.base_path
//	GRUBDASH_REDIS_MENU_TTL  -> redis.menu_ttl
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every variable before it is mapped to a key.
const EnvPrefix = "GRUBDASH_"

type Config struct {
	App   AppConfig   `koanf:"app" validate:"required"`
	Log   LogConfig   `koanf:"log" validate:"required"`
	HTTP  HTTPConfig  `koanf:"http" validate:"required"`
	Redis RedisConfig `koanf:"redis"`
	Seed  SeedConfig  `koanf:"seed"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
	Env  string `koanf:"env" validate:"oneof=local development test production"`
	Port string `koanf:"port" validate:"required,numeric"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

type HTTPConfig struct {
	// BasePath mounts the API routes below a prefix, e.g. "/api".
	BasePath     string        `koanf:"base_path"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	MaxBodyBytes int64         `koanf:"max_body_bytes" validate:"gt=0"`
	// RateLimit is requests per minute per client IP. Zero disables it.
	RateLimit   int      `koanf:"rate_limit" validate:"gte=0"`
	CORSOrigins []string `koanf:"cors_origins"`
}

// RedisConfig configures the optional menu cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	MenuTTL  time.Duration `koanf:"menu_ttl" validate:"gte=0"`
}

// SeedConfig points at a JSON file with initial dishes and orders.
// An empty File loads the embedded seed data.
type SeedConfig struct {
	File string `koanf:"file"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		App: AppConfig{Name: "grubdash", Env: "local", Port: "8080"},
		Log: LogConfig{Level: "debug", Format: "console"},
		HTTP: HTTPConfig{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
			MaxBodyBytes: 4 << 20,
			CORSOrigins:  []string{"*"},
		},
		Redis: RedisConfig{MenuTTL: time.Minute},
	}
}

var (
	loadOnce sync.Once
	loadErr  error

	mu      sync.RWMutex
	current = Defaults()
)

// Load reads the environment once and caches the result for Get.
func Load() error {
	loadOnce.Do(func() {
		var cfg *Config
		cfg, loadErr = Read(".env")
		if loadErr == nil {
			Set(cfg)
		}
	})
	return loadErr
}

// Read builds a fresh Config from the given dotenv files and the process
// environment, then validates it. Missing dotenv files are ignored.
func Read(dotenv ...string) (*Config, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.HTTP.BasePath = normalizeBasePath(cfg.HTTP.BasePath)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// Get returns the active configuration.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration. Tests use it to run with overrides.
func Set(cfg *Config) {
	mu.Lock()
	current = cfg
	mu.Unlock()
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool { return c.App.Env == "production" }

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	return "/" + strings.Trim(p, "/")
}
