package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gemini   GeminiConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DatabaseConfig describes the optional Postgres snapshot source. When no
// host is configured the embedded mock dataset is used instead.
type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != ""
}

// RedisConfig describes the optional search-response cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// GeminiConfig describes the optional LLM advisor. The advisor is only
// constructed when an API key is present.
type GeminiConfig struct {
	APIKey string
	Model  string
}

func (c GeminiConfig) Enabled() bool {
	return c.APIKey != ""
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      ttlFromEnv(opt("REDIS_TTL")),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: opt("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL"),
	}

	cfg.Log = LogConfig{
		JSON:  boolFromEnv(opt("LOG_JSON")),
		Debug: boolFromEnv(opt("LOG_DEBUG")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func ttlFromEnv(raw string) time.Duration {
	if raw == "" {
		return 600 * time.Second
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 600 * time.Second
	}
	return time.Duration(v) * time.Second
}

func boolFromEnv(raw string) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
