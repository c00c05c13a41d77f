package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort   = "8080"
	defaultAppEnv = "development"
)

type Config struct {
	DatabaseURL string
	Port        string
	AppEnv      string
}

func (c *Config) IsDevelopment() bool { return c.AppEnv == "development" }

// Load reads configuration from the environment, with a .env file as
// the local-dev convenience. DATABASE_URL is the canonical name;
// DB_URL still works but is on its way out.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		if dsn = os.Getenv("DB_URL"); dsn != "" {
			log.Warn().Msg("DB_URL is deprecated, use DATABASE_URL")
		}
	}
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	cfg := &Config{
		DatabaseURL: dsn,
		Port:        envOrDefault("PORT", defaultPort),
		AppEnv:      envOrDefault("APP_ENV", defaultAppEnv),
	}
	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
