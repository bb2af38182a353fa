package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration, loaded from environment
// variables. Call godotenv.Load before Load to pick up a local .env file.
type Config struct {
	Addr      string // HTTP listen address
	DBDriver  string // "mysql" or "sqlite3"
	DSN       string // driver-specific data source name
	JWTSecret string // token signing secret
	LogLevel  string // zerolog level name
	PublicDir string // static frontend directory, served when present
}

// Load reads configuration from the environment with development-friendly
// defaults. JWT_SECRET has no default and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:      getEnv("ADDR", ":3000"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite3"),
		DSN:       getEnv("DSN", "notes.db"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "sqlite3" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite3)", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a printable form of the config with secrets masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, DB: %s, JWT: ***}", c.Addr, c.DBDriver)
}
