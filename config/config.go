package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment driven setting of the service.
type Config struct {
	AppHost     string `env:"APP_HOST" envDefault:"0.0.0.0"`
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`

	// DBDriver is postgres in production; sqlite runs against DBSQLitePath
	// for local development.
	DBDriver     string `env:"DB_DRIVER" envDefault:"postgres"`
	DBSQLitePath string `env:"DB_SQLITE_PATH" envDefault:"warehouse_booking.db"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBDatabase string `env:"DB_DATABASE" envDefault:"warehouse_booking"`
	DBUsername string `env:"DB_USERNAME" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// JWTSecret enables HMAC verification. When empty, tokens are verified
	// with the RSA key served at PublicKeyURL.
	JWTSecret    string `env:"JWT_SECRET"`
	PublicKeyURL string `env:"PUBLIC_KEY_URL"`

	LogDir          string `env:"LOG_DIR" envDefault:"log/app"`
	PlatformName    string `env:"PLATFORM_NAME" envDefault:"WareShare"`
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"CAD"`
}

// Load reads .env (if present) and parses the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUsername, c.DBPassword, c.DBDatabase, c.DBSSLMode)
}

// Address returns host:port for the HTTP listener.
func (c *Config) Address() string {
	return c.AppHost + ":" + c.AppPort
}
