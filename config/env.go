package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"

	DefaultSessionSecret = "secret"
)

var ErrInsecureSessionSecret = errors.New("SESSION_SECRET must be set to a non-default value in production")

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	CatalogSource string
	CatalogFile   string

	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	MigrationDir string

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	CurrencySymbol string
	Locale         string
	OriginURL      string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = FromEnv()
	return AppConfig
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CatalogSource: getEnv("CATALOG_SOURCE", CatalogSourceFile),
		CatalogFile:   getEnv("CATALOG_FILE", "database/seed/catalog.yaml"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5454"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "cart_widget"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		MigrationDir: getEnv("MIGRATION_DIR", "database/migration"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),

		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),

		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "N"),
		Locale:         getEnv("LOCALE", "en"),
		OriginURL:      os.Getenv("ORIGIN_URL"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// UsesDefaultSecret reports whether session tokens would be signed with a
// publicly known key.
func (c *Config) UsesDefaultSecret() bool {
	return c.SessionSecret == "" || c.SessionSecret == DefaultSessionSecret
}

// Validate rejects settings the server must not run with.
func (c *Config) Validate() error {
	if c.IsProduction() && c.UsesDefaultSecret() {
		return ErrInsecureSessionSecret
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
