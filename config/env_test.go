package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "PORT", "CATALOG_SOURCE", "CACHE_TTL", "SESSION_TTL", "CURRENCY_SYMBOL", "DATABASE_URL"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, CatalogSourceFile, cfg.CatalogSource)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "N", cfg.CurrencySymbol)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("CATALOG_SOURCE", CatalogSourcePostgres)
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := FromEnv()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, CatalogSourcePostgres, cfg.CatalogSource)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "shop", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/shop?sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}

func TestValidate_SessionSecret(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "production default", cfg: Config{AppEnv: "production", SessionSecret: DefaultSessionSecret}, wantErr: true},
		{name: "production empty", cfg: Config{AppEnv: "production"}, wantErr: true},
		{name: "production set", cfg: Config{AppEnv: "production", SessionSecret: "k3y"}},
		{name: "development default", cfg: Config{AppEnv: "development", SessionSecret: DefaultSessionSecret}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInsecureSessionSecret)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFromEnv_ProductionWithoutSecretIsRejected(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	cfg := FromEnv()

	assert.Equal(t, DefaultSessionSecret, cfg.SessionSecret)
	assert.ErrorIs(t, cfg.Validate(), ErrInsecureSessionSecret)
}
