package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Security.PasswordMinLength)
	assert.Equal(t, []string{"gmail.com", "yahoo.com", "outlook.com"}, cfg.Security.AllowedEmailDomains)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Empty(t, cfg.Bootstrap.AdminPassword)
	assert.True(t, cfg.IsTesting())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/dash.db")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("ALLOWED_EMAIL_DOMAINS", " example.com, ,corp.io ")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/dash.db", cfg.Database.DSN())
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"example.com", "corp.io"}, cfg.Security.AllowedEmailDomains)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_MAX_CONNECTIONS", "lots")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported DB_DRIVER"},
		{"zero timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "SERVER_REQUEST_TIMEOUT"},
		{"no domains", func(c *Config) { c.Security.AllowedEmailDomains = nil }, "ALLOWED_EMAIL_DOMAINS"},
		{"min length", func(c *Config) { c.Security.PasswordMinLength = 0 }, "PASSWORD_MIN_LENGTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "testing")
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_PostgresStrings(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "dash",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=dash sslmode=disable TimeZone=UTC", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/dash?sslmode=disable", cfg.URL())
}
