package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"FINSIGHT_APP_NAME":               os.Getenv("FINSIGHT_APP_NAME"),
		"FINSIGHT_APP_ENV":                os.Getenv("FINSIGHT_APP_ENV"),
		"FINSIGHT_APP_PORT":               os.Getenv("FINSIGHT_APP_PORT"),
		"FINSIGHT_DATABASE_HOST":          os.Getenv("FINSIGHT_DATABASE_HOST"),
		"FINSIGHT_DATABASE_PORT":          os.Getenv("FINSIGHT_DATABASE_PORT"),
		"FINSIGHT_DATABASE_USER":          os.Getenv("FINSIGHT_DATABASE_USER"),
		"FINSIGHT_DATABASE_PASSWORD":      os.Getenv("FINSIGHT_DATABASE_PASSWORD"),
		"FINSIGHT_DATABASE_DBNAME":        os.Getenv("FINSIGHT_DATABASE_DBNAME"),
		"FINSIGHT_DATABASE_SSLMODE":       os.Getenv("FINSIGHT_DATABASE_SSLMODE"),
		"FINSIGHT_JWT_SECRET":             os.Getenv("FINSIGHT_JWT_SECRET"),
		"FINSIGHT_ADVISOR_CACHE_TTL":      os.Getenv("FINSIGHT_ADVISOR_CACHE_TTL"),
		"FINSIGHT_ADVISOR_CACHE_MAX_SIZE": os.Getenv("FINSIGHT_ADVISOR_CACHE_MAX_SIZE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "finsight-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "finsight", cfg.Database.DBName)
		assert.Equal(t, 30*time.Minute, cfg.Advisor.CacheTTL)
		assert.Equal(t, 100, cfg.Advisor.CacheMaxSize)
		assert.Equal(t, time.Minute, cfg.Advisor.CleanupInterval)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	})

	t.Run("loads values from environment variables with FINSIGHT prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("FINSIGHT_APP_NAME", "test-app")
		os.Setenv("FINSIGHT_APP_PORT", "9000")
		os.Setenv("FINSIGHT_DATABASE_HOST", "testdb.local")
		os.Setenv("FINSIGHT_DATABASE_PORT", "5433")
		os.Setenv("FINSIGHT_ADVISOR_CACHE_TTL", "5m")
		os.Setenv("FINSIGHT_ADVISOR_CACHE_MAX_SIZE", "25")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 5*time.Minute, cfg.Advisor.CacheTTL)
		assert.Equal(t, 25, cfg.Advisor.CacheMaxSize)
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("FINSIGHT_APP_ENV", "production")
		os.Setenv("FINSIGHT_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "finsight",
		Password: "p@ss/word",
		DBName:   "finsight",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in credentials must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
