package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("CACHE_COMPANY_TTL_SEC", "120")
	os.Setenv("FETCH_PAGE_SIZE", "250")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("CACHE_COMPANY_TTL_SEC")
		os.Unsetenv("FETCH_PAGE_SIZE")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 120, cfg.Cache.CompanyTTLSec)
	assert.Equal(t, 250, cfg.Fetch.PageSize)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("CACHE_COMPANY_TTL_SEC")
	os.Unsetenv("CACHE_DOCUMENT_TTL_SEC")
	os.Unsetenv("FETCH_PAGE_SIZE")
	os.Unsetenv("FETCH_MAX_PAGES")

	cfg := Load()

	assert.Equal(t, 900, cfg.Cache.CompanyTTLSec)
	assert.Equal(t, 600, cfg.Cache.EmployeeTTLSec)
	assert.Equal(t, 300, cfg.Cache.DocumentTTLSec)
	assert.Equal(t, 600, cfg.Cache.URLTTLSec)
	assert.Equal(t, 500, cfg.Fetch.PageSize)
	assert.Equal(t, 20, cfg.Fetch.MaxPages)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
