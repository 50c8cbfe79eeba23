package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// CacheConfig holds per-scope TTLs in seconds. Company folder structure
// changes rarely while document lists and signed URLs change or expire
// often, hence the descending defaults.
type CacheConfig struct {
	CompanyTTLSec  int
	EmployeeTTLSec int
	RowsTTLSec     int
	DocumentTTLSec int
	URLTTLSec      int
}

// FetchConfig bounds the paginated row fetch against the relational store.
// PageSize must not exceed the backend's single-request row cap. MaxPages
// is a safety cap against unbounded scans on pathological data.
type FetchConfig struct {
	PageSize int
	MaxPages int
}

// SignerConfig holds the secondary remote-signing endpoint settings.
// Endpoint may be empty, in which case the fallback signing path is
// unavailable.
type SignerConfig struct {
	Endpoint   string
	TimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Cache    CacheConfig
	Fetch    FetchConfig
	Signer   SignerConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Cache: CacheConfig{
			CompanyTTLSec:  getEnvInt("CACHE_COMPANY_TTL_SEC", 900),
			EmployeeTTLSec: getEnvInt("CACHE_EMPLOYEE_TTL_SEC", 600),
			RowsTTLSec:     getEnvInt("CACHE_ROWS_TTL_SEC", 600),
			DocumentTTLSec: getEnvInt("CACHE_DOCUMENT_TTL_SEC", 300),
			URLTTLSec:      getEnvInt("CACHE_URL_TTL_SEC", 600),
		},
		Fetch: FetchConfig{
			PageSize: getEnvInt("FETCH_PAGE_SIZE", 500),
			MaxPages: getEnvInt("FETCH_MAX_PAGES", 20),
		},
		Signer: SignerConfig{
			Endpoint:   getEnv("SIGNER_ENDPOINT", ""),
			TimeoutSec: getEnvInt("SIGNER_TIMEOUT_SEC", 5),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
