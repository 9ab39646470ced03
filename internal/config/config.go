package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	AutoMigrate     bool
}

type AuthConfig struct {
	Domain          string
	Audience        string
	JWKSURL         string
	JWKSTTL         time.Duration
	JWKSMinRefresh  time.Duration
	JWKSHTTPTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
			AutoMigrate:     getBoolOrDefault("DB_AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			Domain:          strings.TrimSpace(os.Getenv("AUTH0_DOMAIN")),
			Audience:        strings.TrimSpace(os.Getenv("API_AUDIENCE")),
			JWKSURL:         strings.TrimSpace(os.Getenv("AUTH0_JWKS_URL")),
			JWKSTTL:         getDurationOrDefault("AUTH0_JWKS_TTL", 10*time.Minute),
			JWKSMinRefresh:  getDurationOrDefault("AUTH0_JWKS_MIN_REFRESH", 30*time.Second),
			JWKSHTTPTimeout: getDurationOrDefault("AUTH0_JWKS_HTTP_TIMEOUT", 5*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:        os.Getenv("MINIO_ENDPOINT"),
			AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("MINIO_SECRET_ACCESS_KEY"),
			BucketName:      getEnvOrDefault("MINIO_BUCKET", "casting"),
			Region:          getEnvOrDefault("MINIO_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("MINIO_USE_SSL", true),
			PublicURL:       os.Getenv("MINIO_PUBLIC_URL"),
		},
	}
}

// Issuer is the expected "iss" claim for tokens minted by the identity provider.
func (a AuthConfig) Issuer() string {
	return "https://" + strings.TrimSuffix(a.Domain, "/") + "/"
}

// KeySetURL returns the JWKS endpoint, derived from the domain unless overridden.
func (a AuthConfig) KeySetURL() string {
	if a.JWKSURL != "" {
		return a.JWKSURL
	}
	return a.Issuer() + ".well-known/jwks.json"
}

// Enabled reports whether media uploads are configured.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Auth.Domain == "" {
		return fmt.Errorf("AUTH0_DOMAIN is required")
	}
	if c.Auth.Audience == "" {
		return fmt.Errorf("API_AUDIENCE is required")
	}
	if c.MinIO.Enabled() {
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY_ID is required when MINIO_ENDPOINT is set")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("MINIO_SECRET_ACCESS_KEY is required when MINIO_ENDPOINT is set")
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
