package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"fotoshare/database"
	"fotoshare/infrastructure/storage"
	"fotoshare/logging"
)

// StorageBackend selects where photo binaries live.
type StorageBackend string

const (
	StorageBackendDisk StorageBackend = "disk"
	StorageBackendS3   StorageBackend = "s3"
)

// AppConfig holds application-wide system configuration.
type AppConfig struct {
	HTTPAddr    string
	HTTPLogPath string
	Database    *database.Config
	Logging     *logging.Config
	Storage     *StorageConfig
	Auth        *AuthConfig
}

// StorageConfig holds the object-store settings for originals and
// thumbnails.
type StorageConfig struct {
	Backend      StorageBackend
	PhotoDir     string
	ThumbnailDir string
	S3           storage.S3Config
	OrphanSweep  time.Duration
}

// AuthConfig holds token and credential settings.
type AuthConfig struct {
	JWTSecret     string
	TokenLifetime time.Duration
}

// LoadAppConfigFromEnv loads complete application configuration from environment variables.
func LoadAppConfigFromEnv() *AppConfig {
	return &AppConfig{
		HTTPAddr:    getEnvWithDefault("HTTP_ADDR", ":8080"),
		HTTPLogPath: getEnvWithDefault("HTTP_LOG_PATH", ""),
		Database:    LoadDatabaseConfigFromEnv(),
		Logging:     LoadLoggingConfigFromEnv(),
		Storage:     LoadStorageConfigFromEnv(),
		Auth:        LoadAuthConfigFromEnv(),
	}
}

// LoadDatabaseConfigFromEnv loads database configuration from environment variables.
func LoadDatabaseConfigFromEnv() *database.Config {
	return &database.Config{
		Path:              getEnvWithDefault("DB_PATH", "./fotoshare.db"),
		MaxOpenConns:      getEnvIntWithDefault("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:      getEnvIntWithDefault("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:   getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", time.Hour),
		ConnMaxIdleTime:   getEnvDurationWithDefault("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
		BusyTimeoutMs:     getEnvIntWithDefault("DB_BUSY_TIMEOUT_MS", 5000),
		EnableForeignKeys: getEnvBoolWithDefault("DB_ENABLE_FOREIGN_KEYS", true),
		EnableWAL:         getEnvBoolWithDefault("DB_ENABLE_WAL", true),
	}
}

// LoadLoggingConfigFromEnv loads logging configuration from environment variables.
func LoadLoggingConfigFromEnv() *logging.Config {
	return &logging.Config{
		Level:  getEnvWithDefault("LOG_LEVEL", "info"),
		Format: getEnvWithDefault("LOG_FORMAT", "json"),
		Output: getEnvWithDefault("LOG_OUTPUT", "stdout"),
	}
}

// LoadStorageConfigFromEnv loads object-store configuration from environment variables.
func LoadStorageConfigFromEnv() *StorageConfig {
	return &StorageConfig{
		Backend:      StorageBackend(getEnvWithDefault("STORAGE_BACKEND", string(StorageBackendDisk))),
		PhotoDir:     getEnvWithDefault("STORAGE_PHOTO_DIR", "./data/photos"),
		ThumbnailDir: getEnvWithDefault("STORAGE_THUMBNAIL_DIR", "./data/thumbnails"),
		S3: storage.S3Config{
			Region:          getEnvWithDefault("S3_REGION", "us-east-1"),
			Bucket:          getEnvWithDefault("S3_BUCKET", "fotoshare"),
			Endpoint:        getEnvWithDefault("S3_ENDPOINT", ""),
			AccessKeyID:     getEnvWithDefault("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvWithDefault("S3_SECRET_ACCESS_KEY", ""),
		},
		OrphanSweep: getEnvDurationWithDefault("STORAGE_ORPHAN_SWEEP_INTERVAL", 15*time.Minute),
	}
}

// LoadAuthConfigFromEnv loads token configuration from environment variables.
func LoadAuthConfigFromEnv() *AuthConfig {
	return &AuthConfig{
		JWTSecret:     getEnvWithDefault("JWT_SECRET", "dev-secret-change-me"),
		TokenLifetime: getEnvDurationWithDefault("JWT_TOKEN_LIFETIME", 24*time.Hour),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(v string, def bool) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Helper functions for environment variable parsing.
func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return parseBool(value, defaultValue)
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
