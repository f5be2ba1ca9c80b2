package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	DataDir   string
	UploadDir string

	AdminUser        string
	AdminPass        string
	AuthCookieSecure bool
	SessionLifetime  time.Duration

	LogLevel  string
	LogFormat string

	MetricsEnabled  bool
	MetricsEndpoint string
	MetricsProtocol string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:          getenv("APP_SERVICE", "backoffice"),
		AppVersion:       getenv("APP_VERSION", "0.1.0"),
		Environment:      environment,
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		DataDir:          getenv("DATA_DIR", "data"),
		UploadDir:        getenv("UPLOAD_DIR", filepath.Join("public", "uploads")),
		AdminUser:        getenv("ADMIN_USER", "admin"),
		AdminPass:        getenv("ADMIN_PASS", "1234"),
		AuthCookieSecure: authCookieSecure,
		SessionLifetime:  getenvDuration("SESSION_LIFETIME", 24*time.Hour),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "json"),
		MetricsEnabled:   getenvBool("METRICS_ENABLED", false),
		MetricsEndpoint:  strings.TrimSpace(getenv("METRICS_ENDPOINT", "localhost:4317")),
		MetricsProtocol:  strings.ToLower(getenv("METRICS_PROTOCOL", "grpc")),
	}
}

// CollectionPath resolves the backing file for a named collection.
func (c Config) CollectionPath(name string) string {
	return filepath.Join(c.DataDir, name+".json")
}

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewMediaSettingsHolder),
)

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}
