package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port        string
	PublicURL   string // Base URL advertised in the OpenAPI document
	CORSOrigins []string
	Env         string

	// Reports
	ReportRefreshInterval time.Duration

	// Rate limiting (per client IP)
	RateLimitPerMinute int
	RateLimitBurst     int

	// Export storage
	ExportDir string
	S3        S3Config
}

// S3Config holds AWS S3 configuration for report exports
type S3Config struct {
	Enabled         bool
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	refresh, err := getDuration("REPORT_REFRESH_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	perMinute, err := getInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return nil, err
	}
	burst, err := getInt("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}
	s3Enabled, err := getBool("S3_ENABLED", false)
	if err != nil {
		return nil, err
	}

	port := getEnv("PORT", "8080")

	cfg := &Config{
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		Port:                  port,
		PublicURL:             strings.TrimSuffix(getEnv("PUBLIC_URL", "http://localhost:"+port), "/"),
		CORSOrigins:           strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3001"), ","),
		Env:                   getEnv("ENV", "development"),
		ReportRefreshInterval: refresh,
		RateLimitPerMinute:    perMinute,
		RateLimitBurst:        burst,
		ExportDir:             getEnv("EXPORT_DIR", "exports"),
		S3: S3Config{
			Enabled:         s3Enabled,
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "fortuna-reports"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ReportRefreshInterval <= 0 {
		return fmt.Errorf("REPORT_REFRESH_INTERVAL must be positive")
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive")
	}
	if c.S3.Enabled && c.S3.Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when S3_ENABLED is set")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesSQLite reports whether DATABASE_URL points to a local SQLite budget file
func (c *Config) UsesSQLite() bool {
	return IsSQLiteURL(c.DatabaseURL)
}

// IsSQLiteURL reports whether a database URL selects the SQLite backend
func IsSQLiteURL(url string) bool {
	return strings.HasPrefix(url, "sqlite://") || strings.HasSuffix(url, ".db") || strings.HasSuffix(url, ".sqlite")
}

// SQLitePath strips the sqlite:// scheme from a database URL
func SQLitePath(url string) string {
	return strings.TrimPrefix(url, "sqlite://")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
