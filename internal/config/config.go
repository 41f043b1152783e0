package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nvasilev/storefront/pkg/database"
)

// Config holds every runtime setting, sourced from the environment.
type Config struct {
	AppEnv         string
	HTTPPort       string
	LogLevel       string
	Database       database.Config
	SessionSecret  string
	SecureCookies  bool
	JaegerEndpoint string
	KafkaBrokers   []string
	RedisAddr      string
	CacheTTL       time.Duration
	BlobDir        string
}

// Load reads configuration from a .env file (if present) and the process
// environment. Environment variables always win.
func Load() (*Config, error) {
	// Missing .env is fine; containers pass real env vars.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "storefront")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("SESSION_SECRET", "dev-only-secret")
	viper.SetDefault("SECURE_COOKIES", true)
	viper.SetDefault("JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("CACHE_TTL", "30s")
	viper.SetDefault("BLOB_DIR", "./uploads")

	cfg := &Config{
		AppEnv:   viper.GetString("APP_ENV"),
		HTTPPort: viper.GetString("HTTP_PORT"),
		LogLevel: viper.GetString("LOG_LEVEL"),
		Database: database.Config{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		SessionSecret:  viper.GetString("SESSION_SECRET"),
		SecureCookies:  viper.GetBool("SECURE_COOKIES"),
		JaegerEndpoint: viper.GetString("JAEGER_ENDPOINT"),
		RedisAddr:      viper.GetString("REDIS_ADDR"),
		CacheTTL:       viper.GetDuration("CACHE_TTL"),
		BlobDir:        viper.GetString("BLOB_DIR"),
	}

	cfg.KafkaBrokers = splitBrokers(viper.GetString("KAFKA_BROKERS"))

	return cfg, nil
}

// splitBrokers parses a comma-separated broker list. Viper's slice getter
// splits on whitespace, which mangles "host1:9092,host2:9092".
func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
