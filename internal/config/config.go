package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"travelbook/internal/pkg/logger"
	"travelbook/internal/storage"
)

const (
	defaultHTTPAddr      = ":8080"
	defaultStorageDriver = storage.DriverFile
	defaultStorageDir    = "data"
	defaultDatabaseURL   = "travelbook.db"
	defaultKeyPrefix     = "travelbook:"
	defaultAWSRegion     = "us-east-1"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultLogLevel      = logger.LevelInfo
	defaultLogFormat     = logger.FormatJSON
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	Storage storage.Options

	JWTSecret string
	JWTTTL    time.Duration

	SeedReviewsPath string

	LogLevel  string
	LogFormat string

	CORSOrigins []string
}

// LoadDotEnv reads .env files into the environment when present. Variables
// already set win over file values.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))

	cfg.Storage = storage.Options{
		Driver:      strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", defaultStorageDriver))),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),
		KeyPrefix:   getEnv("STORAGE_KEY_PREFIX", defaultKeyPrefix),
		S3Bucket:    strings.TrimSpace(os.Getenv("S3_BUCKET")),
		AWSRegion:   strings.TrimSpace(getEnv("AWS_REGION", defaultAWSRegion)),
		Dir:         strings.TrimSpace(getEnv("STORAGE_DIR", defaultStorageDir)),
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.SeedReviewsPath = strings.TrimSpace(os.Getenv("SEED_REVIEWS_PATH"))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat)))
	cfg.CORSOrigins = parseListEnv("CORS_ALLOWED_ORIGINS")

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}

	switch cfg.Storage.Driver {
	case storage.DriverMemory:
	case storage.DriverFile:
		if cfg.Storage.Dir == "" {
			return fmt.Errorf("STORAGE_DIR must be set for the file driver")
		}
	case storage.DriverSQL:
		if cfg.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set for the sql driver")
		}
	case storage.DriverRedis:
		if cfg.Storage.RedisURL == "" {
			return fmt.Errorf("REDIS_URL must be set for the redis driver")
		}
	case storage.DriverS3:
		if cfg.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set for the s3 driver")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, file, sql, redis, s3")
	}

	switch cfg.LogLevel {
	case logger.LevelDebug, logger.LevelInfo, logger.LevelWarn, logger.LevelError:
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}
	if cfg.LogFormat != logger.FormatJSON && cfg.LogFormat != logger.FormatText {
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.Storage.Driver == storage.DriverMemory {
			return fmt.Errorf("in prod/release STORAGE_DRIVER must be durable")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseListEnv(name string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(name), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
