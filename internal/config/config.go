package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string // postgres DSN; empty selects the embedded sqlite store
	SQLitePath      string
	AdminSecret     string
	RedisURL        string
	ServerPort      string
	UploadDir       string
	PublicBaseURL   string
	MaxUploadBytes  int64
	TranslateAPIURL string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "data/company.db"),
		AdminSecret:     getEnv("ADMIN_SECRET", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		UploadDir:       getEnv("UPLOAD_DIR", "data/uploads"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", ""),
		MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_BYTES", 5*1024*1024)),
		TranslateAPIURL: getEnv("TRANSLATE_API_URL", "https://api.mymemory.translated.net"),
		RateLimitMax:    getEnvAsInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow: time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

// Missing reports required values that are not configured. The health
// endpoint uses this to answer ok/degraded without exposing any values.
func (c *Config) Missing() []string {
	var missing []string
	if c.AdminSecret == "" {
		missing = append(missing, "ADMIN_SECRET")
	}
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		missing = append(missing, "DATABASE_URL")
	}
	return missing
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
