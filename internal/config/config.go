package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	DBDriver       string
	DatabaseDSN    string
	AutoMigrate    bool
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	TokenTTL       time.Duration
	LoginDisabled  bool
	LoginRateLimit float64
	LoginBurst     int
	LogLevel       string
	LogPretty      bool
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DBDriver:       getEnv("DB_DRIVER", "mysql"),
		DatabaseDSN:    getEnv("DATABASE_DSN", getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/gogomedia?charset=utf8mb4&parseTime=True&loc=Local")),
		AutoMigrate:    getEnvBool("AUTO_MIGRATE", true),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 24*time.Hour),
		LoginDisabled:  getEnvBool("LOGIN_DISABLED", false),
		LoginRateLimit: getEnvFloat("LOGIN_RATE_LIMIT", 1),
		LoginBurst:     getEnvInt("LOGIN_RATE_BURST", 5),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPretty:      getEnvBool("LOG_PRETTY", false),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
