package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	JWTSecret string

	// Remote reasoning service
	AIBaseURL string
	AIAPIKey  string
	AITimeout time.Duration

	// Persistence substrate: memory | file | redis
	StorageDriver string
	StorageDir    string
	RedisAddr     string

	// Lifecycle events (kosong = noop publisher)
	KafkaBrokers string

	// Rate limit untuk route chat (request per detik per user)
	ChatRatePerSecond float64
	ChatRateBurst     int
}

func Load() Config {
	return Config{
		Port:              getEnv("PORT", "3000"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AIBaseURL:         getEnv("AI_BASE_URL", "http://localhost:8080"),
		AIAPIKey:          os.Getenv("AI_API_KEY"),
		AITimeout:         getDuration("AI_TIMEOUT", 20*time.Second),
		StorageDriver:     getEnv("STORAGE_DRIVER", "memory"),
		StorageDir:        getEnv("STORAGE_DIR", "data"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:      os.Getenv("KAFKA_BROKERS"),
		ChatRatePerSecond: getFloat("CHAT_RATE_PER_SECOND", 1),
		ChatRateBurst:     getInt("CHAT_RATE_BURST", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
