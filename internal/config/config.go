// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	CategoryAPIURL string
	ItemsAPIBase   string
	BillAPIURL     string

	OpenAIAPIKey string
	OpenAIModel  string

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	SessionSecret string
	SessionTTL    time.Duration

	UpstreamTimeout time.Duration
	AllowedOrigin   string
}

// Load reads the environment, pulling in .env first when present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Addr:            getEnv("ADDR", ":8000"),
		CategoryAPIURL:  os.Getenv("CATEGORY_API_URL"),
		ItemsAPIBase:    os.Getenv("ITEMS_API_BASE"),
		BillAPIURL:      os.Getenv("BILL_API_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisUsername:   os.Getenv("REDIS_USERNAME"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getInt("REDIS_DB", 0),
		CacheTTL:        getDuration("CACHE_TTL", 5*time.Minute),
		SessionSecret:   getEnv("SESSION_SECRET", "chatcart-dev-secret"),
		SessionTTL:      getDuration("SESSION_TTL", 30*time.Minute),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
