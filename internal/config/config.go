package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"storefront-demo/internal/llm"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	RedisAddr       string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	AI         llm.Options
	ReplyDelay time.Duration

	ImageSearchURL string
	SessionTTL     time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN serves the sample catalog; an empty REDIS_ADDR keeps settings in memory.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    os.Getenv("DB_DSN"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"*"}),
		AI: llm.Options{
			URL:     envOrDefault("AI_API_URL", llm.DefaultURL),
			Model:   envOrDefault("AI_MODEL", llm.DefaultModel),
			APIKey:  os.Getenv("AI_API_KEY"),
			Timeout: envDuration("AI_TIMEOUT_SECONDS", llm.DefaultTimeout),
		},
		ReplyDelay:     envMillis("CHAT_REPLY_DELAY_MS", time.Second),
		ImageSearchURL: os.Getenv("IMAGE_SEARCH_URL"),
		SessionTTL:     envDuration("SESSION_TTL_SECONDS", 3*time.Hour),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envMillis(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		ms, err := strconv.Atoi(v)
		if err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
