package config

import (
	"testing"
	"time"

	"storefront-demo/internal/llm"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DSN", "REDIS_ADDR", "AI_API_KEY", "AI_API_URL", "AI_MODEL", "AI_TIMEOUT_SECONDS", "CHAT_REPLY_DELAY_MS", "CORS_ORIGINS", "SESSION_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr)
	}
	if cfg.DBConnString != "" || cfg.RedisAddr != "" {
		t.Fatalf("expected optional backends unset")
	}
	if cfg.AI.URL != llm.DefaultURL || cfg.AI.Model != llm.DefaultModel || cfg.AI.Timeout != llm.DefaultTimeout {
		t.Fatalf("unexpected ai options %+v", cfg.AI)
	}
	if cfg.ReplyDelay != time.Second {
		t.Fatalf("unexpected reply delay %s", cfg.ReplyDelay)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("AI_TIMEOUT_SECONDS", "3")
	t.Setenv("CHAT_REPLY_DELAY_MS", "0")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SESSION_TTL_SECONDS", "not-a-number")

	cfg := FromEnv()
	if cfg.AI.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.AI.Timeout)
	}
	if cfg.ReplyDelay != 0 {
		t.Fatalf("expected zero reply delay, got %s", cfg.ReplyDelay)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.SessionTTL != 3*time.Hour {
		t.Fatalf("expected default ttl on bad input, got %s", cfg.SessionTTL)
	}
}
