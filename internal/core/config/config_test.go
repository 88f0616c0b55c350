package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Addr != ":8080" {
		t.Fatalf("addr %s", cfg.Addr)
	}
	if cfg.UpstreamTimeout != 2500*time.Millisecond {
		t.Fatalf("timeout %s", cfg.UpstreamTimeout)
	}
	if cfg.CharacterTTL != 15*time.Minute || cfg.LadderTTL != 5*time.Minute {
		t.Fatalf("kind ttls %s %s", cfg.CharacterTTL, cfg.LadderTTL)
	}
	if cfg.CacheErrorTTL != time.Minute {
		t.Fatalf("error ttl %s", cfg.CacheErrorTTL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PUBLIC_BASE_URL", "https://example.com/")
	t.Setenv("SSR_API_TIMEOUT_MS", "500")
	t.Setenv("SEO_LADDER_TTL_MS", "1m30s")

	cfg := FromEnv()

	if cfg.Addr != ":9000" {
		t.Fatalf("addr %s", cfg.Addr)
	}
	if cfg.PublicBaseURL != "https://example.com" {
		t.Fatalf("base url must be trimmed, got %s", cfg.PublicBaseURL)
	}
	if cfg.UpstreamTimeout != 500*time.Millisecond {
		t.Fatalf("timeout %s", cfg.UpstreamTimeout)
	}
	// duration values accept either bare milliseconds or Go duration syntax
	if cfg.LadderTTL != 90*time.Second {
		t.Fatalf("ladder ttl %s", cfg.LadderTTL)
	}
}

func TestGenericTTLFallsThroughToKinds(t *testing.T) {
	t.Setenv("SEO_CACHE_TTL_MS", "60000")
	t.Setenv("SEO_META_TTL_MS", "7200000")

	cfg := FromEnv()

	if cfg.CharacterTTL != time.Minute || cfg.CutoffsTTL != time.Minute {
		t.Fatalf("generic ttl must cover unset kinds: %s %s", cfg.CharacterTTL, cfg.CutoffsTTL)
	}
	if cfg.MetaTTL != 2*time.Hour {
		t.Fatalf("explicit kind ttl must win: %s", cfg.MetaTTL)
	}
}
