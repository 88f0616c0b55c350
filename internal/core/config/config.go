// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type MetricsCfg struct {
	Enabled bool
	Addr    string
	Path    string
}

type Config struct {
	Addr            string
	LogLevel        string
	PublicBaseURL   string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	TemplatePath    string
	CacheTTL        time.Duration
	CacheErrorTTL   time.Duration
	CharacterTTL    time.Duration
	LadderTTL       time.Duration
	CutoffsTTL      time.Duration
	MetaTTL         time.Duration
	RatePerMinute   int
	Metrics         MetricsCfg
}

func FromEnv() Config {
	ttl := getduration("SEO_CACHE_TTL_MS", 10*time.Minute)
	errTTL := getduration("SEO_CACHE_ERROR_TTL_MS", time.Minute)

	// SEO_CACHE_TTL_MS, when set, becomes the default for every page kind
	// that has no TTL of its own; otherwise each kind keeps its baked-in
	// default.
	kindDefault := func(def time.Duration) time.Duration {
		if os.Getenv("SEO_CACHE_TTL_MS") != "" {
			return ttl
		}
		return def
	}

	addr := getenv("ADDR", "")
	if addr == "" {
		addr = ":" + getenv("PORT", "8080")
	}

	return Config{
		Addr:            addr,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		PublicBaseURL:   strings.TrimRight(getenv("PUBLIC_BASE_URL", "https://arenahub.gg"), "/"),
		UpstreamBaseURL: strings.TrimRight(getenv("SSR_API_BASE", "http://localhost:3001"), "/"),
		UpstreamTimeout: getduration("SSR_API_TIMEOUT_MS", 2500*time.Millisecond),
		TemplatePath:    getenv("SSR_TEMPLATE_PATH", "web/dist/index.html"),
		CacheTTL:        ttl,
		CacheErrorTTL:   errTTL,
		CharacterTTL:    getduration("SEO_CHARACTER_TTL_MS", kindDefault(15*time.Minute)),
		LadderTTL:       getduration("SEO_LADDER_TTL_MS", kindDefault(5*time.Minute)),
		CutoffsTTL:      getduration("SEO_CUTOFFS_TTL_MS", kindDefault(30*time.Minute)),
		MetaTTL:         getduration("SEO_META_TTL_MS", kindDefault(time.Hour)),
		RatePerMinute:   getint("RATE_LIMIT_PER_MINUTE", 600),
		Metrics: MetricsCfg{
			Enabled: getbool("METRICS_ENABLED", false),
			Addr:    getenv("METRICS_ADDR", ":9090"),
			Path:    getenv("METRICS_PATH", "/metrics"),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes":
			return true
		case "0", "f", "false", "n", "no":
			return false
		}
	}
	return def
}

// *_MS keys accept a bare millisecond count or a Go duration string.
func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Millisecond
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
