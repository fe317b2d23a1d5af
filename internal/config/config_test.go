package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.VideoProvider != ProviderYouTube || cfg.LeagueProvider != ProviderKBO {
		t.Fatalf("expected live providers by default, got %s/%s", cfg.VideoProvider, cfg.LeagueProvider)
	}
	if cfg.YouTube.BaseURL != defaultYouTubeBaseURL {
		t.Fatalf("expected default youtube base url %s, got %s", defaultYouTubeBaseURL, cfg.YouTube.BaseURL)
	}
	if cfg.YouTube.APIKey != "" {
		t.Fatalf("expected empty youtube api key by default, got %s", cfg.YouTube.APIKey)
	}
	if cfg.KBO.BaseURL != defaultKBOBaseURL {
		t.Fatalf("expected default kbo base url %s, got %s", defaultKBOBaseURL, cfg.KBO.BaseURL)
	}
	if cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default cache ttl %s, got %s", defaultCacheTTL, cfg.CacheTTL)
	}
	if cfg.HighlightCount != defaultHighlightCount {
		t.Fatalf("expected default highlight count %d, got %d", defaultHighlightCount, cfg.HighlightCount)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors origin, got %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Logging.Level != defaultLogLevel || cfg.Logging.Format != defaultLogFormat {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envVideoProvider, "Fixture")
	t.Setenv(envLeagueProvider, "fixture")
	t.Setenv(envYouTubeAPIKey, "secret-key")
	t.Setenv(envYouTubeRPS, "0.5")
	t.Setenv(envKBOBaseURL, "http://example.com/ws")
	t.Setenv(envCacheTTL, "45s")
	t.Setenv(envHighlightCount, "12")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example")
	t.Setenv(envLogFormat, "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.VideoProvider != ProviderFixture || cfg.LeagueProvider != ProviderFixture {
		t.Fatalf("expected fixture providers, got %s/%s", cfg.VideoProvider, cfg.LeagueProvider)
	}
	if cfg.YouTube.APIKey != "secret-key" || cfg.YouTube.RPS != 0.5 {
		t.Fatalf("unexpected youtube config %+v", cfg.YouTube)
	}
	if cfg.KBO.BaseURL != "http://example.com/ws" {
		t.Fatalf("expected kbo base url override, got %s", cfg.KBO.BaseURL)
	}
	if cfg.CacheTTL != 45*time.Second {
		t.Fatalf("expected cache ttl 45s, got %s", cfg.CacheTTL)
	}
	if cfg.HighlightCount != 12 {
		t.Fatalf("expected highlight count 12, got %d", cfg.HighlightCount)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected two trimmed origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Logging.Format)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envCacheTTL, "not-a-duration")
	t.Setenv(envHighlightCount, "-3")
	t.Setenv(envKBORPS, "zero")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default cache ttl on invalid value, got %s", cfg.CacheTTL)
	}
	if cfg.HighlightCount != defaultHighlightCount {
		t.Fatalf("expected default highlight count on invalid value, got %d", cfg.HighlightCount)
	}
	if cfg.KBO.RPS != defaultKBORPS {
		t.Fatalf("expected default kbo rps on invalid value, got %v", cfg.KBO.RPS)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envCacheTTL, "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default cache ttl on non-positive value, got %s", cfg.CacheTTL)
	}
}

func TestLoadFileFillsUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "port: \"6000\"\nyoutube_api_key: from-file\nhighlight_count: 20\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envHighlightCount, "8")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "6000" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if cfg.YouTube.APIKey != "from-file" {
		t.Fatalf("expected api key from file, got %s", cfg.YouTube.APIKey)
	}
	if cfg.HighlightCount != 8 {
		t.Fatalf("expected environment to win over file, got %d", cfg.HighlightCount)
	}
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadUsesConfigFileEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("video_provider: fixture\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.VideoProvider != ProviderFixture {
		t.Fatalf("expected video provider from config file, got %s", cfg.VideoProvider)
	}
}
