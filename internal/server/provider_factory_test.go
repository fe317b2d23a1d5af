package server

import (
	"testing"

	"github.com/preston-bernstein/kbo-fan-service/internal/config"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/fixture"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/kbo"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/youtube"
)

func TestProviderFactoryBuildsWrappedProviders(t *testing.T) {
	factory := newProviderFactory(nil, nil, nil)
	cfg := config.Config{VideoProvider: config.ProviderFixture, LeagueProvider: config.ProviderFixture}
	videos, ready := factory.buildVideo(cfg)
	if videos == nil || factory.buildLeague(cfg) == nil {
		t.Fatalf("expected providers")
	}
	if !ready() {
		t.Fatalf("expected fixture video provider to be ready")
	}
	if factory.fixture == nil {
		t.Fatalf("expected default fixture provider")
	}
}

func TestSelectProviders(t *testing.T) {
	fx := fixture.New()

	if _, ok := selectVideoProvider(config.Config{VideoProvider: config.ProviderYouTube}, fx, nil).(*youtube.Client); !ok {
		t.Fatalf("expected youtube client")
	}
	if _, ok := selectVideoProvider(config.Config{}, fx, nil).(*youtube.Client); !ok {
		t.Fatalf("expected youtube client as default")
	}
	if p := selectVideoProvider(config.Config{VideoProvider: "vimeo"}, fx, nil); p != fx {
		t.Fatalf("expected fixture fallback for unknown video provider")
	}

	if _, ok := selectLeagueProvider(config.Config{LeagueProvider: config.ProviderKBO}, fx, nil).(*kbo.Client); !ok {
		t.Fatalf("expected kbo client")
	}
	if p := selectLeagueProvider(config.Config{LeagueProvider: config.ProviderFixture}, fx, nil); p != fx {
		t.Fatalf("expected fixture league provider")
	}
	if p := selectLeagueProvider(config.Config{LeagueProvider: "npb"}, fx, nil); p != fx {
		t.Fatalf("expected fixture fallback for unknown league provider")
	}
}

func TestReadiness(t *testing.T) {
	if readiness(youtube.NewClient(youtube.Config{}))() {
		t.Fatalf("expected youtube client without key to be unready")
	}
	if !readiness(youtube.NewClient(youtube.Config{APIKey: "k"}))() {
		t.Fatalf("expected youtube client with key to be ready")
	}
	if !readiness(fixture.New())() {
		t.Fatalf("expected fixture always ready")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("YouTube", nil); got != "youtube" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}
