package server

import (
	"log/slog"

	"github.com/preston-bernstein/kbo-fan-service/internal/config"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/fixture"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/kbo"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/youtube"
)

func selectVideoProvider(cfg config.Config, fx *fixture.Provider, logger *slog.Logger) providers.VideoProvider {
	switch cfg.VideoProvider {
	case config.ProviderYouTube, "":
		return youtube.NewClient(youtube.Config{
			BaseURL: cfg.YouTube.BaseURL,
			APIKey:  cfg.YouTube.APIKey,
		})
	case config.ProviderFixture:
		return fx
	default:
		if logger != nil {
			logger.Warn("unknown video provider, falling back to fixture", slog.String("provider", cfg.VideoProvider))
		}
		return fx
	}
}

func selectLeagueProvider(cfg config.Config, fx *fixture.Provider, logger *slog.Logger) providers.LeagueProvider {
	switch cfg.LeagueProvider {
	case config.ProviderKBO, "":
		return kbo.NewClient(kbo.Config{BaseURL: cfg.KBO.BaseURL})
	case config.ProviderFixture:
		return fx
	default:
		if logger != nil {
			logger.Warn("unknown league provider, falling back to fixture", slog.String("provider", cfg.LeagueProvider))
		}
		return fx
	}
}
