package server

import (
	"log/slog"

	"github.com/preston-bernstein/kbo-fan-service/internal/config"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/fixture"
)

// providerFactory assembles providers with shared wrappers (instrumentation inside the quota guard).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	fixture *fixture.Provider
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, fx *fixture.Provider) providerFactory {
	if fx == nil {
		fx = fixture.New()
	}
	return providerFactory{logger: logger, metrics: metrics, fixture: fx}
}

// buildVideo returns the wrapped video provider and a readiness probe for its upstream.
func (f providerFactory) buildVideo(cfg config.Config) (providers.VideoProvider, func() bool) {
	base := selectVideoProvider(cfg, f.fixture, f.logger)
	name := normalizeProviderName(cfg.VideoProvider, base)
	instrumented := providers.NewInstrumentedVideoProvider(name, base, f.metrics, f.logger)
	return providers.NewRateLimitedVideoProvider(name, instrumented, cfg.YouTube.RPS, cfg.YouTube.Burst, f.metrics, f.logger), readiness(base)
}

func (f providerFactory) buildLeague(cfg config.Config) providers.LeagueProvider {
	base := selectLeagueProvider(cfg, f.fixture, f.logger)
	name := normalizeProviderName(cfg.LeagueProvider, base)
	instrumented := providers.NewInstrumentedLeagueProvider(name, base, f.metrics, f.logger)
	return providers.NewRateLimitedLeagueProvider(name, instrumented, cfg.KBO.RPS, 1, f.metrics, f.logger)
}

// readiness reports whether provider has what it needs to call its upstream.
// Providers without a Configured method are always ready.
func readiness(provider any) func() bool {
	if c, ok := provider.(interface{ Configured() bool }); ok {
		return c.Configured
	}
	return func() bool { return true }
}
