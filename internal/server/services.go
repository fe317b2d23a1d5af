package server

import (
	"log/slog"

	apphighlights "github.com/preston-bernstein/kbo-fan-service/internal/app/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/app/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/app/schedule"
	"github.com/preston-bernstein/kbo-fan-service/internal/cache"
	"github.com/preston-bernstein/kbo-fan-service/internal/config"
	"github.com/preston-bernstein/kbo-fan-service/internal/http/handlers"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/fixture"
)

// Services holds the application services built from configuration.
// The HTTP server and the CLI share this wiring.
type Services struct {
	Highlights *apphighlights.Service
	Records    *records.Service
	Schedule   *schedule.Service
	Cache      *cache.Cache
	Ready      func() bool
}

// BuildServices wires providers, the shared cache and the application services.
func BuildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) Services {
	fx := fixture.New()
	factory := newProviderFactory(logger, recorder, fx)
	videos, ready := factory.buildVideo(cfg)
	league := factory.buildLeague(cfg)

	c := cache.New(cfg.CacheTTL, cache.WithRecorder(recorder))

	return Services{
		Highlights: apphighlights.NewService(apphighlights.NewFetcher(videos, logger), c, cfg.HighlightCount, logger),
		Records:    records.NewService(league, fx, c, recorder, logger),
		Schedule:   schedule.NewService(league, c, logger),
		Cache:      c,
		Ready:      ready,
	}
}

func (s Services) handlerServices() handlers.Services {
	return handlers.Services{
		Highlights: s.Highlights,
		Records:    s.Records,
		Schedule:   s.Schedule,
		Ready:      s.Ready,
	}
}
