package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
)

// quotaGuard blocks callers on a token bucket so we stay under upstream quotas.
type quotaGuard struct {
	name     string
	limiter  *rate.Limiter
	recorder *metrics.Recorder
	logger   *slog.Logger
}

func newQuotaGuard(name string, rps float64, burst int, recorder *metrics.Recorder, logger *slog.Logger) quotaGuard {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return quotaGuard{
		name:     name,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		recorder: recorder,
		logger:   logger,
	}
}

func (g quotaGuard) wait(ctx context.Context) error {
	start := time.Now()
	if err := g.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, g.logger, slog.LevelWarn, g.name, "quota wait canceled", slog.Any("error", err))
		return err
	}
	waited := time.Since(start)
	g.recorder.RecordQuotaWait(g.name, waited)
	return nil
}

// rateLimitedVideoProvider wraps a VideoProvider with a token-bucket quota guard.
type rateLimitedVideoProvider struct {
	next  VideoProvider
	guard quotaGuard
}

// NewRateLimitedVideoProvider returns a VideoProvider that allows rps calls per second with the given burst.
// Calls block until a token is available or ctx is done.
func NewRateLimitedVideoProvider(name string, next VideoProvider, rps float64, burst int, recorder *metrics.Recorder, logger *slog.Logger) VideoProvider {
	return &rateLimitedVideoProvider{
		next:  next,
		guard: newQuotaGuard(name, rps, burst, recorder, logger),
	}
}

func (p *rateLimitedVideoProvider) SearchVideos(ctx context.Context, params highlights.SearchParams) ([]string, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.guard.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.SearchVideos(ctx, params)
}

func (p *rateLimitedVideoProvider) VideoDetails(ctx context.Context, ids []string) ([]highlights.Video, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.guard.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.VideoDetails(ctx, ids)
}

// rateLimitedLeagueProvider wraps a LeagueProvider with a token-bucket quota guard.
type rateLimitedLeagueProvider struct {
	next  LeagueProvider
	guard quotaGuard
}

// NewRateLimitedLeagueProvider returns a LeagueProvider that allows rps calls per second with the given burst.
func NewRateLimitedLeagueProvider(name string, next LeagueProvider, rps float64, burst int, recorder *metrics.Recorder, logger *slog.Logger) LeagueProvider {
	return &rateLimitedLeagueProvider{
		next:  next,
		guard: newQuotaGuard(name, rps, burst, recorder, logger),
	}
}

func (p *rateLimitedLeagueProvider) FetchTeamRankings(ctx context.Context, date time.Time) ([]records.TeamRanking, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.guard.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeamRankings(ctx, date)
}

func (p *rateLimitedLeagueProvider) FetchBatterLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.guard.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchBatterLeaders(ctx, date)
}

func (p *rateLimitedLeagueProvider) FetchPitcherLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.guard.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPitcherLeaders(ctx, date)
}

func (p *rateLimitedLeagueProvider) FetchSchedule(ctx context.Context, start, end time.Time) ([]games.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	if err := p.guard.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, start, end)
}
