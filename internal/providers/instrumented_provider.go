package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/logging"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
)

// instrument times a single upstream call, records it and logs failures. Calls are never retried.
// A missing API key never reaches the upstream, so it is neither counted nor logged as a provider failure.
type instrument struct {
	name     string
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

func (in instrument) observe(ctx context.Context, operation string, call func() (int, error)) {
	start := in.now()
	count, err := call()
	elapsed := in.now().Sub(start)
	if errors.Is(err, highlights.ErrMissingAPIKey) {
		return
	}

	in.recorder.RecordProviderAttempt(in.name, elapsed, err)

	if err != nil {
		args := []any{
			slog.String(logging.FieldOperation, operation),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		}
		if statusErr, ok := AsStatusError(err); ok {
			args = append(args, slog.Int(logging.FieldStatusCode, statusErr.StatusCode))
		}
		logWithProvider(ctx, in.logger, slog.LevelWarn, in.name, "provider call failed", args...)
		return
	}
	logWithProvider(ctx, in.logger, slog.LevelDebug, in.name, "provider call complete",
		slog.String(logging.FieldOperation, operation),
		slog.Int(logging.FieldCount, count),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

func newInstrument(name string, recorder *metrics.Recorder, logger *slog.Logger) instrument {
	return instrument{name: name, recorder: recorder, logger: logger, now: time.Now}
}

type instrumentedVideoProvider struct {
	inner VideoProvider
	in    instrument
}

// NewInstrumentedVideoProvider records metrics and logs for every call made through inner.
func NewInstrumentedVideoProvider(name string, inner VideoProvider, recorder *metrics.Recorder, logger *slog.Logger) VideoProvider {
	return &instrumentedVideoProvider{inner: inner, in: newInstrument(name, recorder, logger)}
}

func (p *instrumentedVideoProvider) SearchVideos(ctx context.Context, params highlights.SearchParams) ([]string, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var ids []string
	var err error
	p.in.observe(ctx, "search", func() (int, error) {
		ids, err = p.inner.SearchVideos(ctx, params)
		return len(ids), err
	})
	return ids, err
}

func (p *instrumentedVideoProvider) VideoDetails(ctx context.Context, ids []string) ([]highlights.Video, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var videos []highlights.Video
	var err error
	p.in.observe(ctx, "videos", func() (int, error) {
		videos, err = p.inner.VideoDetails(ctx, ids)
		return len(videos), err
	})
	return videos, err
}

type instrumentedLeagueProvider struct {
	inner LeagueProvider
	in    instrument
}

// NewInstrumentedLeagueProvider records metrics and logs for every call made through inner.
func NewInstrumentedLeagueProvider(name string, inner LeagueProvider, recorder *metrics.Recorder, logger *slog.Logger) LeagueProvider {
	return &instrumentedLeagueProvider{inner: inner, in: newInstrument(name, recorder, logger)}
}

func (p *instrumentedLeagueProvider) FetchTeamRankings(ctx context.Context, date time.Time) ([]records.TeamRanking, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var out []records.TeamRanking
	var err error
	p.in.observe(ctx, "team-rankings", func() (int, error) {
		out, err = p.inner.FetchTeamRankings(ctx, date)
		return len(out), err
	})
	return out, err
}

func (p *instrumentedLeagueProvider) FetchBatterLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var out []records.PlayerStats
	var err error
	p.in.observe(ctx, "batter-leaders", func() (int, error) {
		out, err = p.inner.FetchBatterLeaders(ctx, date)
		return len(out), err
	})
	return out, err
}

func (p *instrumentedLeagueProvider) FetchPitcherLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var out []records.PlayerStats
	var err error
	p.in.observe(ctx, "pitcher-leaders", func() (int, error) {
		out, err = p.inner.FetchPitcherLeaders(ctx, date)
		return len(out), err
	})
	return out, err
}

func (p *instrumentedLeagueProvider) FetchSchedule(ctx context.Context, start, end time.Time) ([]games.Game, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	var out []games.Game
	var err error
	p.in.observe(ctx, "schedule", func() (int, error) {
		out, err = p.inner.FetchSchedule(ctx, start, end)
		return len(out), err
	})
	return out, err
}
