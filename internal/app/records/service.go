package records

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/cache"
	domain "github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
	"github.com/preston-bernstein/kbo-fan-service/internal/logging"
	"github.com/preston-bernstein/kbo-fan-service/internal/metrics"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
)

// Cache keys for the records datasets.
const (
	KeyCurrentRankings    = "current-rankings"
	KeyTopBatters         = "top-batters"
	KeyTopPitchers        = "top-pitchers"
	KeyHistoricalRankings = "historical-rankings"
)

const leaderboardSize = 10

// Seasons whose final standings are served, newest first.
var historicalYears = []int{2024, 2023, 2022, 2021, 2020}

// Korean Series winners by season.
var champions = map[int]string{
	2024: "KIA",
	2023: "LG",
	2022: "SSG",
	2021: "KT",
	2020: "NC",
}

var errNoSeasons = errors.New("no historical seasons available")

// FallbackSource supplies static records served when the league cannot be reached.
type FallbackSource interface {
	Rankings() []domain.TeamRanking
	Batters() []domain.PlayerStats
	Pitchers() []domain.PlayerStats
	History() []domain.HistoricalRanking
}

// Service fetches standings and leaderboards, falling back to static data on any failure.
// Every outcome, fallback included, is cached under a fixed key.
type Service struct {
	league   providers.LeagueProvider
	fallback FallbackSource
	cache    *cache.Cache
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
	loc      *time.Location
}

// NewService constructs a records Service.
func NewService(league providers.LeagueProvider, fallback FallbackSource, c *cache.Cache, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		league:   league,
		fallback: fallback,
		cache:    c,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		loc:      providers.LeagueLocation(),
	}
}

// CurrentRankings returns this season's standings.
func (s *Service) CurrentRankings(ctx context.Context) domain.Outcome[[]domain.TeamRanking] {
	out, _ := cache.GetOrLoad(ctx, s.cache, KeyCurrentRankings, func(ctx context.Context) (domain.Outcome[[]domain.TeamRanking], error) {
		rows, err := s.league.FetchTeamRankings(ctx, s.now())
		if err != nil {
			s.noteFallback(ctx, KeyCurrentRankings, err)
			return domain.Unavailable(s.fallback.Rankings()), nil
		}
		return domain.Live(rows), nil
	})
	return out
}

// TopBatters returns the batting-average leaders, at most ten.
func (s *Service) TopBatters(ctx context.Context) domain.Outcome[[]domain.PlayerStats] {
	out, _ := cache.GetOrLoad(ctx, s.cache, KeyTopBatters, func(ctx context.Context) (domain.Outcome[[]domain.PlayerStats], error) {
		rows, err := s.league.FetchBatterLeaders(ctx, s.now())
		if err != nil {
			s.noteFallback(ctx, KeyTopBatters, err)
			return domain.Unavailable(s.fallback.Batters()), nil
		}
		return domain.Live(truncate(rows)), nil
	})
	return out
}

// TopPitchers returns the ERA leaders, at most ten.
func (s *Service) TopPitchers(ctx context.Context) domain.Outcome[[]domain.PlayerStats] {
	out, _ := cache.GetOrLoad(ctx, s.cache, KeyTopPitchers, func(ctx context.Context) (domain.Outcome[[]domain.PlayerStats], error) {
		rows, err := s.league.FetchPitcherLeaders(ctx, s.now())
		if err != nil {
			s.noteFallback(ctx, KeyTopPitchers, err)
			return domain.Unavailable(s.fallback.Pitchers()), nil
		}
		return domain.Live(truncate(rows)), nil
	})
	return out
}

// HistoricalRankings returns final standings for recent seasons, fetched one season at a time.
// Seasons whose fetch fails are skipped; if every season fails the fallback history is served.
func (s *Service) HistoricalRankings(ctx context.Context) domain.Outcome[[]domain.HistoricalRanking] {
	out, _ := cache.GetOrLoad(ctx, s.cache, KeyHistoricalRankings, func(ctx context.Context) (domain.Outcome[[]domain.HistoricalRanking], error) {
		seasons := make([]domain.HistoricalRanking, 0, len(historicalYears))
		for _, year := range historicalYears {
			rows, err := s.league.FetchTeamRankings(ctx, seasonEnd(year, s.loc))
			if err != nil {
				logging.Warn(logging.FromContext(ctx, s.logger), "season standings unavailable",
					slog.Int(logging.FieldYear, year),
					slog.Any("error", err),
				)
				continue
			}
			seasons = append(seasons, domain.HistoricalRanking{
				Year:     year,
				Rankings: rows,
				Champion: champion(year),
			})
		}
		if len(seasons) == 0 {
			s.noteFallback(ctx, KeyHistoricalRankings, errNoSeasons)
			return domain.Unavailable(s.fallback.History()), nil
		}
		return domain.Live(seasons), nil
	})
	return out
}

func (s *Service) noteFallback(ctx context.Context, dataset string, err error) {
	s.recorder.RecordFallback(dataset)
	logging.Warn(logging.FromContext(ctx, s.logger), "serving fallback records",
		slog.String(logging.FieldCacheKey, dataset),
		slog.Any("error", err),
	)
}

// seasonEnd is Oct 31 of the season in league time, after the regular season closes.
func seasonEnd(year int, loc *time.Location) time.Time {
	return time.Date(year, time.October, 31, 12, 0, 0, 0, loc)
}

func champion(year int) teams.Team {
	if t, ok := teams.ByCode(champions[year]); ok {
		return t
	}
	return teams.All()[0]
}

func truncate(rows []domain.PlayerStats) []domain.PlayerStats {
	if len(rows) > leaderboardSize {
		return rows[:leaderboardSize]
	}
	return rows
}
