package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/cache"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/logging"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/timeutil"
)

// ErrInvalidRange is returned when end falls before start.
var ErrInvalidRange = errors.New("schedule end date is before start date")

// Service serves the league schedule through the shared cache.
type Service struct {
	league providers.LeagueProvider
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a schedule Service.
func NewService(league providers.LeagueProvider, c *cache.Cache, logger *slog.Logger) *Service {
	return &Service{league: league, cache: c, logger: logger}
}

// Games returns games between start and end inclusive, optionally only those teamCode plays in.
// Upstream failures yield an empty list and are not cached.
func (s *Service) Games(ctx context.Context, start, end time.Time, teamCode string) ([]games.Game, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	key := fmt.Sprintf("schedule:%s:%s", timeutil.FormatDate(start), timeutil.FormatDate(end))
	all, err := cache.GetOrLoad(ctx, s.cache, key, func(ctx context.Context) ([]games.Game, error) {
		return s.league.FetchSchedule(ctx, start, end)
	})
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "schedule unavailable",
			slog.String(logging.FieldCacheKey, key),
			slog.Any("error", err),
		)
		return []games.Game{}, nil
	}
	if all == nil {
		all = []games.Game{}
	}
	return games.FilterByTeam(all, teamCode), nil
}

// ParseDate parses a YYYY-MM-DD or YYYYMMDD date in the league's timezone.
func ParseDate(raw string) (time.Time, error) {
	return timeutil.ParseDate(raw, providers.LeagueLocation())
}
