package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
)

// VideoProvider searches an upstream video catalogue.
// Errors for non-2xx responses should be *StatusError so callers can tell access denial apart.
type VideoProvider interface {
	SearchVideos(ctx context.Context, params highlights.SearchParams) ([]string, error)
	VideoDetails(ctx context.Context, ids []string) ([]highlights.Video, error)
}

// LeagueProvider fetches standings, leaderboards and the schedule from the league.
// The date selects the standings snapshot; leaderboards are returned in upstream order.
type LeagueProvider interface {
	FetchTeamRankings(ctx context.Context, date time.Time) ([]records.TeamRanking, error)
	FetchBatterLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error)
	FetchPitcherLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error)
	FetchSchedule(ctx context.Context, start, end time.Time) ([]games.Game, error)
}
