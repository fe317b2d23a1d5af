package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
)

// StubVideoProvider is a test double for providers.VideoProvider.
type StubVideoProvider struct {
	IDs        []string
	Videos     []highlights.Video
	SearchErr  error
	DetailsErr error

	SearchCalls  atomic.Int32
	DetailsCalls atomic.Int32

	mu         sync.Mutex
	LastSearch highlights.SearchParams
	LastIDs    []string
}

// SearchVideos returns configured IDs and error while tracking calls.
func (s *StubVideoProvider) SearchVideos(ctx context.Context, params highlights.SearchParams) ([]string, error) {
	_ = ctx
	s.SearchCalls.Add(1)
	s.mu.Lock()
	s.LastSearch = params
	s.mu.Unlock()
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	return s.IDs, nil
}

// VideoDetails returns configured videos and error while tracking calls.
func (s *StubVideoProvider) VideoDetails(ctx context.Context, ids []string) ([]highlights.Video, error) {
	_ = ctx
	s.DetailsCalls.Add(1)
	s.mu.Lock()
	s.LastIDs = append([]string(nil), ids...)
	s.mu.Unlock()
	if s.DetailsErr != nil {
		return nil, s.DetailsErr
	}
	return s.Videos, nil
}

// Search returns the parameters of the most recent search.
func (s *StubVideoProvider) Search() highlights.SearchParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastSearch
}

// StubLeagueProvider is a test double for providers.LeagueProvider.
// RankingsByYear, when set, answers FetchTeamRankings by the requested date's year.
// ErrByYear fails FetchTeamRankings for individual years.
type StubLeagueProvider struct {
	Rankings       []records.TeamRanking
	RankingsByYear map[int][]records.TeamRanking
	ErrByYear      map[int]error
	Batters        []records.PlayerStats
	Pitchers       []records.PlayerStats
	Games          []games.Game
	Err            error

	Calls atomic.Int32

	mu    sync.Mutex
	Dates []time.Time
}

func (s *StubLeagueProvider) track(dates ...time.Time) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.Dates = append(s.Dates, dates...)
	s.mu.Unlock()
}

// RequestedDates returns every date passed to the stub, in call order.
func (s *StubLeagueProvider) RequestedDates() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.Dates...)
}

// FetchTeamRankings returns configured standings.
func (s *StubLeagueProvider) FetchTeamRankings(ctx context.Context, date time.Time) ([]records.TeamRanking, error) {
	_ = ctx
	s.track(date)
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.ErrByYear[date.Year()]; err != nil {
		return nil, err
	}
	if s.RankingsByYear != nil {
		return s.RankingsByYear[date.Year()], nil
	}
	return s.Rankings, nil
}

// FetchBatterLeaders returns configured batters.
func (s *StubLeagueProvider) FetchBatterLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	_ = ctx
	s.track(date)
	return s.Batters, s.Err
}

// FetchPitcherLeaders returns configured pitchers.
func (s *StubLeagueProvider) FetchPitcherLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	_ = ctx
	s.track(date)
	return s.Pitchers, s.Err
}

// FetchSchedule returns configured games.
func (s *StubLeagueProvider) FetchSchedule(ctx context.Context, start, end time.Time) ([]games.Game, error) {
	_ = ctx
	s.track(start, end)
	return s.Games, s.Err
}
