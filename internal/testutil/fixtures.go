package testutil

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
)

// Team returns the directory team for code, failing loudly on a typo in a test.
func Team(code string) teams.Team {
	t, ok := teams.ByCode(code)
	if !ok {
		panic(fmt.Sprintf("unknown team code %q", code))
	}
	return t
}

// SampleGame returns a scheduled game between two directory teams.
func SampleGame(id, home, away string) games.Game {
	return games.Game{
		ID:      id,
		Date:    "2025-06-01",
		Time:    "18:30",
		Home:    Team(home),
		Away:    Team(away),
		Stadium: "잠실",
		Status:  games.StatusScheduled,
	}
}

// SampleRanking returns a standings row for code at rank.
func SampleRanking(rank int, code string) records.TeamRanking {
	return records.TeamRanking{
		Rank:    rank,
		Team:    Team(code),
		Games:   100,
		Wins:    60 - rank,
		Losses:  38 + rank,
		Draws:   2,
		WinRate: float64(60-rank) / 98,
	}
}

// SampleVideo returns a video published at the given time with an ISO-8601 duration.
func SampleVideo(id string, published time.Time, views int64, duration string) highlights.Video {
	return highlights.Video{
		ID:          id,
		Title:       "KBO 하이라이트 " + id,
		Duration:    duration,
		PublishedAt: published,
		ViewCount:   views,
		Thumbnail:   "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg",
	}
}
