package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
)

var fixed = time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC)

func newFixed() *Provider {
	p := New()
	p.now = func() time.Time { return fixed }
	return p
}

func TestEmbeddedDatasetParses(t *testing.T) {
	ds, err := parseDataset(rawData)
	if err != nil {
		t.Fatalf("expected embedded data to parse, got %v", err)
	}
	if len(ds.Standings) != 10 || len(ds.Batters) != 5 || len(ds.Pitchers) != 5 || len(ds.History) != 2 {
		t.Fatalf("unexpected dataset sizes %d/%d/%d/%d", len(ds.Standings), len(ds.Batters), len(ds.Pitchers), len(ds.History))
	}
	if _, err := parseDataset([]byte("standings: [")); err == nil {
		t.Fatalf("expected malformed yaml to fail")
	}
}

func TestFallbackRecords(t *testing.T) {
	p := newFixed()

	rankings := p.Rankings()
	if rankings[0].Team.Code != "SSG" || rankings[0].Rank != 1 || rankings[0].GameBehind != 0 {
		t.Fatalf("unexpected leader %+v", rankings[0])
	}
	if rankings[9].Team.Code != "HANWHA" || rankings[9].WinRate != 0.437 {
		t.Fatalf("unexpected last place %+v", rankings[9])
	}

	batters := p.Batters()
	if batters[0].Name != "최정" || batters[0].Kind != records.KindBatting || batters[0].Batting.RBIs != 108 {
		t.Fatalf("unexpected first batter %+v", batters[0])
	}

	pitchers := p.Pitchers()
	closer := pitchers[1]
	if closer.Kind != records.KindPitching || closer.Pitching.Saves != 32 || closer.Pitching.Wins != 0 || closer.Position != "P" {
		t.Fatalf("unexpected closer %+v", closer)
	}

	history := p.History()
	if len(history) != 2 || history[0].Year != 2024 || history[0].Champion.Code != "KIA" || history[1].Rankings[0].Wins != 89 {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestFetchTeamRankingsBySeason(t *testing.T) {
	p := newFixed()
	ctx := context.Background()

	current, _ := p.FetchTeamRankings(ctx, fixed)
	if len(current) != 10 {
		t.Fatalf("expected current table, got %d rows", len(current))
	}
	archived, _ := p.FetchTeamRankings(ctx, time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC))
	if len(archived) != 1 || archived[0].Team.Code != "LG" {
		t.Fatalf("expected archived 2023 table, got %+v", archived)
	}
	missing, _ := p.FetchTeamRankings(ctx, time.Date(2021, 10, 31, 0, 0, 0, 0, time.UTC))
	if len(missing) != 0 {
		t.Fatalf("expected no rows for unarchived season, got %d", len(missing))
	}
}

func TestSearchVideosFiltersByTeamAndWindow(t *testing.T) {
	p := newFixed()
	ctx := context.Background()

	all, _ := p.SearchVideos(ctx, highlights.SearchParams{Query: "KBO 하이라이트"})
	if len(all) != 7 {
		t.Fatalf("expected every video for generic query, got %v", all)
	}

	ssg, _ := p.SearchVideos(ctx, highlights.SearchParams{Query: "SSG 랜더스 하이라이트"})
	if len(ssg) != 2 || ssg[0] != "example1" || ssg[1] != "example3" {
		t.Fatalf("expected SSG videos, got %v", ssg)
	}

	recent, _ := p.SearchVideos(ctx, highlights.SearchParams{Query: "KBO 하이라이트", PublishedAfter: fixed.AddDate(0, -1, 0)})
	if len(recent) != 4 {
		t.Fatalf("expected 4 videos in the last month, got %v", recent)
	}

	capped, _ := p.SearchVideos(ctx, highlights.SearchParams{Query: "KBO", MaxResults: 2})
	if len(capped) != 2 {
		t.Fatalf("expected results capped at 2, got %v", capped)
	}
}

func TestVideoDetailsKeepsRequestOrder(t *testing.T) {
	p := newFixed()
	videos, _ := p.VideoDetails(context.Background(), []string{"example3", "missing", "example1"})
	if len(videos) != 2 || videos[0].ID != "example3" || videos[1].ID != "example1" {
		t.Fatalf("unexpected videos %+v", videos)
	}
	if !videos[1].PublishedAt.Equal(fixed.AddDate(0, 0, -2)) || videos[1].ViewCount != 125000 {
		t.Fatalf("unexpected mapping %+v", videos[1])
	}
}

func TestFetchScheduleWindow(t *testing.T) {
	p := newFixed()
	loc := providers.LeagueLocation()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)

	got, _ := p.FetchSchedule(context.Background(), today, today)
	if len(got) != 2 {
		t.Fatalf("expected two games today, got %d", len(got))
	}
	if got[0].Date != "2024-06-15" || got[0].Status != games.StatusScheduled || got[0].HomeScore != nil {
		t.Fatalf("unexpected game %+v", got[0])
	}

	week, _ := p.FetchSchedule(context.Background(), today.AddDate(0, 0, -1), today.AddDate(0, 0, 6))
	if len(week) != 6 {
		t.Fatalf("expected whole fixture schedule, got %d", len(week))
	}
	if week[0].Status != games.StatusFinished || week[0].HomeScore == nil || *week[0].HomeScore != 5 {
		t.Fatalf("expected finished game with score, got %+v", week[0])
	}
}

func TestProviderSatisfiesInterfaces(t *testing.T) {
	var _ providers.VideoProvider = New()
	var _ providers.LeagueProvider = New()
}
