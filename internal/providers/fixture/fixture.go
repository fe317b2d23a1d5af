package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/timeutil"
)

const genericQueryToken = "KBO"

// Provider serves embedded league data. It backs offline mode and supplies the records fallback set.
type Provider struct {
	data dataset
	now  func() time.Time
	loc  *time.Location
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		data: mustLoad(),
		now:  time.Now,
		loc:  providers.LeagueLocation(),
	}
}

// SearchVideos matches fixture videos against the first word of the query ("KBO" matches all).
func (p *Provider) SearchVideos(ctx context.Context, params highlights.SearchParams) ([]string, error) {
	_ = ctx
	token := firstToken(params.Query)

	ids := make([]string, 0, len(p.data.Videos))
	for _, v := range p.data.Videos {
		if !params.PublishedAfter.IsZero() && p.publishedAt(v).Before(params.PublishedAfter) {
			continue
		}
		if token != "" && token != genericQueryToken && !strings.Contains(v.Title, token) {
			continue
		}
		ids = append(ids, v.ID)
		if params.MaxResults > 0 && len(ids) == params.MaxResults {
			break
		}
	}
	return ids, nil
}

// VideoDetails returns fixture videos for the requested IDs, skipping unknown ones.
func (p *Provider) VideoDetails(ctx context.Context, ids []string) ([]highlights.Video, error) {
	_ = ctx
	out := make([]highlights.Video, 0, len(ids))
	for _, id := range ids {
		for _, v := range p.data.Videos {
			if v.ID == id {
				out = append(out, p.toVideo(v))
				break
			}
		}
	}
	return out, nil
}

// FetchTeamRankings returns the archived season for past years, or the current table otherwise.
// Past years without archived data return no rows.
func (p *Provider) FetchTeamRankings(ctx context.Context, date time.Time) ([]records.TeamRanking, error) {
	_ = ctx
	for _, season := range p.data.History {
		if season.Year == date.Year() {
			return toRankings(season.Rankings), nil
		}
	}
	if date.Year() < p.now().In(p.loc).Year() {
		return []records.TeamRanking{}, nil
	}
	return p.Rankings(), nil
}

// FetchBatterLeaders returns the fixture batting leaders.
func (p *Provider) FetchBatterLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	_ = ctx
	_ = date
	return p.Batters(), nil
}

// FetchPitcherLeaders returns the fixture pitching leaders.
func (p *Provider) FetchPitcherLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	_ = ctx
	_ = date
	return p.Pitchers(), nil
}

// FetchSchedule returns fixture games, placed relative to today, that fall within [start, end].
func (p *Provider) FetchSchedule(ctx context.Context, start, end time.Time) ([]games.Game, error) {
	_ = ctx
	first := timeutil.StartOfDay(start.In(p.loc))
	last := timeutil.StartOfDay(end.In(p.loc))
	today := timeutil.StartOfDay(p.now().In(p.loc))

	out := make([]games.Game, 0, len(p.data.Schedule))
	for _, row := range p.data.Schedule {
		day := today.AddDate(0, 0, row.DayOffset)
		if day.Before(first) || day.After(last) {
			continue
		}
		out = append(out, games.Game{
			ID:        row.ID,
			Date:      timeutil.FormatDate(day),
			Time:      row.Time,
			Home:      team(row.Home),
			Away:      team(row.Away),
			Stadium:   row.Stadium,
			Status:    games.GameStatus(row.Status),
			HomeScore: row.HomeScore,
			AwayScore: row.AwayScore,
		})
	}
	return out, nil
}

// Rankings returns the fallback standings table.
func (p *Provider) Rankings() []records.TeamRanking {
	return toRankings(p.data.Standings)
}

// Batters returns the fallback batting leaders.
func (p *Provider) Batters() []records.PlayerStats {
	out := make([]records.PlayerStats, 0, len(p.data.Batters))
	for _, b := range p.data.Batters {
		out = append(out, records.NewBatter(records.PlayerInfo{
			PlayerID: b.ID,
			Name:     b.Name,
			Team:     team(b.Team),
			Position: b.Position,
			Games:    b.Games,
		}, records.BattingLine{
			BattingAverage: b.Average,
			HomeRuns:       b.HomeRuns,
			RBIs:           b.RBIs,
		}))
	}
	return out
}

// Pitchers returns the fallback pitching leaders.
func (p *Provider) Pitchers() []records.PlayerStats {
	out := make([]records.PlayerStats, 0, len(p.data.Pitchers))
	for _, row := range p.data.Pitchers {
		out = append(out, records.NewPitcher(records.PlayerInfo{
			PlayerID: row.ID,
			Name:     row.Name,
			Team:     team(row.Team),
			Position: "P",
			Games:    row.Games,
		}, records.PitchingLine{
			ERA:        row.ERA,
			Wins:       row.Wins,
			Saves:      row.Saves,
			Strikeouts: row.Strikeouts,
		}))
	}
	return out
}

// History returns the fallback historical standings, newest season first.
func (p *Provider) History() []records.HistoricalRanking {
	out := make([]records.HistoricalRanking, 0, len(p.data.History))
	for _, season := range p.data.History {
		out = append(out, records.HistoricalRanking{
			Year:     season.Year,
			Rankings: toRankings(season.Rankings),
			Champion: team(season.Champion),
		})
	}
	return out
}

func (p *Provider) publishedAt(v videoRow) time.Time {
	return p.now().UTC().AddDate(0, 0, -v.AgeDays)
}

func (p *Provider) toVideo(v videoRow) highlights.Video {
	return highlights.Video{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		PublishedAt: p.publishedAt(v),
		ViewCount:   v.Views,
		Thumbnail:   "https://i.ytimg.com/vi/" + v.ID + "/mqdefault.jpg",
	}
}

func toRankings(rows []rankingRow) []records.TeamRanking {
	out := make([]records.TeamRanking, 0, len(rows))
	for i, r := range rows {
		out = append(out, records.TeamRanking{
			Rank:       i + 1,
			Team:       team(r.Team),
			Games:      r.Games,
			Wins:       r.Wins,
			Losses:     r.Losses,
			Draws:      r.Draws,
			WinRate:    r.WinRate,
			GameBehind: r.GameBehind,
		})
	}
	return out
}

func team(code string) teams.Team {
	if t, ok := teams.ByCode(code); ok {
		return t
	}
	return teams.All()[0]
}

func firstToken(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
