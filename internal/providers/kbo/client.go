package kbo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/timeutil"
)

// Config controls how the KBO client reaches the league web service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches standings, leaderboards and the schedule from the KBO web service.
type Client struct {
	baseURL    string
	httpClient httpDoer
	loc        *time.Location
}

// NewClient constructs a KBO client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		loc:        providers.LeagueLocation(),
	}
}

// FetchTeamRankings returns the standings as of date, ranked by upstream row order.
func (c *Client) FetchTeamRankings(ctx context.Context, date time.Time) ([]records.TeamRanking, error) {
	var rows []teamRankRow
	if err := c.post(ctx, "GetTeamRank", c.rankRequest(date, ""), &rows); err != nil {
		return nil, err
	}
	out := make([]records.TeamRanking, 0, len(rows))
	for i, row := range rows {
		out = append(out, mapRanking(i, row))
	}
	return out, nil
}

// FetchBatterLeaders returns batters ordered by batting average.
func (c *Client) FetchBatterLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	var rows []batterRow
	if err := c.post(ctx, "GetBatterRank", c.rankRequest(date, sortByAverage), &rows); err != nil {
		return nil, err
	}
	out := make([]records.PlayerStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapBatter(row))
	}
	return out, nil
}

// FetchPitcherLeaders returns pitchers ordered by ERA.
func (c *Client) FetchPitcherLeaders(ctx context.Context, date time.Time) ([]records.PlayerStats, error) {
	var rows []pitcherRow
	if err := c.post(ctx, "GetPitcherRank", c.rankRequest(date, sortByERA), &rows); err != nil {
		return nil, err
	}
	out := make([]records.PlayerStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPitcher(row))
	}
	return out, nil
}

// FetchSchedule returns games between start and end inclusive.
func (c *Client) FetchSchedule(ctx context.Context, start, end time.Time) ([]games.Game, error) {
	req := scheduleRequest{
		LeagueID:  leagueID,
		SeriesID:  regularSeason,
		StartDate: c.compact(start),
		EndDate:   c.compact(end),
	}
	var rows []scheduleRow
	if err := c.post(ctx, "GetScheduleList", req, &rows); err != nil {
		return nil, err
	}
	out := make([]games.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapGame(row))
	}
	return out, nil
}

func (c *Client) rankRequest(date time.Time, sortKey string) rankRequest {
	return rankRequest{
		LeagueID: leagueID,
		SeriesID: regularSeason,
		Date:     c.compact(date),
		SortKey:  sortKey,
	}
}

// compact formats a date in league-local time so the upstream sees the Korean calendar day.
func (c *Client) compact(t time.Time) string {
	return timeutil.FormatCompact(t, c.loc)
}

func (c *Client) post(ctx context.Context, method string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Main.asmx/"+method, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("%s: %w", method, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(snippet)),
		})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	return nil
}
