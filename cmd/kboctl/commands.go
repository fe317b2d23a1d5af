package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apphighlights "github.com/preston-bernstein/kbo-fan-service/internal/app/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/app/schedule"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/timeutil"
)

const scheduleSpanDays = 6

func newHighlightsCmd(a *app) *cobra.Command {
	var (
		category  string
		sortOrder string
		count     int
	)
	cmd := &cobra.Command{
		Use:   "highlights",
		Short: "List highlight clips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.services.Highlights.Highlights(cmd.Context(), apphighlights.Request{
				TeamCode:  strings.ToUpper(a.team),
				Category:  highlights.SearchCategory(category),
				SortOrder: highlights.SortOrder(sortOrder),
				Count:     count,
			})
			if err != nil {
				return fmt.Errorf("fetch highlights: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&category, "category", string(highlights.SearchRecent), "recent, highlight or legend")
	cmd.Flags().StringVar(&sortOrder, "sort", string(highlights.SortByDate), "date or relevance")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of clips (defaults to HIGHLIGHT_COUNT)")
	return cmd
}

func newRankingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rankings",
		Short: "Show this season's standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.services.Records.CurrentRankings(cmd.Context()))
		},
	}
}

func newBattersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batters",
		Short: "Show the batting average leaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.services.Records.TopBatters(cmd.Context()))
		},
	}
}

func newPitchersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pitchers",
		Short: "Show the ERA leaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.services.Records.TopPitchers(cmd.Context()))
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show final standings of recent seasons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.services.Records.HistoricalRankings(cmd.Context()))
		},
	}
}

func newScheduleCmd(a *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List games in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := scheduleRange(start, end, time.Now())
			if err != nil {
				return err
			}
			out, err := a.services.Schedule.Games(cmd.Context(), from, to, strings.ToUpper(a.team))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD (defaults to start + 6 days)")
	return cmd
}

func newTeamsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List league teams, or one team with --team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.team == "" {
				return printJSON(cmd.OutOrStdout(), teams.All())
			}
			team, ok := teams.ByCode(a.team)
			if !ok {
				return fmt.Errorf("unknown team %q", a.team)
			}
			return printJSON(cmd.OutOrStdout(), team)
		},
	}
}

func scheduleRange(start, end string, now time.Time) (time.Time, time.Time, error) {
	from := timeutil.StartOfDay(now.In(providers.LeagueLocation()))
	if start != "" {
		parsed, err := schedule.ParseDate(start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	to := from.AddDate(0, 0, scheduleSpanDays)
	if end != "" {
		parsed, err := schedule.ParseDate(end)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}
