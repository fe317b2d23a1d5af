package kbo

import (
	"strconv"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
)

func mapRanking(index int, row teamRankRow) records.TeamRanking {
	return records.TeamRanking{
		Rank:       index + 1,
		Team:       teams.MatchName(string(row.TeamName)),
		Games:      toInt(row.Games),
		Wins:       toInt(row.Wins),
		Losses:     toInt(row.Losses),
		Draws:      toInt(row.Draws),
		WinRate:    toFloat(row.WinRate),
		GameBehind: toFloat(row.GameBehind),
	}
}

func mapBatter(row batterRow) records.PlayerStats {
	return records.NewBatter(records.PlayerInfo{
		PlayerID: string(row.PlayerID),
		Name:     string(row.PlayerName),
		Team:     teams.MatchName(string(row.TeamName)),
		Position: string(row.Position),
		Games:    toInt(row.Games),
	}, records.BattingLine{
		BattingAverage: toFloat(row.BattingAverage),
		HomeRuns:       toInt(row.HomeRuns),
		RBIs:           toInt(row.RBIs),
	})
}

func mapPitcher(row pitcherRow) records.PlayerStats {
	return records.NewPitcher(records.PlayerInfo{
		PlayerID: string(row.PlayerID),
		Name:     string(row.PlayerName),
		Team:     teams.MatchName(string(row.TeamName)),
		Position: pitcherPosition,
		Games:    toInt(row.Games),
	}, records.PitchingLine{
		ERA:        toFloat(row.ERA),
		Wins:       toInt(row.Wins),
		Saves:      toInt(row.Saves),
		Strikeouts: toInt(row.Strikeouts),
	})
}

func mapGame(row scheduleRow) games.Game {
	return games.Game{
		ID:        string(row.GameID),
		Date:      string(row.GameDate),
		Time:      string(row.GameTime),
		Home:      teams.MatchName(string(row.HomeTeamName)),
		Away:      teams.MatchName(string(row.AwayTeamName)),
		Stadium:   string(row.Stadium),
		Status:    mapStatus(string(row.GameStatus)),
		HomeScore: optionalInt(row.HomeScore),
		AwayScore: optionalInt(row.AwayScore),
	}
}

func mapStatus(status string) games.GameStatus {
	switch status {
	case statusFinished:
		return games.StatusFinished
	case statusLive:
		return games.StatusLive
	default:
		return games.StatusScheduled
	}
}

// toInt and toFloat map unparseable values (including "-") to 0.
func toInt(v flexString) int {
	n, err := strconv.Atoi(string(v))
	if err != nil {
		if f, ferr := strconv.ParseFloat(string(v), 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return n
}

func toFloat(v flexString) float64 {
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func optionalInt(v flexString) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return nil
	}
	return &n
}
