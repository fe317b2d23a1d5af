package records

import "github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"

// TeamRanking is one row of a standings table. GameBehind is 0 for the leader.
type TeamRanking struct {
	Rank       int        `json:"rank"`
	Team       teams.Team `json:"team"`
	Games      int        `json:"games"`
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	Draws      int        `json:"draws"`
	WinRate    float64    `json:"winRate"`
	GameBehind float64    `json:"gameBehind"`
}

// StatKind selects which stat line a PlayerStats carries.
type StatKind string

const (
	KindBatting  StatKind = "batting"
	KindPitching StatKind = "pitching"
)

// BattingLine holds leaderboard batting numbers.
type BattingLine struct {
	BattingAverage float64 `json:"battingAverage"`
	HomeRuns       int     `json:"homeRuns"`
	RBIs           int     `json:"rbis"`
}

// PitchingLine holds leaderboard pitching numbers.
type PitchingLine struct {
	ERA        float64 `json:"era"`
	Wins       int     `json:"wins"`
	Saves      int     `json:"saves"`
	Strikeouts int     `json:"strikeouts"`
}

// PlayerStats is a leaderboard entry. Exactly one of Batting or Pitching is set, matching Kind;
// build values with NewBatter or NewPitcher.
type PlayerStats struct {
	PlayerID string        `json:"playerId"`
	Name     string        `json:"name"`
	Team     teams.Team    `json:"team"`
	Position string        `json:"position"`
	Games    int           `json:"games"`
	Kind     StatKind      `json:"kind"`
	Batting  *BattingLine  `json:"batting,omitempty"`
	Pitching *PitchingLine `json:"pitching,omitempty"`
}

// PlayerInfo carries the fields shared by every leaderboard entry.
type PlayerInfo struct {
	PlayerID string
	Name     string
	Team     teams.Team
	Position string
	Games    int
}

// NewBatter builds a batting leaderboard entry.
func NewBatter(info PlayerInfo, line BattingLine) PlayerStats {
	return PlayerStats{
		PlayerID: info.PlayerID,
		Name:     info.Name,
		Team:     info.Team,
		Position: info.Position,
		Games:    info.Games,
		Kind:     KindBatting,
		Batting:  &line,
	}
}

// NewPitcher builds a pitching leaderboard entry.
func NewPitcher(info PlayerInfo, line PitchingLine) PlayerStats {
	return PlayerStats{
		PlayerID: info.PlayerID,
		Name:     info.Name,
		Team:     info.Team,
		Position: info.Position,
		Games:    info.Games,
		Kind:     KindPitching,
		Pitching: &line,
	}
}

// HistoricalRanking is the final standings of one season.
type HistoricalRanking struct {
	Year     int           `json:"year"`
	Rankings []TeamRanking `json:"rankings"`
	Champion teams.Team    `json:"champion"`
}

// Outcome wraps records data with whether it came from the static fallback set.
type Outcome[T any] struct {
	Data     T    `json:"data"`
	Fallback bool `json:"fallback"`
}

// Live wraps upstream data.
func Live[T any](data T) Outcome[T] {
	return Outcome[T]{Data: data}
}

// Unavailable wraps fallback data served because upstream could not be used.
func Unavailable[T any](fallback T) Outcome[T] {
	return Outcome[T]{Data: fallback, Fallback: true}
}
