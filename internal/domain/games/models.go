package games

import "github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"

// GameStatus is the lifecycle state shown on the schedule.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinished  GameStatus = "finished"
)

// Game is one scheduled league game.
type Game struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Home      teams.Team `json:"home"`
	Away      teams.Team `json:"away"`
	Stadium   string     `json:"stadium"`
	Status    GameStatus `json:"status"`
	HomeScore *int       `json:"homeScore,omitempty"`
	AwayScore *int       `json:"awayScore,omitempty"`
}

// Involves reports whether the team code plays in the game.
func (g Game) Involves(code string) bool {
	return g.Home.Code == code || g.Away.Code == code
}

// FilterByTeam keeps games the team plays in. An empty code keeps everything.
func FilterByTeam(items []Game, code string) []Game {
	if code == "" {
		return items
	}
	out := make([]Game, 0, len(items))
	for _, g := range items {
		if g.Involves(code) {
			out = append(out, g)
		}
	}
	return out
}
