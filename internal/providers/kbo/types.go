package kbo

import (
	"bytes"
	"encoding/json"
	"strings"
)

// flexString accepts both JSON strings and numbers; the league service is not consistent.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type rankRequest struct {
	LeagueID string `json:"leId"`
	SeriesID string `json:"srId"`
	Date     string `json:"date"`
	SortKey  string `json:"sortKey,omitempty"`
}

type scheduleRequest struct {
	LeagueID  string `json:"leId"`
	SeriesID  string `json:"srId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type teamRankRow struct {
	TeamName   flexString `json:"teamName"`
	Games      flexString `json:"game"`
	Wins       flexString `json:"win"`
	Losses     flexString `json:"lose"`
	Draws      flexString `json:"drawn"`
	WinRate    flexString `json:"wra"`
	GameBehind flexString `json:"gb"`
}

type batterRow struct {
	PlayerID       flexString `json:"pcode"`
	PlayerName     flexString `json:"playerName"`
	TeamName       flexString `json:"teamName"`
	Position       flexString `json:"pos"`
	Games          flexString `json:"gamenum"`
	BattingAverage flexString `json:"hra"`
	HomeRuns       flexString `json:"hr"`
	RBIs           flexString `json:"rbi"`
}

type pitcherRow struct {
	PlayerID   flexString `json:"pcode"`
	PlayerName flexString `json:"playerName"`
	TeamName   flexString `json:"teamName"`
	Games      flexString `json:"gamenum"`
	ERA        flexString `json:"era"`
	Wins       flexString `json:"w"`
	Saves      flexString `json:"sv"`
	Strikeouts flexString `json:"so"`
}

type scheduleRow struct {
	GameID       flexString `json:"gameId"`
	GameDate     flexString `json:"gameDate"`
	GameTime     flexString `json:"gameTime"`
	HomeTeamName flexString `json:"homeTeamName"`
	AwayTeamName flexString `json:"awayTeamName"`
	Stadium      flexString `json:"stadium"`
	GameStatus   flexString `json:"gameStatus"`
	HomeScore    flexString `json:"homeScore"`
	AwayScore    flexString `json:"awayScore"`
}
