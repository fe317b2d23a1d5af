package fixture

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var rawData []byte

type dataset struct {
	Standings []rankingRow `yaml:"standings"`
	Batters   []batterRow  `yaml:"batters"`
	Pitchers  []pitcherRow `yaml:"pitchers"`
	History   []seasonRow  `yaml:"history"`
	Videos    []videoRow   `yaml:"videos"`
	Schedule  []gameRow    `yaml:"schedule"`
}

type rankingRow struct {
	Team       string  `yaml:"team"`
	Games      int     `yaml:"games"`
	Wins       int     `yaml:"wins"`
	Losses     int     `yaml:"losses"`
	Draws      int     `yaml:"draws"`
	WinRate    float64 `yaml:"winRate"`
	GameBehind float64 `yaml:"gameBehind"`
}

type batterRow struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Team     string  `yaml:"team"`
	Position string  `yaml:"position"`
	Games    int     `yaml:"games"`
	Average  float64 `yaml:"average"`
	HomeRuns int     `yaml:"homeRuns"`
	RBIs     int     `yaml:"rbis"`
}

type pitcherRow struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Team       string  `yaml:"team"`
	Games      int     `yaml:"games"`
	ERA        float64 `yaml:"era"`
	Wins       int     `yaml:"wins"`
	Saves      int     `yaml:"saves"`
	Strikeouts int     `yaml:"strikeouts"`
}

type seasonRow struct {
	Year     int          `yaml:"year"`
	Champion string       `yaml:"champion"`
	Rankings []rankingRow `yaml:"rankings"`
}

type videoRow struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"`
	AgeDays     int    `yaml:"ageDays"`
	Views       int64  `yaml:"views"`
}

type gameRow struct {
	ID        string `yaml:"id"`
	DayOffset int    `yaml:"dayOffset"`
	Time      string `yaml:"time"`
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	Stadium   string `yaml:"stadium"`
	Status    string `yaml:"status"`
	HomeScore *int   `yaml:"homeScore"`
	AwayScore *int   `yaml:"awayScore"`
}

func parseDataset(raw []byte) (dataset, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return dataset{}, fmt.Errorf("parse fixture data: %w", err)
	}
	return ds, nil
}

func mustLoad() dataset {
	ds, err := parseDataset(rawData)
	if err != nil {
		panic(err)
	}
	return ds
}
