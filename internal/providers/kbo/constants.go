package kbo

import "time"

const (
	providerName       = "kbo"
	defaultBaseURL     = "https://www.koreabaseball.com/ws"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512

	leagueID      = "1"
	regularSeason = "0"

	sortByAverage = "HRA"
	sortByERA     = "ERA"

	statusFinished = "종료"
	statusLive     = "경기중"

	pitcherPosition = "P"
)
