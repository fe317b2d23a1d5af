package teams

import "strings"

var leagueTeams = []Team{
	{Code: "SSG", Name: "SSG 랜더스", Color: "#E41E2B", LogoURL: "/teams/ssg.svg"},
	{Code: "LG", Name: "LG 트윈스", Color: "#C30452", LogoURL: "/teams/lg.svg"},
	{Code: "KT", Name: "KT 위즈", Color: "#FF6600", LogoURL: "/teams/kt.svg"},
	{Code: "KIA", Name: "KIA 타이거즈", Color: "#EA0029", LogoURL: "/teams/kia.svg"},
	{Code: "NC", Name: "NC 다이노스", Color: "#315288", LogoURL: "/teams/nc.svg"},
	{Code: "DOOSAN", Name: "두산 베어스", Color: "#131230", LogoURL: "/teams/doosan.svg"},
	{Code: "SAMSUNG", Name: "삼성 라이온즈", Color: "#074CA1", LogoURL: "/teams/samsung.svg"},
	{Code: "LOTTE", Name: "롯데 자이언츠", Color: "#041E42", LogoURL: "/teams/lotte.svg"},
	{Code: "KIWOOM", Name: "키움 히어로즈", Color: "#570514", LogoURL: "/teams/kiwoom.svg"},
	{Code: "HANWHA", Name: "한화 이글스", Color: "#FF6600", LogoURL: "/teams/hanwha.svg"},
}

// All returns a copy of the league teams in directory order.
func All() []Team {
	out := make([]Team, len(leagueTeams))
	copy(out, leagueTeams)
	return out
}

// ByCode looks up a team by its code (case-insensitive).
func ByCode(code string) (Team, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Team{}, false
	}
	for _, t := range leagueTeams {
		if strings.EqualFold(t.Code, code) {
			return t, true
		}
	}
	return Team{}, false
}

// DisplayName resolves a team code to its display name, or "" when unknown.
func DisplayName(code string) string {
	if t, ok := ByCode(code); ok {
		return t.Name
	}
	return ""
}

// MatchName finds the first team whose display name contains the upstream name.
// Upstream feeds use short names ("KIA", "두산"), so unmatched names fall back to the first team.
func MatchName(name string) Team {
	name = strings.TrimSpace(name)
	for _, t := range leagueTeams {
		if strings.Contains(t.Name, name) {
			return t
		}
	}
	return leagueTeams[0]
}
