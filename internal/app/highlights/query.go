package highlights

import (
	"time"

	domain "github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
)

const (
	genericHighlightPhrase = "KBO 하이라이트"
	genericLegendPhrase    = "KBO 레전드 영상"
	highlightSuffix        = " 하이라이트"
	legendSuffix           = " 레전드 영상"
)

// Query is the upstream search derived from a category and team.
// A zero PublishedAfter means no lower bound.
type Query struct {
	Phrase         string
	PublishedAfter time.Time
}

// BuildQuery derives the search phrase and time window. It does no I/O.
func BuildQuery(category domain.SearchCategory, teamName string, now time.Time) Query {
	return Query{
		Phrase:         phraseFor(category, teamName),
		PublishedAfter: windowStart(category, now),
	}
}

func phraseFor(category domain.SearchCategory, teamName string) string {
	switch category {
	case domain.SearchHighlight:
		if teamName != "" {
			return teamName + highlightSuffix
		}
		return genericHighlightPhrase
	case domain.SearchLegend:
		if teamName != "" {
			return teamName + legendSuffix
		}
		return genericLegendPhrase
	default:
		if teamName != "" {
			return teamName
		}
		return genericHighlightPhrase
	}
}

func windowStart(category domain.SearchCategory, now time.Time) time.Time {
	switch category {
	case domain.SearchRecent:
		return now.AddDate(0, -1, 0)
	case domain.SearchLegend:
		return time.Time{}
	default:
		return now.AddDate(-1, 0, 0)
	}
}
