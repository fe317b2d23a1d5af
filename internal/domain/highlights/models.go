package highlights

import "time"

// Category is how a highlight is labelled for display.
type Category string

const (
	CategoryRecent   Category = "recent"
	CategoryLegend   Category = "legend"
	CategoryFavorite Category = "favorite"
)

// SearchCategory selects the search phrase and time window used to look for videos.
type SearchCategory string

const (
	SearchRecent    SearchCategory = "recent"
	SearchHighlight SearchCategory = "highlight"
	SearchLegend    SearchCategory = "legend"
)

// SortOrder controls how fetched highlights are ordered.
type SortOrder string

const (
	SortByDate      SortOrder = "date"
	SortByRelevance SortOrder = "relevance"
)

// Highlight is a video card shown to fans. Views and Date are snapshots taken at fetch time.
type Highlight struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoUrl"`
	Date        string    `json:"date"`
	Views       int64     `json:"views"`
	Category    Category  `json:"category"`
	TeamCode    string    `json:"teamCode,omitempty"`
	PublishedAt time.Time `json:"-"`
}

// Result is the highlight surface handed to the UI.
type Result struct {
	Data    []Highlight `json:"data"`
	Error   bool        `json:"error"`
	Message string      `json:"message,omitempty"`
}

// Empty is a successful result with no videos.
func Empty() Result {
	return Result{Data: []Highlight{}}
}

// Failed is a degraded result carrying a user-facing message.
func Failed(message string) Result {
	return Result{Data: []Highlight{}, Error: true, Message: message}
}

// Video is the upstream video metadata needed to build a Highlight.
type Video struct {
	ID          string
	Title       string
	Description string
	Duration    string
	PublishedAt time.Time
	ViewCount   int64
	Thumbnail   string
}

// SearchParams describes one upstream search request.
type SearchParams struct {
	Query          string
	MaxResults     int
	PublishedAfter time.Time
}
