package youtube

import "time"

const (
	providerName       = "youtube"
	defaultBaseURL     = "https://www.googleapis.com/youtube/v3"
	defaultHTTPTimeout = 10 * time.Second
	watchURLPrefix     = "https://www.youtube.com/watch?v="
	// Largest page the search endpoint accepts.
	maxSearchResults = 50
	errorBodyLimit   = 2048
)

// WatchURL returns the public watch page for a video ID.
func WatchURL(id string) string {
	return watchURLPrefix + id
}
