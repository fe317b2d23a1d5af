package youtube

import (
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
)

func mapVideo(item videoItem) highlights.Video {
	return highlights.Video{
		ID:          item.ID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Duration:    item.ContentDetails.Duration,
		PublishedAt: parsePublishedAt(item.Snippet.PublishedAt),
		ViewCount:   parseViewCount(item.Statistics.ViewCount),
		Thumbnail:   pickThumbnail(item.Snippet.Thumbnails),
	}
}

func pickThumbnail(t thumbnails) string {
	if t.Medium != nil && t.Medium.URL != "" {
		return t.Medium.URL
	}
	if t.Default != nil {
		return t.Default.URL
	}
	return ""
}

func parseViewCount(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parsePublishedAt(raw string) time.Time {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}
