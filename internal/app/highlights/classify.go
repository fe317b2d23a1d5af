package highlights

import (
	"regexp"
	"strconv"
	"strings"

	domain "github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
)

const (
	shortsKeyword     = "shorts"
	maxShortDurationS = 60
)

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO-8601 duration such as PT1M30S to seconds.
// Missing components count as zero; unparseable input yields 0.
func ParseDuration(raw string) int {
	m := durationPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	return atoi(m[1])*3600 + atoi(m[2])*60 + atoi(m[3])
}

// IsShort reports whether a video is short-form content: its title or description mentions
// "shorts" in any case, or it runs between 1 and 60 seconds. Zero-length videos are only caught
// by the keyword rule.
func IsShort(v domain.Video) bool {
	if containsFold(v.Title, shortsKeyword) || containsFold(v.Description, shortsKeyword) {
		return true
	}
	seconds := ParseDuration(v.Duration)
	return seconds > 0 && seconds <= maxShortDurationS
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
