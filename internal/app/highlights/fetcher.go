package highlights

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	domain "github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
	"github.com/preston-bernstein/kbo-fan-service/internal/logging"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers/youtube"
)

const (
	// DefaultCount is the number of highlights returned when the caller does not ask for a count.
	DefaultCount = 10
	// Search results are over-fetched so enough remain after shorts are dropped.
	overFetchFactor = 3
	maxSearchSize   = 50
	recentWindow    = 7 * 24 * time.Hour
	dateLayout      = "2006-01-02"
)

// Request selects which highlights to fetch.
type Request struct {
	TeamCode  string
	Category  domain.SearchCategory
	SortOrder domain.SortOrder
	Count     int
}

// Fetcher runs the search, detail, classify, sort and truncate pipeline against a VideoProvider.
type Fetcher struct {
	videos providers.VideoProvider
	now    func() time.Time
	logger *slog.Logger
}

// NewFetcher constructs a Fetcher.
func NewFetcher(videos providers.VideoProvider, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		videos: videos,
		now:    time.Now,
		logger: logger,
	}
}

// Fetch returns at most req.Count highlights. Upstream failures become a Result with Error set;
// the only error returned is domain.ErrMissingAPIKey. No call is retried.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (domain.Result, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}
	now := f.now()

	query := BuildQuery(req.Category, teams.DisplayName(req.TeamCode), now)

	ids, err := f.videos.SearchVideos(ctx, domain.SearchParams{
		Query:          query.Phrase,
		MaxResults:     overFetchSize(count),
		PublishedAfter: query.PublishedAfter,
	})
	if err != nil {
		return f.failure(ctx, "search", req, err)
	}
	if len(ids) == 0 {
		return domain.Empty(), nil
	}

	videos, err := f.videos.VideoDetails(ctx, ids)
	if err != nil {
		return f.failure(ctx, "videos", req, err)
	}

	items := make([]domain.Highlight, 0, len(videos))
	for _, v := range videos {
		if IsShort(v) {
			continue
		}
		items = append(items, toHighlight(v, req.TeamCode, now))
	}

	sortHighlights(items, req.SortOrder)
	if len(items) > count {
		items = items[:count]
	}
	return domain.Result{Data: items}, nil
}

func (f *Fetcher) failure(ctx context.Context, stage string, req Request, err error) (domain.Result, error) {
	if errors.Is(err, domain.ErrMissingAPIKey) {
		return domain.Result{}, err
	}

	logger := logging.FromContext(ctx, f.logger)
	logging.Warn(logger, "highlight fetch failed",
		slog.String(logging.FieldOperation, stage),
		slog.String(logging.FieldTeam, req.TeamCode),
		slog.String(logging.FieldCategory, string(req.Category)),
		slog.Any("error", err),
	)

	if providers.IsForbidden(err) {
		return domain.Failed(domain.MessageQuota), nil
	}
	return domain.Failed(domain.MessageFetchFailed), nil
}

func overFetchSize(count int) int {
	n := count * overFetchFactor
	if n > maxSearchSize {
		return maxSearchSize
	}
	return n
}

func toHighlight(v domain.Video, teamCode string, now time.Time) domain.Highlight {
	category := domain.CategoryLegend
	if !v.PublishedAt.IsZero() && now.Sub(v.PublishedAt) < recentWindow {
		category = domain.CategoryRecent
	}

	date := ""
	if !v.PublishedAt.IsZero() {
		date = v.PublishedAt.UTC().Format(dateLayout)
	}

	return domain.Highlight{
		ID:          v.ID,
		Title:       v.Title,
		Thumbnail:   v.Thumbnail,
		VideoURL:    youtube.WatchURL(v.ID),
		Date:        date,
		Views:       v.ViewCount,
		Category:    category,
		TeamCode:    teamCode,
		PublishedAt: v.PublishedAt,
	}
}

func sortHighlights(items []domain.Highlight, order domain.SortOrder) {
	switch order {
	case domain.SortByDate:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PublishedAt.After(items[j].PublishedAt)
		})
	case domain.SortByRelevance:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Views > items[j].Views
		})
	}
}
