package highlights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/kbo-fan-service/internal/cache"
	domain "github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
)

// errDegraded keeps failed results out of the cache.
var errDegraded = errors.New("degraded highlight result")

// Service serves highlights through the shared cache.
type Service struct {
	fetcher      *Fetcher
	cache        *cache.Cache
	defaultCount int
	logger       *slog.Logger
}

// NewService constructs a Service. A non-positive defaultCount uses DefaultCount.
func NewService(fetcher *Fetcher, c *cache.Cache, defaultCount int, logger *slog.Logger) *Service {
	if defaultCount <= 0 {
		defaultCount = DefaultCount
	}
	return &Service{
		fetcher:      fetcher,
		cache:        c,
		defaultCount: defaultCount,
		logger:       logger,
	}
}

// Highlights returns cached highlights for the request, fetching on a miss.
// Only successful results are cached.
func (s *Service) Highlights(ctx context.Context, req Request) (domain.Result, error) {
	if req.Count <= 0 {
		req.Count = s.defaultCount
	}

	result, err := cache.GetOrLoad(ctx, s.cache, cacheKey(req), func(ctx context.Context) (domain.Result, error) {
		res, err := s.fetcher.Fetch(ctx, req)
		if err != nil {
			return res, err
		}
		if res.Error {
			return res, errDegraded
		}
		return res, nil
	})
	if errors.Is(err, errDegraded) {
		return result, nil
	}
	return result, err
}

func cacheKey(req Request) string {
	return fmt.Sprintf("highlights:%s:%s:%s:%d", req.TeamCode, req.Category, req.SortOrder, req.Count)
}
