package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	apphighlights "github.com/preston-bernstein/kbo-fan-service/internal/app/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/games"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/records"
)

type nowFunc func() time.Time

// HighlightsService serves highlight lookups.
type HighlightsService interface {
	Highlights(ctx context.Context, req apphighlights.Request) (highlights.Result, error)
}

// RecordsService serves standings and leaderboards.
type RecordsService interface {
	CurrentRankings(ctx context.Context) records.Outcome[[]records.TeamRanking]
	TopBatters(ctx context.Context) records.Outcome[[]records.PlayerStats]
	TopPitchers(ctx context.Context) records.Outcome[[]records.PlayerStats]
	HistoricalRankings(ctx context.Context) records.Outcome[[]records.HistoricalRanking]
}

// ScheduleService serves the game schedule.
type ScheduleService interface {
	Games(ctx context.Context, start, end time.Time, teamCode string) ([]games.Game, error)
}

// Services groups the application services exposed over HTTP.
// Ready reports whether the video provider can serve requests; nil means always ready.
type Services struct {
	Highlights HighlightsService
	Records    RecordsService
	Schedule   ScheduleService
	Ready      func() bool
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	highlights HighlightsService
	records    RecordsService
	schedule   ScheduleService
	ready      func() bool
	logger     *slog.Logger
	now        nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svcs Services, logger *slog.Logger) *Handler {
	return &Handler{
		highlights: svcs.Highlights,
		records:    svcs.Records,
		schedule:   svcs.Schedule,
		ready:      svcs.Ready,
		logger:     logger,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready == nil || h.ready() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, highlights.MessageMissingAPIKey, h.logger)
}
