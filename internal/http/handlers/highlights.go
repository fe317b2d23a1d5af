package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	apphighlights "github.com/preston-bernstein/kbo-fan-service/internal/app/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/domain/highlights"
	"github.com/preston-bernstein/kbo-fan-service/internal/logging"
)

const maxHighlightCount = 50

// Highlights serves highlight clips for an optional team, category and sort order.
// An absent sortOrder means relevance. A missing API key is a server configuration problem and answers 500.
func (h *Handler) Highlights(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	req := apphighlights.Request{
		TeamCode:  strings.ToUpper(strings.TrimSpace(q.Get("teamCode"))),
		Category:  highlights.SearchCategory(q.Get("category")),
		SortOrder: highlights.SortOrder(q.Get("sortOrder")),
	}
	if req.SortOrder == "" {
		req.SortOrder = highlights.SortByRelevance
	}
	if raw := q.Get("maxResults"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid maxResults (expected a positive integer)", h.logger)
			return
		}
		req.Count = min(n, maxHighlightCount)
	}

	result, err := h.highlights.Highlights(r.Context(), req)
	if err != nil {
		if errors.Is(err, highlights.ErrMissingAPIKey) {
			writeError(w, r, nethttp.StatusInternalServerError, highlights.MessageMissingAPIKey, h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, highlights.MessageFetchFailed, h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("served highlights",
			slog.String(logging.FieldTeam, req.TeamCode),
			slog.String(logging.FieldCategory, string(req.Category)),
			slog.Int(logging.FieldCount, len(result.Data)),
			slog.Bool("error", result.Error),
		)
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}
