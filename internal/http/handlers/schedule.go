package handlers

import (
	"errors"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/kbo-fan-service/internal/app/schedule"
	"github.com/preston-bernstein/kbo-fan-service/internal/providers"
	"github.com/preston-bernstein/kbo-fan-service/internal/timeutil"
)

// defaultScheduleSpan is the window served when no end date is given.
const defaultScheduleSpan = 6 * 24 * time.Hour

const invalidDateMessage = "invalid date format (expected YYYY-MM-DD)"

// Schedule serves games between start and end (inclusive), defaulting to the coming week.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()

	start := timeutil.StartOfDay(h.now().In(providers.LeagueLocation()))
	if raw := q.Get("start"); raw != "" {
		parsed, err := schedule.ParseDate(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, invalidDateMessage, h.logger)
			return
		}
		start = parsed
	}
	end := start.Add(defaultScheduleSpan)
	if raw := q.Get("end"); raw != "" {
		parsed, err := schedule.ParseDate(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, invalidDateMessage, h.logger)
			return
		}
		end = parsed
	}

	teamCode := strings.ToUpper(strings.TrimSpace(q.Get("teamCode")))
	out, err := h.schedule.Games(r.Context(), start, end, teamCode)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRange) {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		writeError(w, r, nethttp.StatusBadGateway, "schedule unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}
