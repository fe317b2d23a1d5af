package handlers

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/kbo-fan-service/internal/domain/teams"
)

// Teams lists the league directory.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, teams.All(), h.logger)
}

// TeamByCode returns one team.
func (h *Handler) TeamByCode(w nethttp.ResponseWriter, r *nethttp.Request) {
	team, ok := teams.ByCode(chi.URLParam(r, "code"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}
