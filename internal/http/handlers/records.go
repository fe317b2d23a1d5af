package handlers

import nethttp "net/http"

// Rankings serves this season's standings.
func (h *Handler) Rankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.records.CurrentRankings(r.Context()), h.logger)
}

// Batters serves the batting leaders.
func (h *Handler) Batters(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.records.TopBatters(r.Context()), h.logger)
}

// Pitchers serves the pitching leaders.
func (h *Handler) Pitchers(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.records.TopPitchers(r.Context()), h.logger)
}

// History serves final standings of recent seasons.
func (h *Handler) History(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.records.HistoricalRankings(r.Context()), h.logger)
}
