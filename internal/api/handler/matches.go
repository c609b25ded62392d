package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// GetTodaysMatches handles GET /matches/today.
func (h *Handler) GetTodaysMatches(w http.ResponseWriter, r *http.Request) {
	matches, cacheHit, err := h.svc.Matches(r.Context(), "")
	if err != nil {
		fail(w, "Error scraping matches", err)
		return
	}
	respond.Results(w, "today", matches, cacheHit)
}

// GetMatchesByDate handles GET /matches/date/{date} with date formatted
// as YYYY-MM-DD.
func (h *Handler) GetMatchesByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	matches, cacheHit, err := h.svc.Matches(r.Context(), date)
	if err != nil {
		fail(w, "Error scraping matches", err)
		return
	}
	respond.Results(w, date, matches, cacheHit)
}
