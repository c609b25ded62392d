package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// SearchClubs handles GET /clubs/search.
// @Summary Search clubs by name
// @Tags clubs
// @Param query query string true "Club name, at least 2 characters"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /clubs/search [get]
func (h *Handler) SearchClubs(w http.ResponseWriter, r *http.Request) {
	query, ok := searchQuery(w, r)
	if !ok {
		return
	}

	clubs, cacheHit, err := h.svc.SearchClubs(r.Context(), query)
	if err != nil {
		fail(w, "Error searching clubs", err)
		return
	}
	respond.Results(w, query, clubs, cacheHit)
}

// GetClubProfile handles GET /clubs/{clubID}.
func (h *Handler) GetClubProfile(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if !numericID(w, clubID, "Club ID") {
		return
	}

	club, cacheHit, err := h.svc.ClubProfile(r.Context(), clubID)
	if err != nil {
		fail(w, "Error returning club profile", err)
		return
	}
	respond.Result(w, clubID, club, cacheHit)
}

// GetClubSquad handles GET /clubs/{clubID}/squad.
func (h *Handler) GetClubSquad(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if !numericID(w, clubID, "Club ID") {
		return
	}

	squad, cacheHit, err := h.svc.ClubSquad(r.Context(), clubID)
	if err != nil {
		fail(w, "Error fetching club squad", err)
		return
	}
	respond.Results(w, clubID, squad, cacheHit)
}

// GetClubTransfers handles GET /clubs/{clubID}/transfers.
func (h *Handler) GetClubTransfers(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if !numericID(w, clubID, "Club ID") {
		return
	}
	season, ok := seasonParam(w, r)
	if !ok {
		return
	}

	transfers, cacheHit, err := h.svc.ClubTransfers(r.Context(), clubID, season)
	if err != nil {
		fail(w, "Error fetching club transfers", err)
		return
	}
	respond.SeasonResults(w, clubID, season, transfers, cacheHit)
}

// GetClubFixtures handles GET /clubs/{clubID}/fixtures.
func (h *Handler) GetClubFixtures(w http.ResponseWriter, r *http.Request) {
	clubID := chi.URLParam(r, "clubID")
	if !numericID(w, clubID, "Club ID") {
		return
	}
	season, ok := seasonParam(w, r)
	if !ok {
		return
	}

	fixtures, cacheHit, err := h.svc.ClubFixtures(r.Context(), clubID, season)
	if err != nil {
		fail(w, "Error fetching club fixtures", err)
		return
	}
	respond.SeasonResults(w, clubID, season, fixtures, cacheHit)
}
