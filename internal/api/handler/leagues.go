package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// SearchLeagues handles GET /leagues/search.
func (h *Handler) SearchLeagues(w http.ResponseWriter, r *http.Request) {
	query, ok := searchQuery(w, r)
	if !ok {
		return
	}

	leagues, cacheHit, err := h.svc.SearchLeagues(r.Context(), query)
	if err != nil {
		fail(w, "Error searching leagues", err)
		return
	}
	respond.Results(w, query, leagues, cacheHit)
}

// GetLeagueClubs handles GET /leagues/{leagueCode}/clubs.
func (h *Handler) GetLeagueClubs(w http.ResponseWriter, r *http.Request) {
	leagueCode := chi.URLParam(r, "leagueCode")

	clubs, cacheHit, err := h.svc.LeagueClubs(r.Context(), leagueCode)
	if err != nil {
		fail(w, "Error fetching league clubs", err)
		return
	}
	respond.Results(w, leagueCode, clubs, cacheHit)
}

// GetLeagueTable handles GET /leagues/{leagueCode}/table.
func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	leagueCode := chi.URLParam(r, "leagueCode")
	season, ok := seasonParam(w, r)
	if !ok {
		return
	}

	rows, cacheHit, err := h.svc.LeagueTable(r.Context(), leagueCode, season)
	if err != nil {
		fail(w, "Error fetching league table", err)
		return
	}
	respond.SeasonResults(w, leagueCode, season, rows, cacheHit)
}

// GetTopScorers handles GET /leagues/{leagueCode}/scorers.
func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	leagueCode := chi.URLParam(r, "leagueCode")
	season, ok := seasonParam(w, r)
	if !ok {
		return
	}

	scorers, cacheHit, err := h.svc.TopScorers(r.Context(), leagueCode, season)
	if err != nil {
		fail(w, "Error fetching top scorers", err)
		return
	}
	respond.SeasonResults(w, leagueCode, season, scorers, cacheHit)
}

// GetLeagueTransfers handles GET /leagues/{leagueCode}/transfers.
func (h *Handler) GetLeagueTransfers(w http.ResponseWriter, r *http.Request) {
	leagueCode := chi.URLParam(r, "leagueCode")
	season, ok := seasonParam(w, r)
	if !ok {
		return
	}

	teams, cacheHit, err := h.svc.LeagueTransfers(r.Context(), leagueCode, season)
	if err != nil {
		fail(w, "Error fetching league transfers", err)
		return
	}
	respond.SeasonResults(w, leagueCode, season, teams, cacheHit)
}
