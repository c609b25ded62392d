package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// SearchPlayers handles GET /players/search.
// @Summary Search players by name
// @Tags players
// @Param query query string true "Player name, at least 2 characters"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /players/search [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query, ok := searchQuery(w, r)
	if !ok {
		return
	}

	players, cacheHit, err := h.svc.SearchPlayers(r.Context(), query)
	if err != nil {
		fail(w, "Error searching players", err)
		return
	}
	respond.Results(w, query, players, cacheHit)
}

// GetPlayerProfile handles GET /players/{playerID}.
// @Summary Player profile
// @Tags players
// @Param playerID path string true "Numeric player ID"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if !numericID(w, playerID, "Player ID") {
		return
	}

	profile, cacheHit, err := h.svc.PlayerProfile(r.Context(), playerID)
	if err != nil {
		fail(w, "Error fetching player profile", err)
		return
	}
	respond.Result(w, playerID, profile, cacheHit)
}

// GetPlayerStats handles GET /players/{playerID}/stats. An absent season
// selects the all-time aggregate.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if !numericID(w, playerID, "Player ID") {
		return
	}
	season := r.URL.Query().Get("season")

	stats, cacheHit, err := h.svc.PlayerStats(r.Context(), playerID, season)
	if err != nil {
		fail(w, "Error fetching player stats", err)
		return
	}
	respond.Result(w, playerID, stats, cacheHit)
}

// GetPlayerTransfers handles GET /players/{playerID}/transfers.
func (h *Handler) GetPlayerTransfers(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if !numericID(w, playerID, "Player ID") {
		return
	}

	history, cacheHit, err := h.svc.PlayerTransfers(r.Context(), playerID)
	if err != nil {
		fail(w, "Error fetching player transfers", err)
		return
	}
	respond.Result(w, playerID, history, cacheHit)
}

// GetPlayerInjuries handles GET /players/{playerID}/injuries.
func (h *Handler) GetPlayerInjuries(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if !numericID(w, playerID, "Player ID") {
		return
	}

	injuries, cacheHit, err := h.svc.PlayerInjuries(r.Context(), playerID)
	if err != nil {
		fail(w, "Error fetching player injuries", err)
		return
	}
	respond.Results(w, playerID, injuries, cacheHit)
}
