package handler

import (
	"net/http"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// GetLatestTransfers handles GET /transfers: the sitewide feed of recent
// top-league moves. Never served from cache.
func (h *Handler) GetLatestTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, cacheHit, err := h.svc.LatestTransfers(r.Context())
	if err != nil {
		fail(w, "Error fetching latest transfers", err)
		return
	}
	respond.Results(w, "transfers", transfers, cacheHit)
}
