package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// SearchStaff handles GET /staff/search.
func (h *Handler) SearchStaff(w http.ResponseWriter, r *http.Request) {
	query, ok := searchQuery(w, r)
	if !ok {
		return
	}

	staff, cacheHit, err := h.svc.SearchStaff(r.Context(), query)
	if err != nil {
		fail(w, "Error searching staff", err)
		return
	}
	respond.Results(w, query, staff, cacheHit)
}

// GetStaffProfile handles GET /staff/{staffID}/profile.
func (h *Handler) GetStaffProfile(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if !numericID(w, staffID, "Staff ID") {
		return
	}

	profile, cacheHit, err := h.svc.StaffProfile(r.Context(), staffID)
	if err != nil {
		fail(w, "Error fetching staff profile", err)
		return
	}
	respond.Result(w, staffID, profile, cacheHit)
}
