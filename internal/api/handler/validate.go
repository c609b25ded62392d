package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// searchQuery validates the ?query= parameter shared by all search
// endpoints. On failure it writes the 400 response and reports false.
func searchQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	query := r.URL.Query().Get("query")
	if len(query) < 2 {
		respond.Error(w, http.StatusBadRequest, "Query must be at least 2 characters long")
		return "", false
	}
	return query, true
}

// numericID validates a path identifier. Upstream IDs are always decimal
// digits; anything else would be spliced into an upstream URL, so it is
// rejected before any fetch happens.
func numericID(w http.ResponseWriter, id, label string) bool {
	if id == "" || !isDigits(id) {
		respond.Error(w, http.StatusBadRequest, fmt.Sprintf("%s must be numeric", label))
		return false
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// seasonParam reads an optional ?season= year, defaulting to the season
// that started most recently (European seasons roll over in July).
func seasonParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	season := r.URL.Query().Get("season")
	if season == "" {
		return currentSeason(time.Now()), true
	}
	if _, err := strconv.Atoi(season); err != nil {
		respond.Error(w, http.StatusBadRequest, "Season must be a year, e.g. 2024")
		return "", false
	}
	return season, true
}

func currentSeason(now time.Time) string {
	year := now.Year()
	if now.Month() < time.July {
		year--
	}
	return strconv.Itoa(year)
}

// fail writes the 500 error envelope for a scrape or fetch failure.
// Upstream failures, missing pages and layout changes all surface the
// same way; the detail keeps the underlying cause for the caller.
func fail(w http.ResponseWriter, context string, err error) {
	respond.Error(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", context, err))
}
