package handler

import (
	"net/http"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// GetCountries handles GET /stats/countries: the bundled country lookup.
// Unlike the scraped endpoints this never reaches upstream, so it always
// reports a cache hit.
func (h *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	respond.Results(w, query, h.countries.Search(query), true)
}
