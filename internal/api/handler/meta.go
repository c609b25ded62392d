package handler

import (
	"net/http"

	"github.com/tommhe14/tmkt-api/internal/api/respond"
)

// The meta endpoints answer the machine traffic every public host
// receives: crawlers, Apple/Android link probes and Private Relay
// configuration checks. None of them carry API data.

// RobotsTxt blocks all crawlers; this is an API service, not a site to
// index.
func (h *Handler) RobotsTxt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nDisallow: /\n"))
}

// Favicon answers favicon probes with an empty response.
func (h *Handler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Sitemap reports that no sitemap exists.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("No sitemap available for API service"))
}

// AppleAppSiteAssociation answers Universal Links probes with an empty
// app list.
func (h *Handler) AppleAppSiteAssociation(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"applinks": map[string]interface{}{
			"apps":    []string{},
			"details": []string{},
		},
	})
}

// TrafficAdvice allows iCloud Private Relay for all agents.
func (h *Handler) TrafficAdvice(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"user-agent": []map[string]interface{}{
			{
				"prefixes":           []string{"*"},
				"ip-ranges":          []string{},
				"skip-private-relay": false,
			},
		},
	})
}

// AssetLinks answers Android Asset Links probes with an empty list.
func (h *Handler) AssetLinks(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, []interface{}{})
}
