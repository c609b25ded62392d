// Package respond provides the shared JSON envelope helpers for API
// handlers. Every data endpoint answers with the same shape: the echoed
// query, the payload under "results" (lists) or "result" (single
// records), and whether the response was served from cache.
package respond

import (
	"encoding/json"
	"net/http"
)

// Results writes a list-valued success envelope.
func Results(w http.ResponseWriter, query interface{}, results interface{}, cacheHit bool) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":     query,
		"results":   results,
		"cache_hit": cacheHit,
	})
}

// Result writes a single-record success envelope.
func Result(w http.ResponseWriter, query interface{}, result interface{}, cacheHit bool) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":     query,
		"result":    result,
		"cache_hit": cacheHit,
	})
}

// SeasonResults writes a list-valued envelope that also echoes the
// season the caller asked about.
func SeasonResults(w http.ResponseWriter, query interface{}, season string, results interface{}, cacheHit bool) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":     query,
		"season":    season,
		"results":   results,
		"cache_hit": cacheHit,
	})
}

// Error writes the error envelope used by every failure path.
func Error(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	writeJSON(w, status, map[string]interface{}{"detail": detail})
}

// JSON writes an arbitrary value, used by the meta endpoints that do not
// follow the envelope contract.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	writeJSON(w, status, v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
