package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/tommhe14/tmkt-api/internal/config"
	"github.com/tommhe14/tmkt-api/internal/store"
)

// testRouter mounts the handlers with a nil service. Only requests that
// fail validation (and the endpoints that never touch upstream) are safe
// to send through it.
func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	countries, err := store.LoadCountries()
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)

	h := New(nil, countries, cfg)

	r := chi.NewRouter()
	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)
	r.Get("/robots.txt", h.RobotsTxt)
	r.Get("/favicon.ico", h.Favicon)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/.well-known/traffic-advice", h.TrafficAdvice)
	r.Get("/.well-known/assetlinks.json", h.AssetLinks)
	r.Get("/apple-app-site-association", h.AppleAppSiteAssociation)
	r.Get("/players/search", h.SearchPlayers)
	r.Get("/players/{playerID}", h.GetPlayerProfile)
	r.Get("/players/{playerID}/stats", h.GetPlayerStats)
	r.Get("/clubs/search", h.SearchClubs)
	r.Get("/clubs/{clubID}/transfers", h.GetClubTransfers)
	r.Get("/staff/{staffID}/profile", h.GetStaffProfile)
	r.Get("/matches/date/{date}", h.GetMatchesByDate)
	r.Get("/stats/countries", h.GetCountries)
	return r
}

func do(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestRootInfo(t *testing.T) {
	rec := do(t, testRouter(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Transfermarkt API", body["name"])
	require.Equal(t, "running", body["status"])
	require.Equal(t, "/docs/", body["docs"])
}

func TestHealthCheck(t *testing.T) {
	rec := do(t, testRouter(t), "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body["status"])
	require.NotEmpty(t, body["timestamp"])
}

func TestSearchValidation(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		name string
		path string
	}{
		{"players missing query", "/players/search"},
		{"players short query", "/players/search?query=x"},
		{"clubs short query", "/clubs/search?query=m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, r, tc.path)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "at least 2 characters")
		})
	}
}

func TestNonNumericIDsRejected(t *testing.T) {
	r := testRouter(t)

	cases := []struct {
		path  string
		label string
	}{
		{"/players/haaland", "Player ID"},
		{"/players/12x/stats", "Player ID"},
		{"/clubs/arsenal/transfers", "Club ID"},
		{"/staff/pep/profile", "Staff ID"},
	}
	for _, tc := range cases {
		rec := do(t, r, tc.path)
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		require.Contains(t, rec.Body.String(), tc.label+" must be numeric")
	}
}

func TestMatchDateValidation(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{
		"/matches/date/tomorrow",
		"/matches/date/2025-13-01",
		"/matches/date/01-08-2025",
	} {
		rec := do(t, r, path)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		require.Contains(t, rec.Body.String(), "Invalid date format. Use YYYY-MM-DD")
	}
}

func TestCountriesEndpoint(t *testing.T) {
	r := testRouter(t)

	rec := do(t, r, "/stats/countries?query=eng")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "eng", body["query"])
	// Bundled data, never fetched: always a cache hit.
	require.Equal(t, true, body["cache_hit"])

	results, ok := body["results"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, results)
	for _, raw := range results {
		entry := raw.(map[string]interface{})
		require.Contains(t, strings.ToLower(entry["name"].(string)), "eng")
	}
}

func TestRobotsBlocksEverything(t *testing.T) {
	rec := do(t, testRouter(t), "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "User-agent: *\nDisallow: /\n", rec.Body.String())
}

func TestFaviconNoContent(t *testing.T) {
	rec := do(t, testRouter(t), "/favicon.ico")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSitemapNotFound(t *testing.T) {
	rec := do(t, testRouter(t), "/sitemap.xml")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWellKnownEndpoints(t *testing.T) {
	r := testRouter(t)

	rec := do(t, r, "/.well-known/traffic-advice")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "skip-private-relay")

	rec = do(t, r, "/.well-known/assetlinks.json")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())

	rec = do(t, r, "/apple-app-site-association")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "applinks")
}
