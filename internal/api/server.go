package api

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tommhe14/tmkt-api/internal/api/handler"
	"github.com/tommhe14/tmkt-api/internal/config"
	"github.com/tommhe14/tmkt-api/internal/ratelimit"
	"github.com/tommhe14/tmkt-api/internal/store"
	"github.com/tommhe14/tmkt-api/internal/tm"
)

//go:embed doc.json
var swaggerSpec []byte

// NewRouter creates and configures the Chi router with all middleware and
// routes.
func NewRouter(svc *tm.Service, countries *store.Countries, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(ratelimit.New(), cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(svc, countries, cfg)

	// --- Routes ---

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Crawler and app-link plumbing
	r.Get("/robots.txt", h.RobotsTxt)
	r.Get("/favicon.ico", h.Favicon)
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/sitemap", h.Sitemap)
	r.Get("/apple-app-site-association", h.AppleAppSiteAssociation)
	r.Get("/.well-known/apple-app-site-association", h.AppleAppSiteAssociation)
	r.Get("/.well-known/traffic-advice", h.TrafficAdvice)
	r.Get("/.well-known/assetlinks.json", h.AssetLinks)

	// Swagger UI
	r.Get("/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(swaggerSpec)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/players", func(r chi.Router) {
		r.Get("/search", h.SearchPlayers)
		r.Get("/{playerID}", h.GetPlayerProfile)
		r.Get("/{playerID}/stats", h.GetPlayerStats)
		r.Get("/{playerID}/transfers", h.GetPlayerTransfers)
		r.Get("/{playerID}/injuries", h.GetPlayerInjuries)
	})

	r.Route("/clubs", func(r chi.Router) {
		r.Get("/search", h.SearchClubs)
		r.Get("/{clubID}", h.GetClubProfile)
		r.Get("/{clubID}/squad", h.GetClubSquad)
		r.Get("/{clubID}/transfers", h.GetClubTransfers)
		r.Get("/{clubID}/fixtures", h.GetClubFixtures)
	})

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/search", h.SearchLeagues)
		r.Get("/{leagueCode}/clubs", h.GetLeagueClubs)
		r.Get("/{leagueCode}/table", h.GetLeagueTable)
		r.Get("/{leagueCode}/scorers", h.GetTopScorers)
		r.Get("/{leagueCode}/transfers", h.GetLeagueTransfers)
	})

	r.Route("/staff", func(r chi.Router) {
		r.Get("/search", h.SearchStaff)
		r.Get("/{staffID}/profile", h.GetStaffProfile)
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/today", h.GetTodaysMatches)
		r.Get("/date/{date}", h.GetMatchesByDate)
	})

	r.Get("/transfers", h.GetLatestTransfers)

	r.Get("/stats/countries", h.GetCountries)

	return r
}
