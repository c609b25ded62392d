// Package tm orchestrates the upstream fetchers, extractors and caches
// into one operation per served endpoint. Every lookup follows the same
// shape: consult the family cache, on a miss fetch and extract, store the
// result, and report whether the response was served from cache. Errors
// pass through untouched so the handler layer can classify them.
package tm

import (
	"log/slog"

	"github.com/tommhe14/tmkt-api/internal/cache"
	"github.com/tommhe14/tmkt-api/internal/scrape"
	"github.com/tommhe14/tmkt-api/internal/upstream"
)

// seasonKey addresses per-season content for a single entity.
type seasonKey struct {
	ID     string
	Season string
}

// Options configures a Service.
type Options struct {
	// Client talks to the HTML site, API to the transfer-history API host.
	Client *upstream.Client
	API    *upstream.Client

	CacheEnabled bool
	CacheMaxSize int

	Logger *slog.Logger
}

// Service owns one cache per entity family. Caches never share keyspaces,
// so a club ID and a player ID can never collide.
type Service struct {
	client *upstream.Client
	api    *upstream.Client
	logger *slog.Logger

	playerSearch    *cache.Cache[string, []scrape.PlayerSearchResult]
	playerProfiles  *cache.Cache[string, *scrape.PlayerProfile]
	playerStats     *cache.Cache[seasonKey, *scrape.PlayerStats]
	playerInjuries  *cache.Cache[string, []scrape.Injury]
	transferHistory *cache.Cache[string, *scrape.TransferHistory]
	clubSearch      *cache.Cache[string, []scrape.ClubSearchResult]
	clubProfiles    *cache.Cache[string, *scrape.ClubProfile]
	clubSquads      *cache.Cache[string, []scrape.SquadMember]
	clubTransfers   *cache.Cache[seasonKey, []scrape.ClubTransfer]
	clubFixtures    *cache.Cache[seasonKey, []scrape.Fixture]
	clubNames       *cache.Cache[string, string]
	leagueSearch    *cache.Cache[string, []scrape.League]
	leagueClubs     *cache.Cache[string, []scrape.LeagueClub]
	leagueTables    *cache.Cache[seasonKey, []scrape.LeagueTableRow]
	topScorers      *cache.Cache[seasonKey, []scrape.TopScorerEntry]
	leagueTransfers *cache.Cache[seasonKey, []scrape.LeagueTeamTransfers]
	staffSearch     *cache.Cache[string, []scrape.StaffMember]
	staffProfiles   *cache.Cache[string, *scrape.StaffProfile]
}

// NewService wires the per-family caches. Live match lists and the
// latest-transfers feed are deliberately not given caches: both change
// under a minute and must always be fetched.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	searches := cache.TTLSearch
	profiles := cache.TTLProfile
	tables := cache.TTLTable
	size := opts.CacheMaxSize
	on := opts.CacheEnabled

	return &Service{
		client: opts.Client,
		api:    opts.API,
		logger: logger,

		playerSearch:    cache.New[string, []scrape.PlayerSearchResult](size, searches, on),
		playerProfiles:  cache.New[string, *scrape.PlayerProfile](size, profiles, on),
		playerStats:     cache.New[seasonKey, *scrape.PlayerStats](size, profiles, on),
		playerInjuries:  cache.New[string, []scrape.Injury](size, profiles, on),
		transferHistory: cache.New[string, *scrape.TransferHistory](size, profiles, on),
		clubSearch:      cache.New[string, []scrape.ClubSearchResult](size, searches, on),
		clubProfiles:    cache.New[string, *scrape.ClubProfile](size, profiles, on),
		clubSquads:      cache.New[string, []scrape.SquadMember](size, profiles, on),
		clubTransfers:   cache.New[seasonKey, []scrape.ClubTransfer](size, profiles, on),
		clubFixtures:    cache.New[seasonKey, []scrape.Fixture](size, profiles, on),
		clubNames:       cache.New[string, string](size, tables, on),
		leagueSearch:    cache.New[string, []scrape.League](size, searches, on),
		leagueClubs:     cache.New[string, []scrape.LeagueClub](size, tables, on),
		leagueTables:    cache.New[seasonKey, []scrape.LeagueTableRow](size, tables, on),
		topScorers:      cache.New[seasonKey, []scrape.TopScorerEntry](size, tables, on),
		leagueTransfers: cache.New[seasonKey, []scrape.LeagueTeamTransfers](size, tables, on),
		staffSearch:     cache.New[string, []scrape.StaffMember](size, searches, on),
		staffProfiles:   cache.New[string, *scrape.StaffProfile](size, profiles, on),
	}
}

// CacheStats reports per-family cache statistics for the health endpoint.
func (s *Service) CacheStats() map[string]interface{} {
	return map[string]interface{}{
		"player_search":    s.playerSearch.Stats(),
		"player_profiles":  s.playerProfiles.Stats(),
		"player_stats":     s.playerStats.Stats(),
		"player_injuries":  s.playerInjuries.Stats(),
		"transfer_history": s.transferHistory.Stats(),
		"club_search":      s.clubSearch.Stats(),
		"club_profiles":    s.clubProfiles.Stats(),
		"club_squads":      s.clubSquads.Stats(),
		"club_transfers":   s.clubTransfers.Stats(),
		"club_fixtures":    s.clubFixtures.Stats(),
		"club_names":       s.clubNames.Stats(),
		"league_search":    s.leagueSearch.Stats(),
		"league_clubs":     s.leagueClubs.Stats(),
		"league_tables":    s.leagueTables.Stats(),
		"top_scorers":      s.topScorers.Stats(),
		"league_transfers": s.leagueTransfers.Stats(),
		"staff_search":     s.staffSearch.Stats(),
		"staff_profiles":   s.staffProfiles.Stats(),
	}
}
