package tm

import (
	"context"
	"fmt"

	"github.com/tommhe14/tmkt-api/internal/scrape"
)

// SearchPlayers runs the player quick-search.
func (s *Service) SearchPlayers(ctx context.Context, query string) ([]scrape.PlayerSearchResult, bool, error) {
	if hit, ok := s.playerSearch.Get(query); ok {
		return hit, true, nil
	}

	raw, err := s.client.Fetch(ctx, "/spieler/searchSpielerDaten", map[string]string{"q": query})
	if err != nil {
		return nil, false, err
	}
	players, err := scrape.ExtractPlayerSearch(raw)
	if err != nil {
		return nil, false, err
	}

	s.playerSearch.Put(query, players)
	s.logger.Debug("player search resolved", "query", query, "results", len(players))
	return players, false, nil
}

// PlayerProfile fetches one player profile page.
func (s *Service) PlayerProfile(ctx context.Context, playerID string) (*scrape.PlayerProfile, bool, error) {
	if hit, ok := s.playerProfiles.Get(playerID); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, "/-/profil/spieler/"+playerID, nil)
	if err != nil {
		return nil, false, err
	}
	profile, err := scrape.ExtractPlayerProfile(doc, playerID)
	if err != nil {
		return nil, false, err
	}

	s.playerProfiles.Put(playerID, profile)
	return profile, false, nil
}

// PlayerStats fetches a player's per-competition statistics. An empty
// season selects the all-time aggregate page.
func (s *Service) PlayerStats(ctx context.Context, playerID, season string) (*scrape.PlayerStats, bool, error) {
	key := seasonKey{ID: playerID, Season: season}
	if hit, ok := s.playerStats.Get(key); ok {
		return hit, true, nil
	}

	path := "/-/leistungsdaten/spieler/" + playerID
	var params map[string]string
	if season != "" {
		path = fmt.Sprintf("/-/leistungsdaten/spieler/%s/plus/0", playerID)
		params = map[string]string{"saison": season}
	}
	doc, err := s.client.Document(ctx, path, params)
	if err != nil {
		return nil, false, err
	}
	stats, err := scrape.ExtractPlayerStats(doc, playerID, season)
	if err != nil {
		return nil, false, err
	}

	s.playerStats.Put(key, stats)
	return stats, false, nil
}

// PlayerInjuries fetches a player's injury history.
func (s *Service) PlayerInjuries(ctx context.Context, playerID string) ([]scrape.Injury, bool, error) {
	if hit, ok := s.playerInjuries.Get(playerID); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, "/-/verletzungen/spieler/"+playerID, nil)
	if err != nil {
		return nil, false, err
	}
	injuries, err := scrape.ExtractPlayerInjuries(doc)
	if err != nil {
		return nil, false, err
	}

	s.playerInjuries.Put(playerID, injuries)
	return injuries, false, nil
}

// PlayerTransfers fetches a player's transfer history from the API host
// and enriches the club references with display names. Name lookups are
// memoized so a long career does not turn into one profile fetch per leg.
func (s *Service) PlayerTransfers(ctx context.Context, playerID string) (*scrape.TransferHistory, bool, error) {
	if hit, ok := s.transferHistory.Get(playerID); ok {
		return hit, true, nil
	}

	raw, err := s.api.Fetch(ctx, "/transfer/history/player/"+playerID, nil)
	if err != nil {
		return nil, false, err
	}
	history, err := scrape.ExtractTransferHistory(raw, playerID)
	if err != nil {
		return nil, false, err
	}

	for i := range history.Transfers {
		history.Transfers[i].From.ClubName = s.clubName(ctx, history.Transfers[i].From.ClubID)
		history.Transfers[i].To.ClubName = s.clubName(ctx, history.Transfers[i].To.ClubID)
	}
	if history.CurrentClub != nil {
		history.CurrentClub.ClubName = s.clubName(ctx, history.CurrentClub.ClubID)
	}

	s.transferHistory.Put(playerID, history)
	return history, false, nil
}

// clubName resolves a club ID to its display name through the club page
// headline. Failures degrade to "Unknown" rather than failing the caller:
// a transfer record with an unresolvable club is still a transfer record.
func (s *Service) clubName(ctx context.Context, clubID string) string {
	if clubID == "" {
		return "Unknown"
	}
	if hit, ok := s.clubNames.Get(clubID); ok {
		return hit
	}

	doc, err := s.client.Document(ctx, "/-/startseite/verein/"+clubID, nil)
	if err != nil {
		s.logger.Warn("club name lookup failed", "club_id", clubID, "error", err)
		return "Unknown"
	}
	name, err := scrape.ExtractClubName(doc)
	if err != nil || name == "" {
		return "Unknown"
	}

	s.clubNames.Put(clubID, name)
	return name
}
