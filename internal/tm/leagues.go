package tm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tommhe14/tmkt-api/internal/scrape"
)

// SearchLeagues runs the competition quick-search.
func (s *Service) SearchLeagues(ctx context.Context, query string) ([]scrape.League, bool, error) {
	if hit, ok := s.leagueSearch.Get(query); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, quickSearchPath(query), nil)
	if err != nil {
		return nil, false, err
	}
	leagues, err := scrape.ExtractLeagueSearch(doc)
	if err != nil {
		return nil, false, err
	}

	s.leagueSearch.Put(query, leagues)
	return leagues, false, nil
}

// LeagueClubs fetches the club list of a league's overview page.
func (s *Service) LeagueClubs(ctx context.Context, leagueCode string) ([]scrape.LeagueClub, bool, error) {
	if hit, ok := s.leagueClubs.Get(leagueCode); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, "/-/startseite/wettbewerb/"+leagueCode, nil)
	if err != nil {
		return nil, false, err
	}
	clubs, err := scrape.ExtractLeagueClubs(doc)
	if err != nil {
		return nil, false, err
	}

	s.leagueClubs.Put(leagueCode, clubs)
	return clubs, false, nil
}

// LeagueTable fetches a league's standings for a season.
func (s *Service) LeagueTable(ctx context.Context, leagueCode, season string) ([]scrape.LeagueTableRow, bool, error) {
	key := seasonKey{ID: leagueCode, Season: season}
	if hit, ok := s.leagueTables.Get(key); ok {
		return hit, true, nil
	}

	path := fmt.Sprintf("/-/tabelle/wettbewerb/%s/saison_id/%s", leagueCode, season)
	doc, err := s.client.Document(ctx, path, nil)
	if err != nil {
		return nil, false, err
	}
	rows, err := scrape.ExtractLeagueTable(doc)
	if err != nil {
		return nil, false, err
	}

	s.leagueTables.Put(key, rows)
	return rows, false, nil
}

// TopScorers fetches a league's top-scorer list for a season.
func (s *Service) TopScorers(ctx context.Context, leagueCode, season string) ([]scrape.TopScorerEntry, bool, error) {
	key := seasonKey{ID: leagueCode, Season: season}
	if hit, ok := s.topScorers.Get(key); ok {
		return hit, true, nil
	}

	path := fmt.Sprintf("/-/torschuetzenliste/wettbewerb/%s/plus/?saison_id=%s", leagueCode, season)
	doc, err := s.client.Document(ctx, path, nil)
	if err != nil {
		return nil, false, err
	}
	scorers, err := scrape.ExtractTopScorers(doc)
	if err != nil {
		return nil, false, err
	}

	s.topScorers.Put(key, scorers)
	return scorers, false, nil
}

// LeagueTransfers fetches the league-wide transfer overview for a season.
// Loans and intra-league moves are included, matching the public listing.
func (s *Service) LeagueTransfers(ctx context.Context, leagueCode, season string) ([]scrape.LeagueTeamTransfers, bool, error) {
	key := seasonKey{ID: leagueCode, Season: season}
	if hit, ok := s.leagueTransfers.Get(key); ok {
		return hit, true, nil
	}

	path := fmt.Sprintf("/-/transfers/wettbewerb/%s/plus/?saison_id=%s&leihe=1&intern=0&intern=1",
		leagueCode, season)
	doc, err := s.client.Document(ctx, path, nil)
	if err != nil {
		return nil, false, err
	}
	teams, err := scrape.ExtractLeagueTransfers(doc)
	if err != nil {
		return nil, false, err
	}

	s.leagueTransfers.Put(key, teams)
	return teams, false, nil
}

// quickSearchPath builds the sitewide quick-search URL. Spaces become
// plus signs, matching the site's own search links.
func quickSearchPath(query string) string {
	escaped := url.QueryEscape(strings.TrimSpace(query))
	return "/schnellsuche/ergebnis/schnellsuche?query=" + escaped
}
