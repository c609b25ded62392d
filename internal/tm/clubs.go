package tm

import (
	"context"
	"fmt"

	"github.com/tommhe14/tmkt-api/internal/scrape"
)

// SearchClubs runs the club quick-search.
func (s *Service) SearchClubs(ctx context.Context, query string) ([]scrape.ClubSearchResult, bool, error) {
	if hit, ok := s.clubSearch.Get(query); ok {
		return hit, true, nil
	}

	raw, err := s.client.Fetch(ctx, "/news/search", map[string]string{
		"index": "clubs_lang_new",
		"q":     query,
	})
	if err != nil {
		return nil, false, err
	}
	clubs, err := scrape.ExtractClubSearch(raw)
	if err != nil {
		return nil, false, err
	}

	s.clubSearch.Put(query, clubs)
	s.logger.Debug("club search resolved", "query", query, "results", len(clubs))
	return clubs, false, nil
}

// ClubProfile fetches one club profile page.
func (s *Service) ClubProfile(ctx context.Context, clubID string) (*scrape.ClubProfile, bool, error) {
	if hit, ok := s.clubProfiles.Get(clubID); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, "/-/startseite/verein/"+clubID, nil)
	if err != nil {
		return nil, false, err
	}
	club, err := scrape.ExtractClubProfile(doc, clubID)
	if err != nil {
		return nil, false, err
	}

	s.clubProfiles.Put(clubID, club)
	return club, false, nil
}

// ClubSquad fetches a club's current squad list.
func (s *Service) ClubSquad(ctx context.Context, clubID string) ([]scrape.SquadMember, bool, error) {
	if hit, ok := s.clubSquads.Get(clubID); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, "/-/startseite/verein/"+clubID, nil)
	if err != nil {
		return nil, false, err
	}
	squad, err := scrape.ExtractClubSquad(doc)
	if err != nil {
		return nil, false, err
	}

	s.clubSquads.Put(clubID, squad)
	return squad, false, nil
}

// ClubTransfers fetches a club's arrivals and departures for a season.
func (s *Service) ClubTransfers(ctx context.Context, clubID, season string) ([]scrape.ClubTransfer, bool, error) {
	key := seasonKey{ID: clubID, Season: season}
	if hit, ok := s.clubTransfers.Get(key); ok {
		return hit, true, nil
	}

	path := fmt.Sprintf("/-/transfers/verein/%s/saison_id/%s", clubID, season)
	doc, err := s.client.Document(ctx, path, nil)
	if err != nil {
		return nil, false, err
	}
	transfers, err := scrape.ExtractClubTransfers(doc)
	if err != nil {
		return nil, false, err
	}

	s.clubTransfers.Put(key, transfers)
	return transfers, false, nil
}

// ClubFixtures fetches a club's schedule for a season.
func (s *Service) ClubFixtures(ctx context.Context, clubID, season string) ([]scrape.Fixture, bool, error) {
	key := seasonKey{ID: clubID, Season: season}
	if hit, ok := s.clubFixtures.Get(key); ok {
		return hit, true, nil
	}

	path := fmt.Sprintf("/-/spielplan/verein/%s/saison_id/%s", clubID, season)
	doc, err := s.client.Document(ctx, path, nil)
	if err != nil {
		return nil, false, err
	}
	fixtures, err := scrape.ExtractClubFixtures(doc)
	if err != nil {
		return nil, false, err
	}

	s.clubFixtures.Put(key, fixtures)
	return fixtures, false, nil
}
