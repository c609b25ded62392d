package tm

import (
	"context"

	"github.com/tommhe14/tmkt-api/internal/scrape"
)

// SearchStaff runs the staff quick-search.
func (s *Service) SearchStaff(ctx context.Context, query string) ([]scrape.StaffMember, bool, error) {
	if hit, ok := s.staffSearch.Get(query); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, quickSearchPath(query), nil)
	if err != nil {
		return nil, false, err
	}
	staff, err := scrape.ExtractStaffSearch(doc)
	if err != nil {
		return nil, false, err
	}

	s.staffSearch.Put(query, staff)
	return staff, false, nil
}

// StaffProfile fetches one staff (manager/coach) profile page.
func (s *Service) StaffProfile(ctx context.Context, staffID string) (*scrape.StaffProfile, bool, error) {
	if hit, ok := s.staffProfiles.Get(staffID); ok {
		return hit, true, nil
	}

	doc, err := s.client.Document(ctx, "/-/profil/trainer/"+staffID, nil)
	if err != nil {
		return nil, false, err
	}
	profile, err := scrape.ExtractStaffProfile(doc, staffID)
	if err != nil {
		return nil, false, err
	}

	s.staffProfiles.Put(staffID, profile)
	return profile, false, nil
}
