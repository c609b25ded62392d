package tm

import (
	"context"

	"github.com/tommhe14/tmkt-api/internal/scrape"
)

// Matches fetches the livescore listing. An empty date means today.
// Live content is never cached, so cache_hit is always false here.
func (s *Service) Matches(ctx context.Context, date string) ([]scrape.Match, bool, error) {
	var params map[string]string
	if date != "" {
		params = map[string]string{"datum": date}
	}

	doc, err := s.client.Document(ctx, "/live/index", params)
	if err != nil {
		return nil, false, err
	}
	matches, err := scrape.ExtractMatches(doc)
	if err != nil {
		return nil, false, err
	}
	return matches, false, nil
}
