package scrape

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlayerSearchResult is one row of the player quick-search endpoint.
type PlayerSearchResult struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
	Team string      `json:"team"`
}

// ExtractPlayerSearch parses the player quick-search JSON payload. Each
// entry's name field carries embedded markup: the current team sits in an
// <i> element inside the display name.
func ExtractPlayerSearch(raw []byte) ([]PlayerSearchResult, error) {
	var entries []struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode player search payload: %w", err)
	}

	players := make([]PlayerSearchResult, 0, len(entries))
	for _, entry := range entries {
		name, team := splitNameFragment(entry.Name)
		players = append(players, PlayerSearchResult{
			ID:   entry.ID,
			Name: name,
			Team: team,
		})
	}
	return players, nil
}

// splitNameFragment separates the player name from the <i>-wrapped team
// marker inside a search result name fragment.
func splitNameFragment(fragment string) (name, team string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return cleanText(fragment), "Unknown"
	}

	marker := doc.Find("i").First()
	if marker.Length() == 0 {
		team = "Unknown"
	} else {
		team = cleanText(marker.Text())
		if team == "---" || team == "Retired" {
			team = "Retired"
		}
	}
	doc.Find("i").Remove()
	name = cleanText(doc.Text())
	if name == "" {
		name = "Unknown"
	}
	return name, team
}
