// Package store serves the bundled static lookup data. Unlike the rest
// of the service, nothing here touches the network: the country list
// ships with the binary.
package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

//go:embed countries.json
var countriesJSON []byte

// Country is one entry of the bundled country list. The ID matches the
// upstream land identifier used in flag and filter URLs.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Countries is the immutable bundled country list.
type Countries struct {
	list []Country
}

// LoadCountries decodes the embedded country list.
func LoadCountries() (*Countries, error) {
	var list []Country
	if err := json.Unmarshal(countriesJSON, &list); err != nil {
		return nil, fmt.Errorf("decode bundled country list: %w", err)
	}
	return &Countries{list: list}, nil
}

// All returns every bundled country in file order.
func (c *Countries) All() []Country {
	out := make([]Country, len(c.list))
	copy(out, c.list)
	return out
}

// Search matches countries by exact numeric ID or case-insensitive name
// substring. An empty query returns the full list.
func (c *Countries) Search(query string) []Country {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.All()
	}

	results := []Country{}
	if id, err := strconv.Atoi(query); err == nil {
		for _, country := range c.list {
			if country.ID == id {
				results = append(results, country)
			}
		}
		return results
	}

	needle := strings.ToLower(query)
	for _, country := range c.list {
		if strings.Contains(strings.ToLower(country.Name), needle) {
			results = append(results, country)
		}
	}
	return results
}
