package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type FixtureOpponent struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Fixture is one row of a club's season schedule, grouped under the
// competition it belongs to.
type Fixture struct {
	Competition string          `json:"competition,omitempty"`
	Matchday    string          `json:"matchday,omitempty"`
	Date        string          `json:"date,omitempty"`
	Time        string          `json:"time,omitempty"`
	Venue       string          `json:"venue,omitempty"`
	Opponent    FixtureOpponent `json:"opponent"`
	Result      string          `json:"result,omitempty"`
}

// ExtractClubFixtures reads a club's season schedule page. Each
// competition renders its own box with a fixture table; a page without
// boxes is a valid zero-result outcome (no scheduled matches).
func ExtractClubFixtures(doc *goquery.Document) ([]Fixture, error) {
	fixtures := []Fixture{}

	doc.Find("div.box").Each(func(_ int, box *goquery.Selection) {
		competition := cleanText(box.Find("h2").First().Text())
		box.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 7 {
				return
			}

			f := Fixture{
				Competition: competition,
				Matchday:    cleanText(cells.Eq(0).Text()),
				Date:        cleanText(cells.Eq(1).Text()),
				Time:        cleanText(cells.Eq(2).Text()),
				Venue:       cleanText(cells.Eq(3).Text()),
				Result:      cleanText(cells.Last().Text()),
			}

			if link := findLinkByHref(row, "/verein/"); link != nil {
				href, _ := link.Attr("href")
				f.Opponent.ID = ClubIDFromURL(href)
				name, _ := link.Attr("title")
				if name == "" {
					name = cleanText(link.Text())
				}
				f.Opponent.Name = strings.TrimSpace(name)
			}

			fixtures = append(fixtures, f)
		})
	})

	return fixtures, nil
}
