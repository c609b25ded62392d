package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type AffectedTeam struct {
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
	Image string `json:"image,omitempty"`
}

// Injury is one row of a player's injury history table.
type Injury struct {
	Season        string         `json:"season"`
	Injury        string         `json:"injury"`
	FromDate      string         `json:"from_date"`
	UntilDate     string         `json:"until_date"`
	Duration      string         `json:"duration"`
	GamesMissed   string         `json:"games_missed,omitempty"`
	TeamsAffected []AffectedTeam `json:"teams_affected"`
}

// ExtractPlayerInjuries reads an injury history page. A page without the
// results table is a valid zero-result outcome: uninjured players have no
// table at all.
func ExtractPlayerInjuries(doc *goquery.Document) ([]Injury, error) {
	injuries := []Injury{}

	doc.Find("table.items").First().Find("tr.odd, tr.even").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		teams := []AffectedTeam{}
		cells.Eq(5).Find("a").Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			if !strings.Contains(href, "verein") {
				return
			}
			title, _ := link.Attr("title")
			src, _ := link.Find("img").First().Attr("src")
			teams = append(teams, AffectedTeam{Name: title, Type: "club", Image: src})
		})

		games := cleanText(cells.Eq(5).Text())
		if span := cells.Eq(5).Find("span").First(); span.Length() > 0 {
			games = cleanText(span.Text())
		}

		injuries = append(injuries, Injury{
			Season:        cleanText(cells.Eq(0).Text()),
			Injury:        cleanText(cells.Eq(1).Text()),
			FromDate:      cleanText(cells.Eq(2).Text()),
			UntilDate:     cleanText(cells.Eq(3).Text()),
			Duration:      cleanText(cells.Eq(4).Text()),
			GamesMissed:   games,
			TeamsAffected: teams,
		})
	})

	return injuries, nil
}
