package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// League is one row of the competition quick-search result table.
type League struct {
	Name       string `json:"name,omitempty"`
	Code       string `json:"code,omitempty"`
	Country    string `json:"country,omitempty"`
	Clubs      string `json:"clubs,omitempty"`
	Players    string `json:"players,omitempty"`
	TotalValue string `json:"total_value,omitempty"`
	MeanValue  string `json:"mean_value,omitempty"`
	Continent  string `json:"continent,omitempty"`
	Logo       string `json:"logo,omitempty"`
}

// ExtractLeagueSearch reads the competition table out of a quick-search
// results page. The page mixes result tables for several entity kinds, so
// the right one is identified by its column headers. No matching table
// means zero results, not a structure failure.
func ExtractLeagueSearch(doc *goquery.Document) ([]League, error) {
	leagues := []League{}

	doc.Find("table.items").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if !hasHeaders(table, "Competition", "Country") {
			return true
		}
		table.Find("tr.odd, tr.even").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 8 {
				return
			}
			league := League{
				Country:    attr(cells.Eq(2), "img", "title"),
				Clubs:      cleanText(cells.Eq(3).Text()),
				Players:    cleanText(cells.Eq(4).Text()),
				TotalValue: cleanText(cells.Eq(5).Text()),
				MeanValue:  cleanText(cells.Eq(6).Text()),
				Continent:  cleanText(cells.Eq(7).Text()),
			}
			league.Logo, _ = cells.Eq(0).Find("img").First().Attr("src")
			if link := cells.Eq(1).Find("a[href]").First(); link.Length() > 0 {
				league.Name, _ = link.Attr("title")
				href, _ := link.Attr("href")
				league.Code = LeagueCodeFromURL(href)
			}
			leagues = append(leagues, league)
		})
		return false // only the first competition table counts
	})

	return leagues, nil
}

// LeagueClub is one row of a league overview table.
type LeagueClub struct {
	Rank             int    `json:"rank"`
	ClubID           string `json:"club_id,omitempty"`
	Name             string `json:"name,omitempty"`
	Logo             string `json:"logo,omitempty"`
	SquadSize        string `json:"squad_size,omitempty"`
	AvgAge           string `json:"avg_age,omitempty"`
	Foreigners       string `json:"foreigners,omitempty"`
	AvgMarketValue   string `json:"avg_market_value,omitempty"`
	TotalMarketValue string `json:"total_market_value,omitempty"`
}

// ExtractLeagueClubs reads the club list from a league overview page. A
// page without the results table yields zero results.
func ExtractLeagueClubs(doc *goquery.Document) ([]LeagueClub, error) {
	clubs := []LeagueClub{}

	doc.Find("table.items").First().Find("tr.odd, tr.even").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 7 {
			return
		}
		club := LeagueClub{
			Rank:             len(clubs) + 1,
			SquadSize:        cleanText(cells.Eq(2).Text()),
			AvgAge:           cleanText(cells.Eq(3).Text()),
			Foreigners:       cleanText(cells.Eq(4).Text()),
			AvgMarketValue:   cleanText(cells.Eq(5).Text()),
			TotalMarketValue: cleanText(cells.Eq(6).Text()),
		}
		club.Logo, _ = cells.Eq(0).Find("a img").First().Attr("src")
		if link := cells.Eq(1).Find("a").First(); link.Length() > 0 {
			club.Name, _ = link.Attr("title")
			href, _ := link.Attr("href")
			club.ClubID = ClubIDFromURL(href)
			if club.ClubID == "" {
				club.ClubID = thirdFromEnd(href)
			}
		}
		clubs = append(clubs, club)
	})

	return clubs, nil
}

// thirdFromEnd mirrors the historical club-ID rule for overview URLs of
// the form /name/startseite/verein/{id}/saison_id/{year}.
func thirdFromEnd(href string) string {
	parts := strings.Split(strings.TrimSuffix(href, "/"), "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-3]
}

func hasHeaders(table *goquery.Selection, wanted ...string) bool {
	headers := map[string]bool{}
	table.Find("th").Each(func(_ int, th *goquery.Selection) {
		headers[cleanText(th.Text())] = true
	})
	for _, w := range wanted {
		if !headers[w] {
			return false
		}
	}
	return true
}
