package scrape

import (
	"github.com/PuerkitoBio/goquery"
)

// TopScorerEntry is one row of a league's top-scorers table.
type TopScorerEntry struct {
	Rank        string   `json:"rank"`
	Name        string   `json:"name,omitempty"`
	Position    string   `json:"position,omitempty"`
	Nationality []string `json:"nationality"`
	Age         string   `json:"age,omitempty"`
	Club        string   `json:"club,omitempty"`
	ClubLogo    string   `json:"club_logo,omitempty"`
	Appearances string   `json:"appearances,omitempty"`
	Goals       string   `json:"goals,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`
}

// ExtractTopScorers reads a top-scorers page. Rows without the inline
// player table are decoration and get skipped; a page without the results
// table yields zero entries.
func ExtractTopScorers(doc *goquery.Document) ([]TopScorerEntry, error) {
	scorers := []TopScorerEntry{}

	doc.Find("table.items").First().Find("tr.odd, tr.even").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 10 {
			return
		}
		playerTable := cells.Eq(1).Find("table.inline-table").First()
		if playerTable.Length() == 0 {
			return
		}

		entry := TopScorerEntry{
			Rank:        cleanText(cells.Eq(0).Text()),
			Nationality: []string{},
			Age:         cleanText(cells.Eq(6).Text()),
			Appearances: cleanText(cells.Eq(8).Text()),
			Goals:       cleanText(cells.Eq(9).Text()),
		}

		if link := playerTable.Find("a[href]").First(); link.Length() > 0 {
			entry.Name, _ = link.Attr("title")
		}
		if rows := playerTable.Find("tr"); rows.Length() > 1 {
			entry.Position = cleanText(rows.Eq(1).Text())
		}

		cells.Eq(5).Find("img.flaggenrahmen").Each(func(_ int, flag *goquery.Selection) {
			if title, ok := flag.Attr("title"); ok {
				entry.Nationality = append(entry.Nationality, title)
			}
		})

		if clubLink := cells.Eq(7).Find("a").First(); clubLink.Length() > 0 {
			entry.Club, _ = clubLink.Attr("title")
			entry.ClubLogo, _ = clubLink.Find("img").First().Attr("src")
		}
		entry.PhotoURL = imageURL(cells.Eq(1), "img.bilderrahmen-fixed")

		scorers = append(scorers, entry)
	})

	return scorers, nil
}
