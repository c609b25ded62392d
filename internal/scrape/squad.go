package scrape

import (
	"github.com/PuerkitoBio/goquery"
)

// SquadMember is one row of a club's squad table.
type SquadMember struct {
	PlayerID     string `json:"player_id,omitempty"`
	PlayerName   string `json:"player_name,omitempty"`
	Position     string `json:"position,omitempty"`
	Number       string `json:"number,omitempty"`
	DateOfBirth  string `json:"dob,omitempty"`
	MarketValue  string `json:"market_value,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	Image        string `json:"image,omitempty"`
	InjuryStatus string `json:"injury_status,omitempty"`
}

// ExtractClubSquad reads the squad table of a club page, skipping rows
// that do not match the expected column count.
func ExtractClubSquad(doc *goquery.Document) ([]SquadMember, error) {
	players := []SquadMember{}

	doc.Find("table.items tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() < 8 {
			return
		}

		member := SquadMember{
			Number:      cleanText(cells.Eq(0).Text()),
			Image:       imageURL(cells.Eq(2), "img"),
			Position:    cleanText(cells.Eq(4).Text()),
			DateOfBirth: cleanText(cells.Eq(5).Text()),
			MarketValue: cleanText(cells.Eq(7).Text()),
		}
		member.Nationality = attr(cells.Eq(6), "img", "title")

		if link := cells.Eq(3).Find("a").First(); link.Length() > 0 {
			member.PlayerName = cleanText(link.Text())
			href, _ := link.Attr("href")
			member.PlayerID = LastPathSegment(href)
			member.InjuryStatus, _ = link.Find("span.verletzt-table.icons_sprite").First().Attr("title")
		}

		players = append(players, member)
	})

	return players, nil
}
