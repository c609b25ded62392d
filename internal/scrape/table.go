package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LeagueTableRow is one standings row of a league table page.
type LeagueTableRow struct {
	Position       string `json:"position"`
	PositionChange string `json:"position_change,omitempty"`
	TeamID         string `json:"team_id,omitempty"`
	Team           string `json:"team,omitempty"`
	TeamLogo       string `json:"team_logo,omitempty"`
	MatchesPlayed  string `json:"matches_played"`
	Wins           string `json:"wins"`
	Draws          string `json:"draws"`
	Losses         string `json:"losses"`
	Goals          string `json:"goals"`
	GoalDifference string `json:"goal_difference"`
	Points         string `json:"points"`
}

// ExtractLeagueTable reads a standings page into ordered table rows.
// Rows appear in upstream order, so positions are non-decreasing from 1.
// A page without the standings table yields zero rows (season not played).
func ExtractLeagueTable(doc *goquery.Document) ([]LeagueTableRow, error) {
	rows := []LeagueTableRow{}

	doc.Find("table.items").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		posCell := row.Find("td.rechts").First()
		if posCell.Length() == 0 {
			return // header or spacer row
		}

		fields := strings.Fields(cleanText(posCell.Text()))
		if len(fields) == 0 {
			return
		}
		entry := LeagueTableRow{Position: fields[0]}
		entry.PositionChange, _ = posCell.Find("span").First().Attr("title")

		if link := row.Find("td.no-border-links a").First(); link.Length() > 0 {
			entry.Team, _ = link.Attr("title")
			href, _ := link.Attr("href")
			entry.TeamID = ClubIDFromURL(href)
			if entry.TeamID == "" {
				entry.TeamID = thirdFromEnd(href)
			}
		}
		entry.TeamLogo, _ = row.Find("img.tiny_wappen").First().Attr("src")

		cells := row.Find("td.zentriert")
		if cells.Length() < 7 {
			return
		}
		entry.MatchesPlayed = cleanText(cells.Eq(0).Text())
		entry.Wins = cleanText(cells.Eq(1).Text())
		entry.Draws = cleanText(cells.Eq(2).Text())
		entry.Losses = cleanText(cells.Eq(3).Text())
		entry.Goals = cleanText(cells.Eq(4).Text())
		entry.GoalDifference = cleanText(cells.Eq(5).Text())
		entry.Points = cleanText(cells.Eq(6).Text())

		rows = append(rows, entry)
	})

	return rows, nil
}
