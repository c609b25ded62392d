package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LeagueTeamTransfer is one incoming transfer row under a team box of the
// league transfer overview.
type LeagueTeamTransfer struct {
	PlayerID         string `json:"player_id,omitempty"`
	PlayerName       string `json:"player_name,omitempty"`
	Age              string `json:"age,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	Position         string `json:"position,omitempty"`
	ShortPosition    string `json:"short_position,omitempty"`
	MarketValue      string `json:"market_value,omitempty"`
	PreviousClub     string `json:"previous_club,omitempty"`
	PreviousClubLogo string `json:"previous_club_logo,omitempty"`
	Fee              string `json:"fee,omitempty"`
}

// LeagueTeamTransfers groups a team's transfer window activity on the
// league transfer overview page.
type LeagueTeamTransfers struct {
	TeamID    string               `json:"team_id,omitempty"`
	TeamName  string               `json:"team_name,omitempty"`
	TeamLogo  string               `json:"team_logo,omitempty"`
	Transfers []LeagueTeamTransfer `json:"transfers"`
}

// ExtractLeagueTransfers reads the league transfer overview: one box per
// team, each with its transfer table. Boxes without a headline link are
// page furniture and get skipped.
func ExtractLeagueTransfers(doc *goquery.Document) ([]LeagueTeamTransfers, error) {
	teams := []LeagueTeamTransfers{}

	doc.Find("div.box").Each(func(_ int, box *goquery.Selection) {
		heading := box.Find("h2.content-box-headline").First()
		if heading.Length() == 0 {
			return
		}
		teamLink := heading.Find("a").First()
		if teamLink.Length() == 0 {
			return
		}

		team := LeagueTeamTransfers{Transfers: []LeagueTeamTransfer{}}
		title, _ := teamLink.Attr("title")
		// Some boxes carry a stray "Array" template artifact in the title.
		team.TeamName = cleanText(strings.ReplaceAll(title, "Array", ""))
		href, _ := teamLink.Attr("href")
		team.TeamID = ClubIDFromURL(href)
		team.TeamLogo, _ = heading.Find("img").First().Attr("src")

		box.Find("table tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return // header row
			}
			cells := row.Find("td")
			if cells.Length() < 9 {
				return
			}
			transfer := LeagueTeamTransfer{
				Age:           cleanText(cells.Eq(1).Text()),
				Nationality:   attr(cells.Eq(2), "img", "title"),
				Position:      cleanText(cells.Eq(3).Text()),
				ShortPosition: cleanText(cells.Eq(4).Text()),
				MarketValue:   cleanText(cells.Eq(5).Text()),
				Fee:           cleanText(cells.Eq(8).Text()),
			}
			if link := cells.Eq(0).Find("a").First(); link.Length() > 0 {
				transfer.PlayerName, _ = link.Attr("title")
				playerHref, _ := link.Attr("href")
				transfer.PlayerID = LastPathSegment(playerHref)
			}
			if link := cells.Eq(7).Find("a").First(); link.Length() > 0 {
				transfer.PreviousClub = cleanText(link.Text())
			}
			transfer.PreviousClubLogo, _ = cells.Eq(6).Find("img").First().Attr("src")

			team.Transfers = append(team.Transfers, transfer)
		})

		teams = append(teams, team)
	})

	return teams, nil
}
