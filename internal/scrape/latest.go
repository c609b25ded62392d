package scrape

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// LatestTransfer is one row of the sitewide latest-transfers table.
type LatestTransfer struct {
	Name                    string `json:"name"`
	Position                string `json:"position"`
	Age                     string `json:"age"`
	Nationality             string `json:"nationality"`
	CurrentClub             string `json:"current_club"`
	CurrentClubLeague       string `json:"current_club_league"`
	CurrentClubNationality  string `json:"current_club_nationality"`
	PreviousClub            string `json:"previous_club"`
	PreviousClubLeague      string `json:"previous_club_league"`
	PreviousClubNationality string `json:"previous_club_nationality"`
	TransferFee             string `json:"transfer_fee"`
	PlayerLogo              string `json:"player_logo"`
	Date                    int64  `json:"date"`
	PlayerID                string `json:"player_id"`
}

// ExtractLatestTransfers reads the latest-transfers listing. The observed
// time is taken as a parameter so extraction stays pure. A page without
// the results table yields zero rows.
func ExtractLatestTransfers(doc *goquery.Document, now time.Time) ([]LatestTransfer, error) {
	transfers := []LatestTransfer{}

	doc.Find("table.items").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() < 15 {
			return
		}

		t := LatestTransfer{
			Age:  cleanText(cells.Eq(4).Text()),
			Date: now.Unix(),
		}
		t.Nationality = attr(cells.Eq(5), "img", "title")

		if playerTable := cells.Eq(0).Find("table.inline-table").First(); playerTable.Length() > 0 {
			rows := playerTable.Find("tr")
			if rows.Length() > 1 {
				nameCell := rows.Eq(0).Find("td.hauptlink").First()
				t.Name = cleanText(nameCell.Text())
				if href, ok := nameCell.Find("a").First().Attr("href"); ok {
					t.PlayerID = LastPathSegment(href)
				}
				t.Position = cleanText(rows.Eq(1).Find("td").First().Text())
				t.PlayerLogo = imageURL(rows.Eq(0), "img")
			}
		}

		t.CurrentClub, t.CurrentClubLeague, t.CurrentClubNationality = inlineClub(cells.Eq(10))
		t.PreviousClub, t.PreviousClubLeague, t.PreviousClubNationality = inlineClub(cells.Eq(6))

		if link := cells.Eq(14).Find("a").First(); link.Length() > 0 {
			t.TransferFee = cleanText(link.Text())
		} else {
			t.TransferFee = cleanText(cells.Eq(14).Find("span").First().Text())
		}

		transfers = append(transfers, t)
	})

	return transfers, nil
}

// inlineClub unpacks the nested club cell layout: name on the first row,
// league and country flag on the second.
func inlineClub(cell *goquery.Selection) (name, league, nationality string) {
	table := cell.Find("table.inline-table").First()
	if table.Length() == 0 {
		return "", "", ""
	}
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return "", "", ""
	}
	name = cleanText(rows.Eq(0).Find("td.hauptlink").First().Text())
	league = cleanText(rows.Eq(1).Find("td").First().Text())
	nationality = attr(rows.Eq(1), "img.flaggenrahmen", "title")
	return name, league, nationality
}
