package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Transfer direction labels for club transfer tables.
const (
	TransferArrival   = "arrival"
	TransferDeparture = "departure"
)

// ClubTransfer is one row of a club's arrivals or departures table for a
// season.
type ClubTransfer struct {
	PlayerID    string `json:"player_id,omitempty"`
	PlayerName  string `json:"player_name,omitempty"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality,omitempty"`
	Position    string `json:"position,omitempty"`
	Club        string `json:"club,omitempty"`
	Fee         string `json:"fee"`
	Type        string `json:"type"`
	LoanEndDate string `json:"loan_end_date,omitempty"`
	PlayerImage string `json:"player_image,omitempty"`
}

// ExtractClubTransfers reads the Arrivals and Departures tables of a
// club's season transfer page. A page without either table is a valid
// zero-result outcome.
func ExtractClubTransfers(doc *goquery.Document) ([]ClubTransfer, error) {
	transfers := []ClubTransfer{}

	sections := map[string]string{
		"Arrivals":   TransferArrival,
		"Departures": TransferDeparture,
	}
	doc.Find("h2").Each(func(_ int, heading *goquery.Selection) {
		direction, ok := sections[matchSection(heading.Text())]
		if !ok {
			return
		}
		table := heading.Closest("div.box").Find("table").First()
		if table.Length() == 0 {
			table = heading.NextAllFiltered("table").First()
		}
		// Only the outer table's direct rows are transfer rows. The
		// player cell nests a table.inline-table whose rows would
		// otherwise pass the titled-link guard and double every record.
		table.ChildrenFiltered("tbody").ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
			if t, ok := transferRow(row, direction); ok {
				transfers = append(transfers, t)
			}
		})
	})

	return transfers, nil
}

func matchSection(heading string) string {
	for _, name := range []string{"Arrivals", "Departures"} {
		if strings.Contains(heading, name) {
			return name
		}
	}
	return ""
}

// transferRow extracts a single transfer row; rows without a titled
// player link are decoration and get skipped.
func transferRow(row *goquery.Selection, direction string) (ClubTransfer, bool) {
	playerLink := row.Find("td.hauptlink a[title]").First()
	if playerLink.Length() == 0 {
		return ClubTransfer{}, false
	}

	t := ClubTransfer{
		PlayerName: cleanText(playerLink.Text()),
		Type:       direction,
		Fee:        "Free",
	}
	if href, ok := playerLink.Attr("href"); ok {
		t.PlayerID = LastPathSegment(href)
	}

	if ageText := cleanText(row.Find("td.zentriert:not([colspan])").First().Text()); ageText != "" {
		if age, err := strconv.Atoi(ageText); err == nil {
			t.Age = &age
		}
	}
	t.Nationality = attr(row, "td.zentriert img.flaggenrahmen", "title")
	t.Position = cleanText(row.Find("td table.inline-table tr:nth-of-type(2) td").First().Text())
	t.Club = attr(row, "td img.tiny_wappen", "title")
	t.PlayerImage = imageURL(row, "img.bilderrahmen-fixed")

	if feeLink := row.Find("td.rechts.hauptlink a").First(); feeLink.Length() > 0 {
		feeText := cleanText(feeLink.Text())
		switch {
		case strings.Contains(feeText, "End of loan"):
			t.Fee = "Loan Transfer"
			t.LoanEndDate = cleanText(row.Find("td.rechts.hauptlink i").First().Text())
		case strings.Contains(strings.ToLower(feeText), "loan"):
			t.Fee = "Loan Transfer"
		case strings.Contains(feeText, "€"):
			t.Fee = NormalizeFee(feeText)
		}
	}

	return t, true
}
