package scrape

import (
	"github.com/PuerkitoBio/goquery"
)

// Match status values derived from the livescore markup.
const (
	MatchLive      = "live"
	MatchFinished  = "finished"
	MatchScheduled = "scheduled"
)

type MatchCompetition struct {
	Name  string `json:"name,omitempty"`
	Stage string `json:"stage,omitempty"`
	Logo  string `json:"logo,omitempty"`
	ID    string `json:"id,omitempty"`
}

type MatchTeam struct {
	Name string `json:"name,omitempty"`
	Logo string `json:"logo,omitempty"`
	ID   string `json:"id,omitempty"`
}

// Match is one livescore row, grouped under its competition section.
type Match struct {
	MatchID     string           `json:"match_id,omitempty"`
	Competition MatchCompetition `json:"competition"`
	HomeTeam    MatchTeam        `json:"home_team"`
	AwayTeam    MatchTeam        `json:"away_team"`
	Status      string           `json:"status"`
	TimeOrScore string           `json:"time_or_score,omitempty"`
	Minute      string           `json:"minute,omitempty"`
}

// ExtractMatches reads the livescore page: one section per competition,
// each followed by its fixture table. A day without matches renders no
// sections and yields an empty list.
func ExtractMatches(doc *goquery.Document) ([]Match, error) {
	matches := []Match{}

	doc.Find("div.kategorie").Each(func(_ int, section *goquery.Selection) {
		competition := MatchCompetition{
			Name: text(section, "h2 a"),
			Logo: imageURL(section, "h2 img.lazy"),
		}
		if href, ok := section.Find("h2 a").First().Attr("href"); ok {
			competition.ID = LastPathSegment(href)
		}

		table := section.NextAllFiltered("table.livescore").First()
		if table.Length() == 0 {
			table = section.Find("table.livescore").First()
		}

		table.Find("tr.begegnungZeile").Each(func(_ int, row *goquery.Selection) {
			m := Match{Competition: competition}
			m.MatchID, _ = row.Attr("id")
			m.Competition.Stage = cleanText(row.Find("td.zeit").First().Text())

			result := row.Find("span.matchresult").First()
			switch {
			case row.Find("span.live-ergebnis").Length() > 0:
				m.Status = MatchLive
				m.Minute = cleanText(row.Find("span.live-ergebnis").First().Text())
			case result.HasClass("finished"):
				m.Status = MatchFinished
			default:
				m.Status = MatchScheduled
			}
			m.TimeOrScore = cleanText(result.Text())

			m.HomeTeam = matchTeam(row, "td.verein-heim")
			m.AwayTeam = matchTeam(row, "td.verein-gast")

			matches = append(matches, m)
		})
	})

	return matches, nil
}

func matchTeam(row *goquery.Selection, cellSel string) MatchTeam {
	cell := row.Find(cellSel).First()
	team := MatchTeam{
		Logo: imageURL(cell, "img"),
	}
	if link := cell.Find("a").First(); link.Length() > 0 {
		team.Name = cleanText(link.Text())
		href, _ := link.Attr("href")
		team.ID = ClubIDFromURL(href)
	}
	return team
}
