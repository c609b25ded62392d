package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SeasonAllTime is the season sentinel used when no season filter applies.
const SeasonAllTime = "all-time"

type CompetitionRef struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
	Logo string `json:"logo,omitempty"`
}

type StatTotals struct {
	Appearances       string `json:"appearances"`
	Goals             string `json:"goals"`
	Assists           string `json:"assists"`
	YellowCards       string `json:"yellow_cards"`
	SecondYellowCards string `json:"second_yellow_cards"`
	RedCards          string `json:"red_cards"`
	MinutesPlayed     string `json:"minutes_played"`
}

type CompetitionStats struct {
	Competition CompetitionRef `json:"competition"`
	StatTotals
}

// PlayerStats aggregates one stats table: overall totals plus an ordered
// per-competition breakdown.
type PlayerStats struct {
	PlayerID     string             `json:"player_id"`
	Season       string             `json:"season"`
	Total        *StatTotals        `json:"total"`
	Competitions []CompetitionStats `json:"competitions"`
}

// ExtractPlayerStats reads a performance-data page. The stats table is the
// required anchor; a table with no competition rows yields an empty
// breakdown.
func ExtractPlayerStats(doc *goquery.Document, playerID, season string) (*PlayerStats, error) {
	table, err := requireAnchor(doc, "table.items")
	if err != nil {
		return nil, err
	}

	if season == "" {
		season = SeasonAllTime
	}
	stats := &PlayerStats{
		PlayerID:     playerID,
		Season:       season,
		Competitions: []CompetitionStats{},
	}

	totalRow := table.Find("tfoot tr").First()
	if totalRow.Length() > 0 && strings.Contains(totalRow.Text(), "Total") {
		cells := totalRow.Find("td")
		if cells.Length() >= 8 {
			stats.Total = statCells(cells)
		}
	}

	table.Find("tbody tr.odd, tbody tr.even").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 9 {
			return
		}
		comp := CompetitionRef{Name: cleanText(cells.Eq(1).Text())}
		comp.Logo, _ = cells.Eq(0).Find("img").First().Attr("src")
		if href, ok := cells.Eq(1).Find("a").First().Attr("href"); ok {
			comp.ID = LastPathSegment(href)
		}
		stats.Competitions = append(stats.Competitions, CompetitionStats{
			Competition: comp,
			StatTotals:  *statCells(cells),
		})
	})

	return stats, nil
}

// statCells maps the fixed stats column layout onto totals, defaulting
// blank cells to "0".
func statCells(cells *goquery.Selection) *StatTotals {
	at := func(i int) string {
		v := cleanText(cells.Eq(i).Text())
		if v == "" || v == "-" {
			return "0"
		}
		return v
	}
	return &StatTotals{
		Appearances:       at(2),
		Goals:             at(3),
		Assists:           at(4),
		YellowCards:       at(5),
		SecondYellowCards: at(6),
		RedCards:          at(7),
		MinutesPlayed:     at(8),
	}
}
