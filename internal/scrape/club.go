package scrape

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ClubSearchResult is one row of the club quick-search endpoint.
type ClubSearchResult struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	MarketValue string      `json:"market_value"`
}

// ExtractClubSearch parses the club quick-search JSON payload. Name fields
// carry a "~"-separated suffix that is dropped.
func ExtractClubSearch(raw []byte) ([]ClubSearchResult, error) {
	var entries []struct {
		ID   json.Number `json:"id"`
		Name string      `json:"name"`
		MW   string      `json:"mw"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode club search payload: %w", err)
	}

	clubs := make([]ClubSearchResult, 0, len(entries))
	for _, entry := range entries {
		name, _, _ := strings.Cut(entry.Name, "~")
		mv := entry.MW
		if mv == "" {
			mv = "Unknown"
		}
		clubs = append(clubs, ClubSearchResult{
			ID:          entry.ID,
			Name:        strings.TrimSpace(name),
			MarketValue: mv,
		})
	}
	return clubs, nil
}

type LeagueRef struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
}

type Foreigners struct {
	Count      string `json:"count,omitempty"`
	Percentage string `json:"percentage,omitempty"`
}

type SquadInfo struct {
	Size            string     `json:"size,omitempty"`
	AverageAge      string     `json:"average_age,omitempty"`
	Foreigners      Foreigners `json:"foreigners"`
	NationalPlayers string     `json:"national_players,omitempty"`
}

type Stadium struct {
	Name     string `json:"name,omitempty"`
	Capacity string `json:"capacity,omitempty"`
}

// ClubProfile is the normalized shape of a club profile page.
type ClubProfile struct {
	ClubID         string    `json:"club_id"`
	Name           string    `json:"name,omitempty"`
	Logo           string    `json:"logo,omitempty"`
	Trophies       []Trophy  `json:"trophies"`
	League         LeagueRef `json:"league"`
	SquadInfo      SquadInfo `json:"squad_info"`
	Stadium        Stadium   `json:"stadium"`
	TransferRecord string    `json:"transfer_record,omitempty"`
	MarketValue    string    `json:"market_value,omitempty"`
}

// ExtractClubProfile reads a club profile page. The data header is the
// required anchor.
func ExtractClubProfile(doc *goquery.Document, clubID string) (*ClubProfile, error) {
	header, err := requireAnchor(doc, "header.data-header")
	if err != nil {
		return nil, err
	}

	club := &ClubProfile{ClubID: clubID, Trophies: []Trophy{}}
	club.Name = text(header, "h1.data-header__headline-wrapper")

	header.Find("img[src]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if strings.Contains(src, "wappen/head") {
			club.Logo = src
			return false
		}
		return true
	})

	header.Find(".data-header__success-data").Each(func(_ int, s *goquery.Selection) {
		img := s.Find("img").First()
		count := text(s, "span.data-header__success-number")
		if img.Length() == 0 || count == "" {
			return
		}
		title, _ := img.Attr("title")
		src, _ := img.Attr("data-src")
		club.Trophies = append(club.Trophies, Trophy{Name: title, Count: count, Image: src})
	})

	if leagueLink := header.Find("span.data-header__club a").First(); leagueLink.Length() > 0 {
		club.League.Name = cleanText(leagueLink.Text())
		href, _ := leagueLink.Attr("href")
		club.League.ID = LastPathSegment(href)
	}

	header.Find("div.data-header__details li.data-header__label").Each(func(_ int, item *goquery.Selection) {
		label := item.Text()
		switch {
		case strings.Contains(label, "Squad size:"):
			club.SquadInfo.Size = text(item, "span.data-header__content")
		case strings.Contains(label, "Average age:"):
			club.SquadInfo.AverageAge = text(item, "span.data-header__content")
		case strings.Contains(label, "Foreigners:"):
			club.SquadInfo.Foreigners.Count = text(item, "a")
			club.SquadInfo.Foreigners.Percentage = text(item, "span.tabellenplatz")
		case strings.Contains(label, "National team players:"):
			club.SquadInfo.NationalPlayers = text(item, "a")
		case strings.Contains(label, "Stadium:"):
			club.Stadium.Name = attr(item, "a", "title")
			club.Stadium.Capacity = text(item, "span.tabellenplatz")
		case strings.Contains(label, "Current transfer record:"):
			club.TransferRecord = text(item, "a")
		}
	})

	if mv := header.Find("a.data-header__market-value-wrapper").First(); mv.Length() > 0 {
		value := cleanText(mv.Text())
		if update := cleanText(mv.Find("p.data-header__last-update").Text()); update != "" {
			value = cleanText(strings.ReplaceAll(value, update, ""))
		}
		club.MarketValue = value
	}

	return club, nil
}

// ExtractClubName reads just the display name from a club profile page,
// used to enrich transfer records that only carry club identifiers.
func ExtractClubName(doc *goquery.Document) (string, error) {
	headline, err := requireAnchor(doc, "h1.data-header__headline-wrapper")
	if err != nil {
		return "", err
	}
	return cleanText(headline.Text()), nil
}
