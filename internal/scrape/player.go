package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Lifecycle status values for a player profile.
const (
	StatusActive   = "active"
	StatusRetired  = "retired"
	StatusDeceased = "deceased"
)

type Trophy struct {
	Name  string `json:"name"`
	Count string `json:"count"`
	Image string `json:"image,omitempty"`
}

type PlayerClub struct {
	Name   string `json:"name,omitempty"`
	ID     string `json:"id,omitempty"`
	Logo   string `json:"logo,omitempty"`
	League string `json:"league,omitempty"`
}

type Agent struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
}

type International struct {
	Country   string `json:"country,omitempty"`
	CountryID string `json:"country_id,omitempty"`
	Caps      string `json:"caps,omitempty"`
	Goals     string `json:"goals,omitempty"`
}

// PlayerProfile is the normalized shape of a player profile page.
type PlayerProfile struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name,omitempty"`
	ShirtNumber           string         `json:"shirt_number,omitempty"`
	Club                  PlayerClub     `json:"club"`
	MarketValue           string         `json:"market_value,omitempty"`
	MarketValueLastUpdate string         `json:"market_value_last_update,omitempty"`
	ProfileImage          string         `json:"profile_image,omitempty"`
	Position              string         `json:"position,omitempty"`
	Age                   string         `json:"age,omitempty"`
	BirthDate             string         `json:"birth_date,omitempty"`
	BirthPlace            string         `json:"birth_place,omitempty"`
	Nationality           string         `json:"nationality,omitempty"`
	Height                string         `json:"height,omitempty"`
	Agent                 *Agent         `json:"agent,omitempty"`
	JoinedDate            string         `json:"joined_date,omitempty"`
	ContractExpires       string         `json:"contract_expires,omitempty"`
	International         *International `json:"international,omitempty"`
	Trophies              []Trophy       `json:"trophies"`
	Status                string         `json:"status"`
}

// ExtractPlayerProfile reads a player profile page. The data header is the
// required anchor; every other field is optional.
func ExtractPlayerProfile(doc *goquery.Document, playerID string) (*PlayerProfile, error) {
	header, err := requireAnchor(doc, "header.data-header")
	if err != nil {
		return nil, err
	}

	p := &PlayerProfile{ID: playerID, Trophies: []Trophy{}}

	p.ShirtNumber = strings.TrimPrefix(text(header, "span.data-header__shirt-number"), "#")
	if headline := header.Find("h1.data-header__headline-wrapper").First(); headline.Length() > 0 {
		name := headline.Text()
		if p.ShirtNumber != "" {
			name = strings.ReplaceAll(name, "#"+p.ShirtNumber, "")
		}
		p.Name = cleanText(name)
	}

	clubSpan := header.Find("span.data-header__club").First()
	p.Club.Name = cleanText(clubSpan.Text())
	p.Club.ID = LastPathSegment(attr(clubSpan, "a", "href"))
	p.Club.League = text(header, "span.data-header__league")
	if logo := header.Find("a.data-header__box__club-link img").First(); logo.Length() > 0 {
		if srcset, ok := logo.Attr("srcset"); ok {
			p.Club.Logo = strings.Fields(srcset)[0]
		} else {
			p.Club.Logo, _ = logo.Attr("src")
		}
	}

	if box := header.Find("div.data-header__box--small").First(); box.Length() > 0 {
		value, _, _ := strings.Cut(cleanText(box.Text()), "Last update:")
		p.MarketValue = strings.TrimSpace(value)
		update := cleanText(box.Find("p.data-header__last-update").Text())
		if i := strings.LastIndex(update, "Last update:"); i >= 0 {
			update = strings.TrimSpace(update[i+len("Last update:"):])
		}
		p.MarketValueLastUpdate = update
	}

	p.ProfileImage, _ = header.Find("img.data-header__profile-image").First().Attr("src")
	p.BirthDate, p.Age = splitDateAge(text(header, "span[itemprop=birthDate]"))
	p.BirthPlace = text(header, "span[itemprop=birthPlace]")
	p.Nationality = text(header, "span[itemprop=nationality]")
	p.Height = labeledItemContent(header, "Height:", "span[itemprop=height]")
	p.Position = labeledItemContent(header, "Position:", "span.data-header__content")
	p.JoinedDate = labeledContent(header, "Joined:")
	p.ContractExpires = labeledContent(header, "Contract expires:")

	if agentLink := findLinkByHref(header, "beraterfirma"); agentLink != nil {
		href, _ := agentLink.Attr("href")
		p.Agent = &Agent{
			Name: strings.TrimSpace(strings.ReplaceAll(cleanText(agentLink.Text()), ".", "")),
			ID:   LastPathSegment(href),
		}
	}

	p.International = extractInternational(header)

	header.Find(".data-header__success-data").Each(func(_ int, s *goquery.Selection) {
		img := s.Find("img").First()
		count := text(s, "span.data-header__success-number")
		if img.Length() == 0 || count == "" {
			return
		}
		title, _ := img.Attr("title")
		src, _ := img.Attr("src")
		p.Trophies = append(p.Trophies, Trophy{
			Name:  strings.TrimSuffix(title, " winner"),
			Count: count,
			Image: src,
		})
	})

	switch {
	case header.Find("div.dataRibbonRIP").Length() > 0:
		p.Status = StatusDeceased
	case strings.Contains(doc.Text(), "Retired") || strings.Contains(doc.Text(), "Former International"):
		p.Status = StatusRetired
	default:
		p.Status = StatusActive
	}

	return p, nil
}

// extractInternational reads the current/former international block from a
// profile header: the country link plus a sibling caps/goals label.
func extractInternational(header *goquery.Selection) *International {
	var intl *International
	header.Find("ul.data-header__items li").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label := s.Text()
		if !strings.Contains(label, "Current international") && !strings.Contains(label, "Former International") {
			return true
		}

		intl = &International{}
		if link := s.Find("a").First(); link.Length() > 0 {
			intl.Country = cleanText(link.Text())
			href, _ := link.Attr("href")
			intl.CountryID = LastPathSegment(href)
		}

		capsItem := s.NextFiltered("li.data-header__label").First()
		if capsItem.Length() > 0 && strings.Contains(capsItem.Text(), "Caps/Goals") {
			highlights := capsItem.Find("a.data-header__content--highlight")
			if highlights.Length() >= 2 {
				intl.Caps = cleanText(highlights.Eq(0).Text())
				intl.Goals = cleanText(highlights.Eq(1).Text())
			}
		}
		return false
	})
	return intl
}

// labeledContent finds the content span belonging to a "Label:" marker in
// a data header. Evaluated uniformly for every labeled field so missing
// labels simply yield an empty string.
func labeledContent(root *goquery.Selection, label string) string {
	return labeledItemContent(root, label, "span.data-header__content")
}

func labeledItemContent(root *goquery.Selection, label, contentSel string) string {
	var out string
	root.Find("li.data-header__label, span.data-header__label").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), label) {
			return true
		}
		content := s.Find(contentSel).First()
		if content.Length() == 0 {
			content = s.NextFiltered(contentSel).First()
		}
		out = cleanText(content.Text())
		return false
	})
	return out
}

// findLinkByHref returns the first anchor under root whose href contains
// marker, or nil.
func findLinkByHref(root *goquery.Selection, marker string) *goquery.Selection {
	var found *goquery.Selection
	root.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.Contains(href, marker) {
			found = s
			return false
		}
		return true
	})
	return found
}
