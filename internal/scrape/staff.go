package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StaffMember is one row of a staff quick-search result table.
type StaffMember struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Position    string `json:"position,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Club        string `json:"club,omitempty"`
	ClubLogo    string `json:"club_logo,omitempty"`
	ContractEnd string `json:"contract_end,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// ExtractStaffSearch reads the staff table out of a quick-search results
// page, identified by its column headers. No matching table means zero
// results.
func ExtractStaffSearch(doc *goquery.Document) ([]StaffMember, error) {
	staff := []StaffMember{}

	doc.Find("table.items").Each(func(_ int, table *goquery.Selection) {
		if !hasHeaders(table, "Name", "Club", "Contract until") {
			return
		}
		table.Find("tr.odd, tr.even").Each(func(_ int, row *goquery.Selection) {
			if member, ok := staffRow(row); ok {
				staff = append(staff, member)
			}
		})
	})

	return staff, nil
}

// staffRow extracts one staff search row; rows without a titled profile
// link are skipped.
func staffRow(row *goquery.Selection) (StaffMember, bool) {
	profileLink := row.Find("a[href][title]").First()
	if profileLink.Length() == 0 {
		return StaffMember{}, false
	}

	member := StaffMember{}
	href, _ := profileLink.Attr("href")
	member.ID = LastPathSegment(href)
	member.Name, _ = profileLink.Attr("title")
	member.PhotoURL, _ = row.Find("img.bilderrahmen-fixed").First().Attr("src")
	member.Nationality = attr(row, "img.flaggenrahmen", "title")
	member.ClubLogo, _ = row.Find("img.tiny_wappen").First().Attr("src")

	if clubLink := findLinkByHref(row, "/verein/"); clubLink != nil {
		member.Club, _ = clubLink.Attr("title")
	}

	rights := row.Find("td.rechts")
	if rights.Length() > 0 {
		member.Position = cleanText(rights.Eq(0).Text())
	}
	if rights.Length() > 1 {
		member.ContractEnd = cleanText(rights.Eq(1).Text())
	}

	return member, true
}

type StaffPersonalInfo struct {
	FullName         string `json:"full_name,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Age              string `json:"age,omitempty"`
	PlaceOfBirth     string `json:"place_of_birth,omitempty"`
	BirthCountryFlag string `json:"birth_country_flag,omitempty"`
	Citizenship      string `json:"citizenship,omitempty"`
	CitizenshipFlag  string `json:"citizenship_flag,omitempty"`
}

type StaffCoachingInfo struct {
	Appointed          string `json:"appointed,omitempty"`
	ContractExpires    string `json:"contract_expires,omitempty"`
	AvgTerm            string `json:"avg_term,omitempty"`
	PreferredFormation string `json:"preferred_formation,omitempty"`
	Licence            string `json:"licence,omitempty"`
}

type StaffClub struct {
	Name string `json:"name,omitempty"`
	ID   string `json:"id,omitempty"`
	Logo string `json:"logo,omitempty"`
}

// StaffProfile is the normalized shape of a staff (manager/coach) profile
// page.
type StaffProfile struct {
	ID           string            `json:"id"`
	PersonalInfo StaffPersonalInfo `json:"personal_info"`
	CoachingInfo StaffCoachingInfo `json:"coaching_info"`
	CurrentClub  StaffClub         `json:"current_club"`
	Agent        *Agent            `json:"agent,omitempty"`
}

// ExtractStaffProfile reads a staff profile page. The header info box is
// the required anchor; the detail table below it is optional.
func ExtractStaffProfile(doc *goquery.Document, staffID string) (*StaffProfile, error) {
	infoBox, err := requireAnchor(doc, "div.data-header__info-box")
	if err != nil {
		return nil, err
	}

	profile := &StaffProfile{ID: staffID}

	infoBox.Find("li.data-header__label").Each(func(_ int, item *goquery.Selection) {
		content := item.Find("span.data-header__content").First()
		if content.Length() == 0 {
			return
		}
		contentText := cleanText(content.Text())

		label, _, _ := strings.Cut(item.Text(), ":")
		switch {
		case strings.Contains(label, "Date of birth"):
			profile.PersonalInfo.DateOfBirth, profile.PersonalInfo.Age = splitDateAge(contentText)
		case strings.Contains(label, "Citizenship"):
			profile.PersonalInfo.Citizenship = contentText
			profile.PersonalInfo.CitizenshipFlag, _ = content.Find("img").First().Attr("src")
		case strings.Contains(label, "Im Amt seit"), strings.Contains(label, "Appointed"):
			profile.CoachingInfo.Appointed = contentText
		case strings.Contains(label, "Vertrag bis"), strings.Contains(label, "Contract until"):
			profile.CoachingInfo.ContractExpires = contentText
		case strings.Contains(label, "Avg. term"):
			profile.CoachingInfo.AvgTerm = contentText
		case strings.Contains(label, "Preferred formation"):
			profile.CoachingInfo.PreferredFormation = contentText
		}
	})

	doc.Find("div.spielerdaten table.auflistung tr").Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}
		key, _, _ := strings.Cut(cleanText(th.Text()), ":")
		value := cleanText(td.Text())

		switch {
		case strings.Contains(key, "Name in home country"):
			profile.PersonalInfo.FullName = value
		case strings.Contains(key, "Place of birth"):
			profile.PersonalInfo.PlaceOfBirth = value
			profile.PersonalInfo.BirthCountryFlag, _ = td.Find("img").First().Attr("src")
		case strings.Contains(key, "Coaching Licence"), strings.Contains(key, "Coaching licence"):
			profile.CoachingInfo.Licence = value
		case strings.Contains(key, "Agent"):
			if link := td.Find("a").First(); link.Length() > 0 {
				href, _ := link.Attr("href")
				profile.Agent = &Agent{
					Name: cleanText(link.Text()),
					ID:   LastPathSegment(href),
				}
			}
		}
	})

	if clubLink := doc.Find("div.data-header__club-info a").First(); clubLink.Length() > 0 {
		profile.CurrentClub.Name, _ = clubLink.Attr("title")
		href, _ := clubLink.Attr("href")
		profile.CurrentClub.ID = ClubIDFromURL(href)
		profile.CurrentClub.Logo, _ = clubLink.Find("img").First().Attr("src")
	}

	return profile, nil
}
