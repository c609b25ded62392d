package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const staffSearchHTML = `
<table class="items">
  <thead><tr><th>Name</th><th>Club</th><th>Contract until</th></tr></thead>
  <tbody>
    <tr class="odd">
      <td>
        <a title="Mikel Arteta" href="/mikel-arteta/profil/trainer/47620">M. Arteta</a>
        <img class="bilderrahmen-fixed" src="https://img.example/arteta.jpg">
      </td>
      <td class="zentriert"><img class="flaggenrahmen" title="Spain"></td>
      <td class="rechts">Manager</td>
      <td class="zentriert">
        <a title="Arsenal FC" href="/fc-arsenal/startseite/verein/11"><img class="tiny_wappen" src="https://img.example/11.png"></a>
      </td>
      <td class="rechts">Jun 30, 2027</td>
    </tr>
    <tr class="even">
      <td>untitled decoration row</td>
    </tr>
  </tbody>
</table>`

func TestExtractStaffSearch(t *testing.T) {
	staff, err := ExtractStaffSearch(doc(t, staffSearchHTML))
	require.NoError(t, err)
	require.Len(t, staff, 1, "rows without a titled link are skipped")

	arteta := staff[0]
	require.Equal(t, "47620", arteta.ID)
	require.Equal(t, "Mikel Arteta", arteta.Name)
	require.Equal(t, "Manager", arteta.Position)
	require.Equal(t, "Spain", arteta.Nationality)
	require.Equal(t, "Arsenal FC", arteta.Club)
	require.Equal(t, "https://img.example/11.png", arteta.ClubLogo)
	require.Equal(t, "Jun 30, 2027", arteta.ContractEnd)
	require.Equal(t, "https://img.example/arteta.jpg", arteta.PhotoURL)
}

func TestExtractStaffSearchWrongTable(t *testing.T) {
	html := `
	<table class="items">
	  <thead><tr><th>Name</th><th>Market value</th></tr></thead>
	  <tbody><tr class="odd"><td><a title="A Player" href="/a/profil/spieler/1">A</a></td></tr></tbody>
	</table>`

	staff, err := ExtractStaffSearch(doc(t, html))
	require.NoError(t, err)
	require.Empty(t, staff, "player result tables are not staff tables")
}

const staffProfileHTML = `
<div class="data-header__info-box">
  <ul class="data-header__items">
    <li class="data-header__label">Date of birth:
      <span class="data-header__content">Mar 26, 1982 (43)</span>
    </li>
    <li class="data-header__label">Citizenship:
      <span class="data-header__content"><img src="https://img.example/es.png"> Spain</span>
    </li>
    <li class="data-header__label">Appointed:
      <span class="data-header__content">Dec 20, 2019</span>
    </li>
    <li class="data-header__label">Contract until:
      <span class="data-header__content">Jun 30, 2027</span>
    </li>
    <li class="data-header__label">Avg. term as coach:
      <span class="data-header__content">5.09 Years</span>
    </li>
    <li class="data-header__label">Preferred formation:
      <span class="data-header__content">4-3-3 Attacking</span>
    </li>
  </ul>
</div>
<div class="data-header__club-info">
  <a title="Arsenal FC" href="/fc-arsenal/startseite/verein/11"><img src="https://img.example/11.png"></a>
</div>
<div class="spielerdaten">
  <table class="auflistung">
    <tr><th>Name in home country:</th><td>Mikel Arteta Amatriain</td></tr>
    <tr><th>Place of birth:</th><td>San Sebastián <img src="https://img.example/es-flag.png"></td></tr>
    <tr><th>Coaching Licence:</th><td>UEFA Pro Licence</td></tr>
    <tr><th>Agent:</th><td><a href="/acta-sports/beraterfirma/berater/1369">ACTA Sports</a></td></tr>
  </table>
</div>`

func TestExtractStaffProfile(t *testing.T) {
	profile, err := ExtractStaffProfile(doc(t, staffProfileHTML), "47620")
	require.NoError(t, err)

	require.Equal(t, "47620", profile.ID)
	require.Equal(t, "Mar 26, 1982", profile.PersonalInfo.DateOfBirth)
	require.Equal(t, "43", profile.PersonalInfo.Age)
	require.Equal(t, "Spain", profile.PersonalInfo.Citizenship)
	require.Equal(t, "https://img.example/es.png", profile.PersonalInfo.CitizenshipFlag)
	require.Equal(t, "Mikel Arteta Amatriain", profile.PersonalInfo.FullName)
	require.Equal(t, "San Sebastián", profile.PersonalInfo.PlaceOfBirth)
	require.Equal(t, "https://img.example/es-flag.png", profile.PersonalInfo.BirthCountryFlag)

	require.Equal(t, "Dec 20, 2019", profile.CoachingInfo.Appointed)
	require.Equal(t, "Jun 30, 2027", profile.CoachingInfo.ContractExpires)
	require.Equal(t, "5.09 Years", profile.CoachingInfo.AvgTerm)
	require.Equal(t, "4-3-3 Attacking", profile.CoachingInfo.PreferredFormation)
	require.Equal(t, "UEFA Pro Licence", profile.CoachingInfo.Licence)

	require.Equal(t, "Arsenal FC", profile.CurrentClub.Name)
	require.Equal(t, "11", profile.CurrentClub.ID)
	require.Equal(t, "https://img.example/11.png", profile.CurrentClub.Logo)

	require.NotNil(t, profile.Agent)
	require.Equal(t, "ACTA Sports", profile.Agent.Name)
	require.Equal(t, "1369", profile.Agent.ID)
}

func TestExtractStaffProfileMissingInfoBox(t *testing.T) {
	_, err := ExtractStaffProfile(doc(t, `<div>not a staff page</div>`), "1")

	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
	require.Equal(t, "div.data-header__info-box", structErr.Anchor)
}

func TestExtractStaffProfileMinimal(t *testing.T) {
	html := `
	<div class="data-header__info-box">
	  <ul><li class="data-header__label">Date of birth:
	    <span class="data-header__content">Jan 1, 1970 (55)</span>
	  </li></ul>
	</div>`

	profile, err := ExtractStaffProfile(doc(t, html), "9")
	require.NoError(t, err)
	require.Equal(t, "Jan 1, 1970", profile.PersonalInfo.DateOfBirth)
	require.Empty(t, profile.CoachingInfo.Appointed)
	require.Empty(t, profile.CurrentClub.ID)
	require.Nil(t, profile.Agent)
}
