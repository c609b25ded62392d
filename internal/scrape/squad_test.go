package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const squadHTML = `
<table class="items">
  <tr><th>#</th><th>Player</th></tr>
  <tr>
    <td>7</td>
    <td class="posrela"></td>
    <td><img data-src="https://img.example/saka.jpg" src="data:image/gif;base64,placeholder"></td>
    <td class="hauptlink">
      <a href="/bukayo-saka/profil/spieler/433177">Bukayo Saka</a>
    </td>
    <td>Right Winger</td>
    <td>Sep 5, 2001 (23)</td>
    <td><img class="flaggenrahmen" title="England"></td>
    <td class="rechts">€150.00m</td>
  </tr>
  <tr>
    <td>8</td>
    <td class="posrela"></td>
    <td><img src="https://img.example/odegaard.jpg"></td>
    <td class="hauptlink">
      <a href="/martin-odegaard/profil/spieler/316264">Martin Ødegaard
        <span class="verletzt-table icons_sprite" title="Ankle Injury"></span>
      </a>
    </td>
    <td>Attacking Midfield</td>
    <td>Dec 17, 1998 (26)</td>
    <td><img class="flaggenrahmen" title="Norway"></td>
    <td class="rechts">€85.00m</td>
  </tr>
  <tr><td colspan="8">footer</td></tr>
</table>`

func TestExtractClubSquad(t *testing.T) {
	squad, err := ExtractClubSquad(doc(t, squadHTML))
	require.NoError(t, err)
	require.Len(t, squad, 2)

	saka := squad[0]
	require.Equal(t, "433177", saka.PlayerID)
	require.Equal(t, "Bukayo Saka", saka.PlayerName)
	require.Equal(t, "7", saka.Number)
	require.Equal(t, "Right Winger", saka.Position)
	require.Equal(t, "Sep 5, 2001 (23)", saka.DateOfBirth)
	require.Equal(t, "€150.00m", saka.MarketValue)
	require.Equal(t, "England", saka.Nationality)
	require.Equal(t, "https://img.example/saka.jpg", saka.Image, "data-src wins over the placeholder src")
	require.Empty(t, saka.InjuryStatus)

	require.Equal(t, "316264", squad[1].PlayerID)
	require.Equal(t, "Ankle Injury", squad[1].InjuryStatus)
}

func TestExtractClubSquadEmptyTable(t *testing.T) {
	squad, err := ExtractClubSquad(doc(t, `<table class="items"><tr><th>Player</th></tr></table>`))
	require.NoError(t, err)
	require.Empty(t, squad)
}

func TestExtractClubSquadNoTable(t *testing.T) {
	squad, err := ExtractClubSquad(doc(t, `<div></div>`))
	require.NoError(t, err)
	require.Empty(t, squad)
}
