package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Cell indices count every td in document order, nested inline-table
// cells included, matching the upstream layout.
const topScorersHTML = `
<table class="items">
  <thead><tr><th>#</th><th>Player</th></tr></thead>
  <tbody>
    <tr class="odd">
      <td class="zentriert">1</td>
      <td>
        <table class="inline-table">
          <tr><td><img class="bilderrahmen-fixed" data-src="https://img.example/salah.jpg"></td>
              <td class="hauptlink"><a title="Mohamed Salah" href="/mohamed-salah/profil/spieler/148455">M. Salah</a></td></tr>
          <tr><td>Right Winger</td></tr>
        </table>
      </td>
      <td class="zentriert"><img class="flaggenrahmen" title="Egypt"></td>
      <td class="zentriert">32</td>
      <td class="zentriert"><a title="Liverpool FC" href="/fc-liverpool/startseite/verein/31"><img src="https://img.example/31.png"></a></td>
      <td class="zentriert">19</td>
      <td class="zentriert">17</td>
    </tr>
    <tr class="even">
      <td class="zentriert" colspan="10">advertisement</td>
    </tr>
  </tbody>
</table>`

func TestExtractTopScorers(t *testing.T) {
	scorers, err := ExtractTopScorers(doc(t, topScorersHTML))
	require.NoError(t, err)
	require.Len(t, scorers, 1, "rows without an inline player table are skipped")

	salah := scorers[0]
	require.Equal(t, "1", salah.Rank)
	require.Equal(t, "Mohamed Salah", salah.Name)
	require.Equal(t, "Right Winger", salah.Position)
	require.Equal(t, []string{"Egypt"}, salah.Nationality)
	require.Equal(t, "32", salah.Age)
	require.Equal(t, "Liverpool FC", salah.Club)
	require.Equal(t, "https://img.example/31.png", salah.ClubLogo)
	require.Equal(t, "19", salah.Appearances)
	require.Equal(t, "17", salah.Goals)
	require.Equal(t, "https://img.example/salah.jpg", salah.PhotoURL)
}

func TestExtractTopScorersDualNationality(t *testing.T) {
	html := `
	<table class="items">
	  <tbody>
	    <tr class="odd">
	      <td>1</td>
	      <td><table class="inline-table">
	        <tr><td><img class="bilderrahmen-fixed" src="https://img.example/p.jpg"></td>
	            <td><a title="Player" href="/p/profil/spieler/1">P</a></td></tr>
	        <tr><td>Centre-Forward</td></tr>
	      </table></td>
	      <td><img class="flaggenrahmen" title="France"><img class="flaggenrahmen" title="Senegal"></td>
	      <td>25</td>
	      <td></td>
	      <td>10</td>
	      <td>8</td>
	    </tr>
	  </tbody>
	</table>`

	scorers, err := ExtractTopScorers(doc(t, html))
	require.NoError(t, err)
	require.Len(t, scorers, 1)
	require.Equal(t, []string{"France", "Senegal"}, scorers[0].Nationality)
	require.Equal(t, "25", scorers[0].Age)
	require.Equal(t, "8", scorers[0].Goals)
}

func TestExtractTopScorersNoTable(t *testing.T) {
	scorers, err := ExtractTopScorers(doc(t, `<div></div>`))
	require.NoError(t, err)
	require.Empty(t, scorers)
}
