package scrape

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

const leagueTableHTML = `
<table class="items">
  <thead><tr><th>#</th><th>Club</th></tr></thead>
  <tbody>
    <tr>
      <td class="rechts">1 <span title="Position unchanged"></span></td>
      <td class="no-border-rechts"><img class="tiny_wappen" src="https://img.example/31.png"></td>
      <td class="no-border-links hauptlink"><a title="Liverpool FC" href="/fc-liverpool/spielplan/verein/31/saison_id/2024">Liverpool</a></td>
      <td class="zentriert">19</td>
      <td class="zentriert">13</td>
      <td class="zentriert">5</td>
      <td class="zentriert">1</td>
      <td class="zentriert">44:17</td>
      <td class="zentriert">27</td>
      <td class="zentriert">44</td>
    </tr>
    <tr>
      <td class="rechts">2 <span title="Moved up"></span></td>
      <td class="no-border-rechts"><img class="tiny_wappen" src="https://img.example/11.png"></td>
      <td class="no-border-links hauptlink"><a title="Arsenal FC" href="/fc-arsenal/spielplan/verein/11/saison_id/2024">Arsenal</a></td>
      <td class="zentriert">19</td>
      <td class="zentriert">11</td>
      <td class="zentriert">6</td>
      <td class="zentriert">2</td>
      <td class="zentriert">36:15</td>
      <td class="zentriert">21</td>
      <td class="zentriert">39</td>
    </tr>
  </tbody>
</table>`

func TestExtractLeagueTable(t *testing.T) {
	rows, err := ExtractLeagueTable(doc(t, leagueTableHTML))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	top := rows[0]
	require.Equal(t, "1", top.Position)
	require.Equal(t, "Position unchanged", top.PositionChange)
	require.Equal(t, "31", top.TeamID)
	require.Equal(t, "Liverpool FC", top.Team)
	require.Equal(t, "https://img.example/31.png", top.TeamLogo)
	require.Equal(t, "19", top.MatchesPlayed)
	require.Equal(t, "13", top.Wins)
	require.Equal(t, "5", top.Draws)
	require.Equal(t, "1", top.Losses)
	require.Equal(t, "44:17", top.Goals)
	require.Equal(t, "27", top.GoalDifference)
	require.Equal(t, "44", top.Points)

	require.Equal(t, "2", rows[1].Position)
	require.Equal(t, "Arsenal FC", rows[1].Team)
}

func TestExtractLeagueTablePositionsAscend(t *testing.T) {
	rows, err := ExtractLeagueTable(doc(t, leagueTableHTML))
	require.NoError(t, err)

	prev := 0
	for _, row := range rows {
		pos, err := strconv.Atoi(row.Position)
		require.NoError(t, err)
		require.Greater(t, pos, prev, "standings keep upstream order")
		prev = pos
	}
}

func TestExtractLeagueTableNoTable(t *testing.T) {
	rows, err := ExtractLeagueTable(doc(t, `<div>season not played</div>`))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestExtractLeagueTableSkipsHeaderRows(t *testing.T) {
	html := `
	<table class="items">
	  <thead><tr><th>#</th></tr></thead>
	  <tbody><tr><td class="rechts"></td><td class="zentriert">x</td></tr></tbody>
	</table>`

	rows, err := ExtractLeagueTable(doc(t, html))
	require.NoError(t, err)
	require.Empty(t, rows, "rows without a position number are spacers")
}
