package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const playerStatsHTML = `
<table class="items">
  <tbody>
    <tr class="odd">
      <td><img src="https://img.example/gb1.png"></td>
      <td><a href="/premier-league/startseite/wettbewerb/GB1">Premier League</a></td>
      <td>35</td><td>16</td><td>9</td><td>5</td><td></td><td>1</td><td>2.951'</td>
    </tr>
    <tr class="even">
      <td><img src="https://img.example/cl.png"></td>
      <td><a href="/uefa-champions-league/startseite/wettbewerb/CL">Champions League</a></td>
      <td>10</td><td>3</td><td>4</td><td>1</td><td></td><td></td><td>812'</td>
    </tr>
  </tbody>
  <tfoot>
    <tr>
      <td></td><td>Total:</td>
      <td>45</td><td>19</td><td>13</td><td>6</td><td></td><td>1</td><td>3.763'</td>
    </tr>
  </tfoot>
</table>`

func TestExtractPlayerStats(t *testing.T) {
	stats, err := ExtractPlayerStats(doc(t, playerStatsHTML), "433177", "2024")
	require.NoError(t, err)

	require.Equal(t, "433177", stats.PlayerID)
	require.Equal(t, "2024", stats.Season)

	require.NotNil(t, stats.Total)
	require.Equal(t, "45", stats.Total.Appearances)
	require.Equal(t, "19", stats.Total.Goals)
	require.Equal(t, "13", stats.Total.Assists)
	require.Equal(t, "6", stats.Total.YellowCards)
	require.Equal(t, "0", stats.Total.SecondYellowCards)
	require.Equal(t, "1", stats.Total.RedCards)
	require.Equal(t, "3.763'", stats.Total.MinutesPlayed)

	require.Len(t, stats.Competitions, 2)
	require.Equal(t, "Premier League", stats.Competitions[0].Competition.Name)
	require.Equal(t, "GB1", stats.Competitions[0].Competition.ID)
	require.Equal(t, "https://img.example/gb1.png", stats.Competitions[0].Competition.Logo)
	require.Equal(t, "35", stats.Competitions[0].Appearances)
	require.Equal(t, "Champions League", stats.Competitions[1].Competition.Name)
	require.Equal(t, "0", stats.Competitions[1].RedCards, "blank cells default to 0")
}

func TestExtractPlayerStatsAllTimeSentinel(t *testing.T) {
	stats, err := ExtractPlayerStats(doc(t, playerStatsHTML), "433177", "")
	require.NoError(t, err)
	require.Equal(t, SeasonAllTime, stats.Season)
}

func TestExtractPlayerStatsNoCompetitionRows(t *testing.T) {
	html := `<table class="items"><tbody></tbody></table>`

	stats, err := ExtractPlayerStats(doc(t, html), "1", "2024")
	require.NoError(t, err)
	require.Nil(t, stats.Total)
	require.Empty(t, stats.Competitions, "absent rows mean an empty breakdown, not an error")
}

func TestExtractPlayerStatsMissingTable(t *testing.T) {
	_, err := ExtractPlayerStats(doc(t, `<div>no table here</div>`), "1", "")

	var structErr *StructureError
	require.ErrorAs(t, err, &structErr)
}
