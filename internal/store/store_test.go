package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCountries(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)
	require.NotEmpty(t, countries.All())
}

func TestSearchByName(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)

	results := countries.Search("engl")
	require.Len(t, results, 1)
	require.Equal(t, "England", results[0].Name)
	require.Equal(t, 189, results[0].ID)
}

func TestSearchCaseInsensitive(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)

	require.Equal(t, countries.Search("SPAIN"), countries.Search("spain"))
	require.Len(t, countries.Search("SPAIN"), 1)
}

func TestSearchByID(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)

	results := countries.Search("40")
	require.Len(t, results, 1)
	require.Equal(t, "Germany", results[0].Name)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)
	require.Equal(t, countries.All(), countries.Search(""))
}

func TestSearchNoMatch(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)
	require.Empty(t, countries.Search("atlantis"))
}

func TestAllReturnsCopy(t *testing.T) {
	countries, err := LoadCountries()
	require.NoError(t, err)

	all := countries.All()
	all[0].Name = "mutated"
	require.NotEqual(t, "mutated", countries.All()[0].Name)
}
