package tm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tommhe14/tmkt-api/internal/upstream"
)

const searchPayload = `[
	{"id": 433177, "name": "Bukayo <i>Arsenal FC</i> Saka"},
	{"id": "746366", "name": "Luis Semedo Saka <i>---</i>"}
]`

// newTestService points both upstream clients at one httptest server.
func newTestService(t *testing.T, handler http.Handler, cacheEnabled bool) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := upstream.NewClient(upstream.Options{
		BaseURL:           srv.URL,
		UserAgent:         "test-agent",
		Timeout:           5 * time.Second,
		RequestsPerMinute: 6000,
	}, nil)

	return NewService(Options{
		Client:       client,
		API:          client,
		CacheEnabled: cacheEnabled,
		CacheMaxSize: 100,
	}), srv
}

func TestSearchPlayersSecondCallIsCacheHit(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/spieler/searchSpielerDaten", r.URL.Path)
		require.Equal(t, "saka", r.URL.Query().Get("q"))
		w.Write([]byte(searchPayload))
	}), true)

	ctx := context.Background()

	players, cacheHit, err := svc.SearchPlayers(ctx, "saka")
	require.NoError(t, err)
	require.False(t, cacheHit)
	require.Len(t, players, 2)
	require.Equal(t, "Bukayo Saka", players[0].Name)
	require.Equal(t, "Arsenal FC", players[0].Team)
	require.Equal(t, "Retired", players[1].Team)

	again, cacheHit, err := svc.SearchPlayers(ctx, "saka")
	require.NoError(t, err)
	require.True(t, cacheHit)
	require.Equal(t, players, again)
	require.Equal(t, int32(1), calls.Load(), "the second call must not reach upstream")
}

func TestSearchPlayersDistinctQueriesMiss(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[]`))
	}), true)

	ctx := context.Background()
	_, hit, err := svc.SearchPlayers(ctx, "saka")
	require.NoError(t, err)
	require.False(t, hit)

	_, hit, err = svc.SearchPlayers(ctx, "salah")
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, int32(2), calls.Load())
}

func TestDisabledCacheAlwaysFetches(t *testing.T) {
	var calls atomic.Int32
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(searchPayload))
	}), false)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, hit, err := svc.SearchPlayers(ctx, "saka")
		require.NoError(t, err)
		require.False(t, hit)
	}
	require.Equal(t, int32(3), calls.Load())
}

func TestSearchPlayersUpstreamFailurePassesThrough(t *testing.T) {
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}), true)

	_, cacheHit, err := svc.SearchPlayers(context.Background(), "saka")
	require.Error(t, err)
	require.False(t, cacheHit)
	require.Contains(t, err.Error(), "503")

	// Failures are not cached.
	_, hit, err := svc.SearchPlayers(context.Background(), "saka")
	require.Error(t, err)
	require.False(t, hit)
}

func TestPlayerStatsSeasonsCacheIndependently(t *testing.T) {
	statsPage := `<html><body>
	<div class="data-header__headline-container"><h1>Erling Haaland</h1></div>
	<table class="items"><tbody></tbody></table>
	</body></html>`

	paths := make([]string, 0, 2)
	svc, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		w.Write([]byte(statsPage))
	}), true)

	ctx := context.Background()

	_, hit, err := svc.PlayerStats(ctx, "418560", "2023")
	require.NoError(t, err)
	require.False(t, hit)

	_, hit, err = svc.PlayerStats(ctx, "418560", "2024")
	require.NoError(t, err)
	require.False(t, hit, "another season is another cache key")

	_, hit, err = svc.PlayerStats(ctx, "418560", "2023")
	require.NoError(t, err)
	require.True(t, hit)

	require.Len(t, paths, 2)
	require.Contains(t, paths[0], "saison=2023")
	require.Contains(t, paths[1], "saison=2024")
}
