// Command tmkt is the Transfermarkt query CLI. It talks to upstream
// directly with the same fetchers and extractors as the API server, so
// it needs no running service.
//
// Usage:
//
//	tmkt player search "erling haaland"
//	tmkt player profile 418560
//	tmkt player stats 418560 --season 2024
//	tmkt club squad 281
//	tmkt league table GB1 --season 2024
//	tmkt matches --date 2025-08-30
//	tmkt transfers
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tommhe14/tmkt-api/internal/config"
	"github.com/tommhe14/tmkt-api/internal/tm"
	"github.com/tommhe14/tmkt-api/internal/upstream"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "tmkt",
		Short: "Transfermarkt query CLI",
	}

	root.AddCommand(playerCmd())
	root.AddCommand(clubCmd())
	root.AddCommand(leagueCmd())
	root.AddCommand(staffCmd())
	root.AddCommand(matchesCmd())
	root.AddCommand(transfersCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// player command
// --------------------------------------------------------------------------

func playerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player lookups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <name>",
		Short: "Search players by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				players, _, err := svc.SearchPlayers(ctx, args[0])
				return players, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "profile <playerID>",
		Short: "Player profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				profile, _, err := svc.PlayerProfile(ctx, args[0])
				return profile, err
			})
		},
	})

	statsCmd := &cobra.Command{
		Use:   "stats <playerID>",
		Short: "Player statistics, all-time unless --season is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, _ := cmd.Flags().GetString("season")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				stats, _, err := svc.PlayerStats(ctx, args[0], season)
				return stats, err
			})
		},
	}
	statsCmd.Flags().String("season", "", "Season start year (YYYY)")
	cmd.AddCommand(statsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "transfers <playerID>",
		Short: "Player transfer history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				history, _, err := svc.PlayerTransfers(ctx, args[0])
				return history, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "injuries <playerID>",
		Short: "Player injury history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				injuries, _, err := svc.PlayerInjuries(ctx, args[0])
				return injuries, err
			})
		},
	})

	return cmd
}

// --------------------------------------------------------------------------
// club command
// --------------------------------------------------------------------------

func clubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "club",
		Short: "Club lookups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <name>",
		Short: "Search clubs by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				clubs, _, err := svc.SearchClubs(ctx, args[0])
				return clubs, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "profile <clubID>",
		Short: "Club profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				profile, _, err := svc.ClubProfile(ctx, args[0])
				return profile, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "squad <clubID>",
		Short: "Current squad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				squad, _, err := svc.ClubSquad(ctx, args[0])
				return squad, err
			})
		},
	})

	transfersCmd := &cobra.Command{
		Use:   "transfers <clubID>",
		Short: "Arrivals and departures for a season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, _ := cmd.Flags().GetString("season")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				transfers, _, err := svc.ClubTransfers(ctx, args[0], defaultSeason(season))
				return transfers, err
			})
		},
	}
	transfersCmd.Flags().String("season", "", "Season start year (YYYY)")
	cmd.AddCommand(transfersCmd)

	fixturesCmd := &cobra.Command{
		Use:   "fixtures <clubID>",
		Short: "Season schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, _ := cmd.Flags().GetString("season")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				fixtures, _, err := svc.ClubFixtures(ctx, args[0], defaultSeason(season))
				return fixtures, err
			})
		},
	}
	fixturesCmd.Flags().String("season", "", "Season start year (YYYY)")
	cmd.AddCommand(fixturesCmd)

	return cmd
}

// --------------------------------------------------------------------------
// league command
// --------------------------------------------------------------------------

func leagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "League lookups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <name>",
		Short: "Search competitions by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				leagues, _, err := svc.SearchLeagues(ctx, args[0])
				return leagues, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clubs <leagueCode>",
		Short: "Clubs of a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				clubs, _, err := svc.LeagueClubs(ctx, args[0])
				return clubs, err
			})
		},
	})

	tableCmd := &cobra.Command{
		Use:   "table <leagueCode>",
		Short: "League standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, _ := cmd.Flags().GetString("season")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				table, _, err := svc.LeagueTable(ctx, args[0], defaultSeason(season))
				return table, err
			})
		},
	}
	tableCmd.Flags().String("season", "", "Season start year (YYYY)")
	cmd.AddCommand(tableCmd)

	scorersCmd := &cobra.Command{
		Use:   "scorers <leagueCode>",
		Short: "Top scorers of a league season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, _ := cmd.Flags().GetString("season")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				scorers, _, err := svc.TopScorers(ctx, args[0], defaultSeason(season))
				return scorers, err
			})
		},
	}
	scorersCmd.Flags().String("season", "", "Season start year (YYYY)")
	cmd.AddCommand(scorersCmd)

	leagueTransfersCmd := &cobra.Command{
		Use:   "transfers <leagueCode>",
		Short: "League-wide transfer overview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season, _ := cmd.Flags().GetString("season")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				transfers, _, err := svc.LeagueTransfers(ctx, args[0], defaultSeason(season))
				return transfers, err
			})
		},
	}
	leagueTransfersCmd.Flags().String("season", "", "Season start year (YYYY)")
	cmd.AddCommand(leagueTransfersCmd)

	return cmd
}

// --------------------------------------------------------------------------
// staff command
// --------------------------------------------------------------------------

func staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manager and coach lookups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <name>",
		Short: "Search managers and coaches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				staff, _, err := svc.SearchStaff(ctx, args[0])
				return staff, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "profile <staffID>",
		Short: "Staff profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				profile, _, err := svc.StaffProfile(ctx, args[0])
				return profile, err
			})
		},
	})

	return cmd
}

// --------------------------------------------------------------------------
// matches and transfers commands
// --------------------------------------------------------------------------

func matchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Matches for a day, today unless --date is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				matches, _, err := svc.Matches(ctx, date)
				return matches, err
			})
		},
	}
	cmd.Flags().String("date", "", "Date (YYYY-MM-DD)")
	return cmd
}

func transfersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfers",
		Short: "Latest top-league transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *tm.Service) (interface{}, error) {
				transfers, _, err := svc.LatestTransfers(ctx)
				return transfers, err
			})
		},
	}
}

// defaultSeason picks the season that started most recently when none
// was given. European seasons roll over in July.
func defaultSeason(season string) string {
	if season != "" {
		return season
	}
	now := time.Now()
	year := now.Year()
	if now.Month() < time.July {
		year--
	}
	return strconv.Itoa(year)
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, upstream client construction and context
// cancellation, then prints the result as indented JSON. The cache is
// disabled: a CLI process serves one query and exits.
func run(fn func(ctx context.Context, svc *tm.Service) (interface{}, error)) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	site := upstream.NewClient(upstream.Options{
		BaseURL:           cfg.UpstreamBaseURL,
		UserAgent:         cfg.UpstreamUserAgent,
		Timeout:           cfg.UpstreamTimeout,
		RequestsPerMinute: cfg.UpstreamPerMinute,
	}, logger)
	apiHost := upstream.NewClient(upstream.Options{
		BaseURL:           cfg.UpstreamAPIBaseURL,
		UserAgent:         cfg.UpstreamUserAgent,
		Timeout:           cfg.UpstreamTimeout,
		RequestsPerMinute: cfg.UpstreamPerMinute,
	}, logger)

	svc := tm.NewService(tm.Options{
		Client:       site,
		API:          apiHost,
		CacheEnabled: false,
		CacheMaxSize: cfg.CacheMaxSize,
		Logger:       logger,
	})

	result, err := fn(ctx, svc)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
