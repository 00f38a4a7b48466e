/*
PURPOSE:
  Defines the 'recent' subcommand.
  Helps debug the API key and see what 'append' would pick up.

REQUIREMENTS:
  Implementation-discovered:
  - Useful validation step before scheduling 'append'.
  - Single page only; no pagination.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Workouts() (via Engine)

ERROR HANDLING:
  - Returns error on bad key, HTTP failure or malformed payload.

IMPLEMENTATION RULES:
  - Simple output to stdout. Writes no files.

USAGE:
  hevy-metrics recent --page-size 3
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/hevy-metrics/internal/config"
	"github.com/daryltucker/hevy-metrics/internal/engine"
	"github.com/daryltucker/hevy-metrics/internal/output"
	"github.com/spf13/cobra"
)

var pageSizeOverride int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent workouts without writing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("page-size") {
			if pageSizeOverride < 1 || pageSizeOverride > config.MaxPageSize {
				return fmt.Errorf("--page-size must be between 1 and %d", config.MaxPageSize)
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if pageSizeOverride > 0 {
			cfg.RecentPageSize = pageSizeOverride
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		e, err := engine.New(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		workouts, err := e.Workouts(ctx, 1, cfg.RecentPageSize)
		if err != nil {
			return fmt.Errorf("listing workouts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}
		for _, w := range workouts {
			start := "?"
			if w.StartTime != nil {
				start = output.FormatTimestamp(*w.StartTime, loc)
			}
			fmt.Fprintf(out, "%s  %s  (%s)\n", start, w.Title, output.FormatDurationHMS(output.WorkoutDuration(w)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().IntVar(&pageSizeOverride, "page-size", 0, "number of workouts to list (1-10, default from config)")
}
