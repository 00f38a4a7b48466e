/*
PURPOSE:
  Defines the 'append' subcommand.
  Logs the most recent workout to the workout log.

REQUIREMENTS:
  User-specified:
  - Fetch exactly one workout, render it, append it.
  - Fail (non-zero exit) when no workout exists.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.AppendLatestWorkout()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load, fetch or write fails.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> Engine.

USAGE:
  hevy-metrics append
  hevy-metrics append -o ./metrics --timezone Europe/Berlin
*/

package cli

import (
	"fmt"
	"time"

	"github.com/daryltucker/hevy-metrics/internal/engine"
	"github.com/spf13/cobra"
)

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append the most recent workout to the workout log",
	Long: `Fetches the latest workout from Hevy and appends a formatted block to
<output-dir>/workouts_data.txt. The directory is created when missing.
Existing content is never modified.`,
	Example: `  # Append using HEVY_API_KEY from the environment or .env
  hevy-metrics append

  # Write into a different directory
  hevy-metrics append -o ./journal`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		res, err := engine.AppendLatestWorkout(ctx, cfg, time.Now)
		if err != nil {
			return fmt.Errorf("appending workout data: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Appended workout %q to %s\n", res.Workout.Title, res.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appendCmd)
}
