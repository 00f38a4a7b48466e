package cli

import (
	"fmt"

	"github.com/daryltucker/hevy-metrics/internal/engine"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Save the total workout count",
	Long: `Fetches the workout count from Hevy and overwrites
<output-dir>/workouts_count.txt with it (no trailing newline).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		res, err := engine.SaveWorkoutCount(ctx, cfg)
		if err != nil {
			return fmt.Errorf("fetching workouts count: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved workout_count=%d to %s\n", res.Count, res.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
