/*
PURPOSE:
  Defines the root Cobra command for the hevy-metrics CLI.
  Handles global flags and shared config loading.

REQUIREMENTS:
  User-specified:
  - Two independent operations: append the latest workout, save the count.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose Execute() for main.go and ExecuteCommand() for the
    single-purpose binaries.
  - Each run gets a context cancelled on SIGINT/SIGTERM.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/hevy-metrics, cmd/append-last-workout, cmd/get-workouts-count
  - Calls: Child commands (append, count, recent)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

RELATED FILES:
  - cmd/hevy-metrics/main.go
*/

package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/daryltucker/hevy-metrics/internal/config"
	"github.com/daryltucker/hevy-metrics/internal/output"
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	outputDirOverride string
	timezoneOverride  string
	baseURLOverride   string
	debug             bool

	rootCmd = &cobra.Command{
		Use:   "hevy-metrics",
		Short: "Snapshot Hevy workout data into local text files",
		Long: `Pulls data from the Hevy API and writes plain-text files under .metrics/.
Use 'append' to log the latest workout and 'count' to save the workout count.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				output.SetLevel(slog.LevelDebug)
			}
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteCommand runs a single subcommand as if it had been named on the
// command line, passing the remaining process arguments through.
func ExecuteCommand(name string) error {
	rootCmd.SetArgs(append([]string{name}, os.Args[1:]...))
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hevy_metrics.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputDirOverride, "output-dir", "o", "", "directory for output files (default .metrics)")
	rootCmd.PersistentFlags().StringVar(&timezoneOverride, "timezone", "", "IANA timezone for rendered timestamps (default America/Lima)")
	rootCmd.PersistentFlags().StringVar(&baseURLOverride, "base-url", "", "Hevy API base URL")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log request details")
}

// loadConfig loads the config file and environment, applies flag overrides
// and validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if outputDirOverride != "" {
		cfg.OutputDir = outputDirOverride
	}
	if timezoneOverride != "" {
		cfg.Timezone = timezoneOverride
	}
	if baseURLOverride != "" {
		cfg.BaseURL = baseURLOverride
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
