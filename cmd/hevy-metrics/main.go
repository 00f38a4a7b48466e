/*
PURPOSE:
  Entry point for the hevy-metrics application.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Exit code 0 on success, 1 on any handled failure.
  - Errors go to stderr.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o hevy-metrics ./cmd/hevy-metrics
  ./hevy-metrics append
  ./hevy-metrics count

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/hevy-metrics/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
