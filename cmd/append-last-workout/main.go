// Command append-last-workout appends the most recent Hevy workout to
// .metrics/workouts_data.txt. Same as `hevy-metrics append`.
package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/hevy-metrics/internal/cli"
)

func main() {
	if err := cli.ExecuteCommand("append"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
