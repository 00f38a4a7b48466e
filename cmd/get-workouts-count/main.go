// Command get-workouts-count writes the Hevy workout count to
// .metrics/workouts_count.txt. Same as `hevy-metrics count`.
package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/hevy-metrics/internal/cli"
)

func main() {
	if err := cli.ExecuteCommand("count"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
