// Command glucosectl imports the dashboard datasets into Postgres and prints
// chart data without running the API.
package main

import (
	"os"

	"github.com/blaisecz/glucose-dashboard/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
