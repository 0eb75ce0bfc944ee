package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apiad/pydock/internal/cli"
	"github.com/apiad/pydock/internal/engine"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New()
	app.SetVersion(version, commit, date)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// Engine failures keep their exit code; usage and local
		// errors exit 2.
		var exitErr *engine.ExitError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		os.Exit(2)
	}
}
