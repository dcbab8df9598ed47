// Command mstour reads a slice of coordinate rows and prints an MST-based
// approximate travelling-salesman cycle over them, with its length in miles.
//
// Usage:
//
//	mstour -file CrimeLatLonXY1990.csv -start 0 -end 99
//
// Every flag has an MSTOUR_* environment counterpart (MSTOUR_START,
// MSTOUR_LOG_FORMAT, ...), optionally loaded from a .env file. Flags win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/mstour/metrics"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], ".env", os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mstour: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mstour: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, logger, metrics.NewRecorder()); err != nil {
		logger.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}
