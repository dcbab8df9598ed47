package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mstour/bfs"
	"github.com/katalvlaran/mstour/dataset"
	"github.com/katalvlaran/mstour/geom"
	"github.com/katalvlaran/mstour/graph"
	"github.com/katalvlaran/mstour/metrics"
	"github.com/katalvlaran/mstour/tsp"
)

// run executes one approximation and prints the report to out.
func run(cfg Config, out io.Writer, logger zerolog.Logger, rec *metrics.Recorder) error {
	began := time.Now()
	rows, err := dataset.LoadRows(cfg.File, cfg.Start, cfg.End)
	rec.ObserveStage("load", time.Since(began))
	if err != nil {
		rec.Failure("load")
		return err
	}

	points, err := dataset.ParsePoints(rows)
	if err != nil {
		rec.Failure("parse")
		return err
	}
	b := geom.Bounds(points)
	logger.Info().
		Str("file", cfg.File).
		Int("start", cfg.Start).
		Int("end", cfg.End).
		Int("vertices", len(points)).
		Floats64("min", []float64{b.Min.X(), b.Min.Y()}).
		Floats64("max", []float64{b.Max.X(), b.Max.Y()}).
		Msg("Loaded points")

	if cfg.BFS {
		if err := logBFS(points, cfg.Root, logger); err != nil {
			rec.Failure("bfs")
			return err
		}
	}

	began = time.Now()
	res, err := tsp.Approximate(points, tsp.WithRoot(cfg.Root), tsp.WithMethod(cfg.Method))
	rec.ObserveStage("approximate", time.Since(began))
	if err != nil {
		rec.Failure("approximate")
		return err
	}
	rec.Run(cfg.Method, len(points), res.Length, tsp.ToMiles(res.Length), res.MSTWeight)
	logger.Info().
		Str("method", cfg.Method).
		Int("root", res.Root).
		Float64("mst_weight", res.MSTWeight).
		Float64("length", res.Length).
		Str("miles", res.Miles).
		Dur("elapsed", time.Since(began)).
		Msg("Tour computed")

	printReport(out, rows, res)

	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Debug().Str("path", cfg.MetricsFile).Msg("Wrote metrics")
	}
	return nil
}

// logBFS logs the breadth-first visit order of the complete graph over points.
func logBFS(points []geom.Point, root int, logger zerolog.Logger) error {
	g, err := graph.Complete(points)
	if err != nil {
		return err
	}
	res, err := bfs.BFS(g, root)
	if err != nil {
		return err
	}
	logger.Debug().Ints("order", res.Order).Msg("Breadth-first order")
	return nil
}

// printReport writes the processed rows, the cycle and its length in miles.
func printReport(out io.Writer, rows []string, res *tsp.Result) {
	fmt.Fprintln(out, "Crime records Processed:")
	fmt.Fprintln(out)
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Hamiltonian Cycle (not necessarily optimum): %s\n", formatCycle(res.Tour))
	fmt.Fprintf(out, "Length of the Cycle: %s miles\n", res.Miles)
}

// formatCycle renders a tour as "[0, 1, 2, 0]".
func formatCycle(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
