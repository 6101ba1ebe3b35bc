// perft.go - Move path enumeration from the command line
package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// runPerft prints the node count below each root move, then the total.
func runPerft(game *engine.Game, cfg config.PerftConfig, out io.Writer) error {
	workers := resolveWorkers(cfg.Workers)
	logCPUFeatures()

	start := time.Now()
	entries, err := worker.Divide(game, cfg.Depth, worker.WithWorkers(workers))
	if err != nil {
		return err
	}

	var total uint64
	for _, e := range entries {
		fmt.Fprintf(out, "%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(out, "\nNodes searched: %d\n", total)

	slog.Info("perft finished",
		"depth", cfg.Depth,
		"nodes", total,
		"workers", workers,
		"elapsed", time.Since(start))
	return nil
}

// resolveWorkers returns n, or one worker per physical core when n is 0.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	if cores := cpuid.CPU.PhysicalCores; cores > 0 {
		return cores
	}
	return runtime.NumCPU()
}

func logCPUFeatures() {
	slog.Debug("detected CPU features",
		"brand", cpuid.CPU.BrandName,
		"physical_cores", cpuid.CPU.PhysicalCores,
		"logical_cores", cpuid.CPU.LogicalCores,
		"popcnt", cpuid.CPU.Supports(cpuid.POPCNT))
}
