package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/jsaramak/contact-tracing"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Args:  cobra.NoArgs,
	Short: "Run the full (p_traced, p_app) grid sweep",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().String("contact-log", "", "path to the contact log CSV")
	sweepCmd.Flags().Int64("seed", 1, "base RNG seed; each (cell, replicate) derives its own stream")
	sweepCmd.Flags().Int("iterations", 50, "replicates per grid cell")
	sweepCmd.Flags().Int("threads", 0, "worker count (0 = NumCPU)")
	sweepCmd.Flags().Int("grid-steps", 11, "samples per axis in [0,1]")
	sweepCmd.Flags().String("out", "", "TSV file for sweep output (stdout if empty)")
	sweepCmd.Flags().String("sqlite", "", "SQLite database path; sweep does not ingest into it, it only logs a reminder to load the TSV output with tsv2sqlite")
	sweepCmd.Flags().String("metrics-addr", "", "optional address to serve Prometheus metrics on while the sweep runs, e.g. :9090")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	logger := contagiongo.NewLogger(contagiongo.LoggerConfig{Level: logLevel(), Pretty: true})
	logger.Info().Str("contact_log", cfg.Simulation.ContactLogPath).Msg("loading contact log")

	log, err := contagiongo.LoadContactLog(cfg.Simulation.ContactLogPath)
	if err != nil {
		return fmt.Errorf("loading contact log: %w", err)
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	iterations, _ := cmd.Flags().GetInt("iterations")
	threads, _ := cmd.Flags().GetInt("threads")
	gridSteps, _ := cmd.Flags().GetInt("grid-steps")

	var metrics *contagiongo.SweepMetrics
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		metrics = contagiongo.NewSweepMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Warn().Err(err).Msg("metrics server stopped")
			}
		}()
		logger.Info().Str("addr", addr).Msg("serving sweep metrics")
	}

	sweepCfg := contagiongo.SweepConfig{
		Disease:      cfg.Disease,
		Intervention: cfg.Intervention,
		Iterations:   iterations,
		BaseSeed:     seed,
		Threads:      threads,
		GridSteps:    gridSteps,
		Metrics:      metrics,
	}

	out := os.Stdout
	outPath, _ := cmd.Flags().GetString("out")
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		if err := contagiongo.RunSweep(log, sweepCfg, f); err != nil {
			return fmt.Errorf("running sweep: %w", err)
		}
	} else {
		if err := contagiongo.RunSweep(log, sweepCfg, out); err != nil {
			return fmt.Errorf("running sweep: %w", err)
		}
	}

	if sqlitePath, _ := cmd.Flags().GetString("sqlite"); sqlitePath != "" {
		logger.Info().Str("path", sqlitePath).Msg("sweep TSV written; use the tsv2sqlite tool to ingest it into SQLite")
	}

	logger.Info().Msg("sweep complete")
	return nil
}
