package main

import (
	"fmt"

	"github.com/jsaramak/contact-tracing"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run one replicate and print its outcome",
	RunE:  runOne,
}

func init() {
	runCmd.Flags().String("contact-log", "", "path to the contact log CSV (required unless --config sets simulation.contact_log_path)")
	runCmd.Flags().Int64("seed", 1, "RNG seed")
	runCmd.Flags().Float64("p-traced", -1, "override intervention.p_traced")
	runCmd.Flags().Float64("p-app", -1, "override intervention.p_app")
	runCmd.Flags().String("out", "", "TSV file to append the result to (printed to stdout if empty)")
	runCmd.Flags().String("sqlite", "", "optional SQLite database to also ingest the result into")
}

func runOne(cmd *cobra.Command, args []string) error {
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

	if v, _ := cmd.Flags().GetFloat64("p-traced"); v >= 0 {
		cfg.Intervention.PTraced = v
	}
	if v, _ := cmd.Flags().GetFloat64("p-app"); v >= 0 {
		cfg.Intervention.PApp = v
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	rng := contagiongo.NewGlobalRNG(seed)

	result, err := contagiongo.RunSimulation(log, cfg.Disease, cfg.Intervention, rng)
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}
	logger.Info().
		Int("total_infected", result.TotalInfected).
		Int("quarantines", result.Quarantines).
		Int("false_quarantines", result.FalseQuarantines).
		Msg("replicate finished")

	rec := contagiongo.NewResultRecord(cfg.Intervention.PTraced, cfg.Intervention.PApp, result)

	sinks, err := buildSinks(cmd)
	if err != nil {
		return err
	}
	for _, s := range sinks {
		if err := s.Init(); err != nil {
			return err
		}
		if err := s.Write(rec); err != nil {
			return err
		}
		if err := s.Close(); err != nil {
			return err
		}
	}
	if len(sinks) == 0 {
		fmt.Printf("run_id\tp_traced\tp_app\tI\tq\tfq\n%s\t%g\t%g\t%d\t%d\t%d\n",
			rec.RunID, rec.PTraced, rec.PApp, result.TotalInfected, result.Quarantines, result.FalseQuarantines)
	}
	return nil
}
