package main

import (
	"fmt"

	"github.com/jsaramak/contact-tracing"
	"github.com/spf13/cobra"
)

// cliConfig bundles the on-disk RunConfig with the disease constants,
// which are fixed and never read from TOML.
type cliConfig struct {
	Simulation   contagiongo.SimulationConfig
	Intervention contagiongo.InterventionParams
	Disease      contagiongo.DiseaseParams
}

func loadRunConfig(cmd *cobra.Command) (*cliConfig, error) {
	cfg := &cliConfig{
		Simulation:   contagiongo.DefaultRunConfig().Simulation,
		Intervention: contagiongo.DefaultInterventionParams(),
		Disease:      contagiongo.DefaultDiseaseParams(),
	}

	if cfgFile != "" {
		loaded, err := contagiongo.LoadConfig(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg.Simulation = loaded.Simulation
		cfg.Intervention = loaded.Intervention
	}

	if path, _ := cmd.Flags().GetString("contact-log"); path != "" {
		cfg.Simulation.ContactLogPath = path
	}
	if cfg.Simulation.ContactLogPath == "" {
		return nil, fmt.Errorf("a contact log is required: pass --contact-log or set simulation.contact_log_path in --config")
	}
	return cfg, nil
}

func buildSinks(cmd *cobra.Command) ([]contagiongo.ResultSink, error) {
	var sinks []contagiongo.ResultSink
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		sinks = append(sinks, contagiongo.NewTSVResultSink(out))
	}
	if sqlitePath, _ := cmd.Flags().GetString("sqlite"); sqlitePath != "" {
		sinks = append(sinks, contagiongo.NewSQLiteResultSink(sqlitePath))
	}
	return sinks, nil
}

func logLevel() contagiongo.LogLevel {
	if verbose {
		return contagiongo.LogLevelDebug
	}
	return contagiongo.LogLevelInfo
}
