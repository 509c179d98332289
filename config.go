package contagiongo

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// SimulationConfig holds the run-level knobs that are not themselves
// disease or intervention parameters (spec.md §6 config schema, C10).
type SimulationConfig struct {
	ContactLogPath string `toml:"contact_log_path"`
	Seed           int64  `toml:"seed"`
	Iterations     int    `toml:"iterations"`
	Threads        int    `toml:"threads"`
	GridSteps      int    `toml:"grid_steps"`
	OutputPath     string `toml:"output_path"`
	SQLitePath     string `toml:"sqlite_path"`
}

// RunConfig is the on-disk TOML document accepted by both the `run` and
// `sweep` subcommands (spec.md §6): a `[simulation]` table and an
// `[intervention]` table, mirrored after the teacher's loader.go /
// evoepi_config_loader.go split between a simulation-level table and a
// model-parameter table.
type RunConfig struct {
	Simulation   SimulationConfig   `toml:"simulation"`
	Intervention InterventionParams `toml:"intervention"`
}

// DefaultRunConfig returns a config with every field set to the
// reference sweep's defaults (spec.md §6), suitable as the decode
// target so unset TOML fields fall back sanely instead of zeroing out.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Simulation: SimulationConfig{
			Seed:       1,
			Iterations: 50,
			Threads:    0,
			GridSteps:  11,
			OutputPath: "-",
		},
		Intervention: DefaultInterventionParams(),
	}
}

// LoadConfig reads and validates a TOML run configuration at path.
func LoadConfig(path string) (*RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	cfg.Intervention.resolveDurations()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating config %s", path)
	}
	return &cfg, nil
}

// Validate checks every simulation- and intervention-level field,
// failing fast before any agent is constructed (spec.md §7).
func (c *RunConfig) Validate() error {
	if c.Simulation.ContactLogPath == "" {
		return errors.New("simulation.contact_log_path must be set")
	}
	if c.Simulation.Iterations <= 0 {
		return invalidIntError("simulation.iterations", c.Simulation.Iterations, "must be positive")
	}
	if c.Simulation.GridSteps < 2 {
		return invalidIntError("simulation.grid_steps", c.Simulation.GridSteps, "must be at least 2")
	}
	if c.Simulation.Threads < 0 {
		return invalidIntError("simulation.threads", c.Simulation.Threads, "must be non-negative")
	}
	return c.Intervention.Validate()
}
