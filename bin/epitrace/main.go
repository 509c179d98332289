package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "epitrace",
	Short:   "Discrete-event SEIR simulator with manual and app-based contact tracing",
	Long:    `epitrace replays a recorded proximity contact log against a stochastic SEIR epidemic model, with optional manual-recall and app-based contact tracing interventions.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file supplying simulation.contact_log_path and the [intervention] table (--contact-log, --p-traced and --p-app take precedence; the other run settings come from flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
