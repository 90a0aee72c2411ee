package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global CLI flags shared by all subcommands.
	configPath  string  // YAML campaign config path ("" = built-in spring-mass reference)
	logLevel    string  // Log verbosity level
	campaignDir string  // Directory holding split-workflow artifacts
	seed        int64   // Master seed override (-1 = use config value)
	epsilon     float64 // Target precision override (0 = use config value)
	pilotSize   int     // Pilot sample size override (0 = use config value)
	workers     int     // Evaluation fan-out override (0 = use config value)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mlmc-sim",
	Short: "Multi-level Monte Carlo estimation for hierarchies of stochastic models",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// loadConfig resolves the campaign config from --config and applies the
// scalar flag overrides on top.
func loadConfig() *CampaignConfig {
	cfg := DefaultCampaignConfig()
	if configPath != "" {
		loaded, err := LoadCampaignConfig(configPath)
		if err != nil {
			logrus.Fatalf("unable to read campaign config: %v", err)
		}
		cfg = loaded
	}
	if seed >= 0 {
		cfg.Seed = seed
	}
	if epsilon > 0 {
		cfg.Epsilon = epsilon
	}
	if pilotSize > 0 {
		cfg.PilotSize = pilotSize
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid campaign config: %v", err)
	}
	return cfg
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML campaign config (default: built-in spring-mass reference)")
	pf.StringVar(&logLevel, "log-level", "info", "log verbosity: debug, info, warn, error")
	pf.StringVar(&campaignDir, "campaign-dir", "campaign-data", "directory for split-workflow artifacts")
	pf.Int64Var(&seed, "seed", -1, "master seed override")
	pf.Float64Var(&epsilon, "epsilon", 0, "target estimator precision override")
	pf.IntVar(&pilotSize, "pilot", 0, "pilot sample size override")
	pf.IntVar(&workers, "workers", 0, "evaluation fan-out override")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(sweepCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
