package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runCmd executes the whole pipeline in one process: pilot, allocation,
// draws, model evaluation, aggregation.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full MLMC estimation campaign",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		sim, err := cfg.BuildSimulator()
		if err != nil {
			logrus.Fatalf("unable to build simulator: %v", err)
		}

		logrus.Infof("starting campaign: %d levels, pilot=%d, epsilon=%v, seed=%d",
			sim.Hierarchy().Levels(), cfg.PilotSize, cfg.Epsilon, cfg.Seed)
		start := time.Now()

		est, sizes, err := sim.Run(cfg.PilotSize, cfg.Epsilon)
		if err != nil {
			logrus.Fatalf("campaign failed: %v", err)
		}

		fmt.Printf("MLMC estimate:           %v\n", est.Value)
		fmt.Printf("MLMC estimator variance: %v\n", est.Variance)
		fmt.Printf("samples per level:       %v\n", sizes)
		logrus.Infof("campaign complete in %v", time.Since(start))
	},
}
