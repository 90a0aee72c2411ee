package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

var sweepEpsilons []float64

// sweepCmd reruns allocation and estimation over a list of target precisions
// on one simulator instance. One pilot is shared across the whole sweep;
// every other stage is a pure function of its arguments, so the sweep
// demonstrates that repeated experiments on one simulator do not bleed state.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Estimate at several target precisions using one shared pilot",
	Run: func(cmd *cobra.Command, args []string) {
		if len(sweepEpsilons) == 0 {
			logrus.Fatalf("no epsilons given; pass --epsilons")
		}
		cfg := loadConfig()
		sim, err := cfg.BuildSimulator()
		if err != nil {
			logrus.Fatalf("unable to build simulator: %v", err)
		}

		costs, variances, err := sim.EstimateCostsAndVariances(cfg.PilotSize)
		if err != nil {
			logrus.Fatalf("pilot failed: %v", err)
		}

		fmt.Printf("%-12s %-20s %-24s %s\n", "epsilon", "estimate", "estimator variance", "samples per level")
		for _, eps := range sweepEpsilons {
			sizes, allocErr := mlmc.AllocateSamples(costs, variances, eps)
			if allocErr != nil {
				logrus.Fatalf("allocation for epsilon=%v failed: %v", eps, allocErr)
			}
			inputs, prepErr := sim.PrepareInputs(sizes)
			if prepErr != nil {
				logrus.Fatalf("input preparation for epsilon=%v failed: %v", eps, prepErr)
			}
			outputs := make(map[int][]mlmc.Output, len(sizes))
			for l := range sizes {
				ys, evalErr := sim.EvaluateLevel(l, inputs[l])
				if evalErr != nil {
					logrus.Fatalf("evaluation for epsilon=%v failed: %v", eps, evalErr)
				}
				outputs[l] = ys
			}
			est, aggErr := mlmc.AggregateEstimators(outputs, sizes)
			if aggErr != nil {
				logrus.Fatalf("aggregation for epsilon=%v failed: %v", eps, aggErr)
			}
			fmt.Printf("%-12v %-20v %-24v %v\n", eps, est.Value, est.Variance, sizes)
		}
	},
}

func init() {
	sweepCmd.Flags().Float64SliceVar(&sweepEpsilons, "epsilons", nil, "target precisions to sweep")
}
