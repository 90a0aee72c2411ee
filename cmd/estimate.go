package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlmc-sim/mlmc-sim/campaign"
	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

// estimateCmd is step 3 of the split workflow: load the stored raw outputs,
// form the level contributions, and aggregate the final estimator.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Aggregate stored campaign outputs into the final MLMC estimator",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := campaign.NewStore(campaignDir)
		if err != nil {
			logrus.Fatalf("unable to open campaign store: %v", err)
		}
		manifest, err := store.LoadManifest()
		if err != nil {
			logrus.Fatalf("unable to load manifest (run plan first): %v", err)
		}

		contributions := make(map[int][]mlmc.Output, len(manifest.SampleSizes))
		for l := range manifest.SampleSizes {
			out, loadErr := store.LoadOutputs(l)
			if loadErr != nil {
				logrus.Fatalf("unable to load level %d outputs (run evaluate first): %v", l, loadErr)
			}
			ys := out.Fine
			if l > 0 && len(out.Fine) > 0 {
				ys, err = mlmc.LevelDifferences(out.Fine, out.Coarse)
				if err != nil {
					logrus.Fatalf("level %d differences: %v", l, err)
				}
			}
			contributions[l] = ys
		}

		est, err := mlmc.AggregateEstimators(contributions, manifest.SampleSizes)
		if err != nil {
			logrus.Fatalf("aggregation failed: %v", err)
		}

		fmt.Printf("campaign:                %s\n", manifest.ID)
		fmt.Printf("MLMC estimate:           %v\n", est.Value)
		fmt.Printf("MLMC estimator variance: %v\n", est.Variance)
		fmt.Printf("samples per level:       %v\n", manifest.SampleSizes)
	},
}
