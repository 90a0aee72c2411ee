package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlmc-sim/mlmc-sim/campaign"
	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

// planCmd is step 1 of the split workflow: run the pilot, allocate samples
// for the target precision, draw the level inputs, and persist everything so
// the expensive evaluation step can run elsewhere.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Pilot the hierarchy, allocate samples, and store the planned level inputs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		sim, err := cfg.BuildSimulator()
		if err != nil {
			logrus.Fatalf("unable to build simulator: %v", err)
		}

		costs, variances, err := sim.EstimateCostsAndVariances(cfg.PilotSize)
		if err != nil {
			logrus.Fatalf("pilot failed: %v", err)
		}
		sizes, err := mlmc.AllocateSamples(costs, variances, cfg.Epsilon)
		if err != nil {
			logrus.Fatalf("allocation failed: %v", err)
		}
		inputs, err := sim.PrepareInputs(sizes)
		if err != nil {
			logrus.Fatalf("input preparation failed: %v", err)
		}

		store, err := campaign.NewStore(campaignDir)
		if err != nil {
			logrus.Fatalf("unable to open campaign store: %v", err)
		}
		manifest := campaign.NewManifest(cfg.Seed, cfg.Epsilon, cfg.PilotSize)
		manifest.Costs = costs
		manifest.Variances = variances
		manifest.SampleSizes = sizes
		if err := store.SaveManifest(manifest); err != nil {
			logrus.Fatalf("unable to store manifest: %v", err)
		}
		for l := range sizes {
			if err := store.SaveInputs(l, inputs[l]); err != nil {
				logrus.Fatalf("unable to store level %d inputs: %v", l, err)
			}
		}

		logrus.Infof("campaign %s planned: samples per level %v, artifacts in %s",
			manifest.ID, sizes, store.Dir())
	},
}
