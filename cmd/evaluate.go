package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlmc-sim/mlmc-sim/campaign"
	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

// evaluateCmd is step 2 of the split workflow: run the configured models
// over the stored level inputs and persist the raw outputs. For l >= 1 both
// the level-l and the level-(l-1) model run on the same stored draws, so the
// estimate step can form valid differences.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the level models over stored campaign inputs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		sim, err := cfg.BuildSimulator()
		if err != nil {
			logrus.Fatalf("unable to build simulator: %v", err)
		}
		hierarchy := sim.Hierarchy()

		store, err := campaign.NewStore(campaignDir)
		if err != nil {
			logrus.Fatalf("unable to open campaign store: %v", err)
		}
		manifest, err := store.LoadManifest()
		if err != nil {
			logrus.Fatalf("unable to load manifest (run plan first): %v", err)
		}

		for l, n := range manifest.SampleSizes {
			out := &campaign.LevelOutputs{Level: l}
			if n > 0 {
				samples, loadErr := store.LoadInputs(l)
				if loadErr != nil {
					logrus.Fatalf("unable to load level %d inputs: %v", l, loadErr)
				}
				out.Fine, err = evaluateAll(hierarchy.Model(l), samples)
				if err != nil {
					logrus.Fatalf("level %d evaluation failed: %v", l, err)
				}
				if l > 0 {
					out.Coarse, err = evaluateAll(hierarchy.Model(l-1), samples)
					if err != nil {
						logrus.Fatalf("level %d coarse evaluation failed: %v", l, err)
					}
				}
			}
			if err := store.SaveOutputs(out); err != nil {
				logrus.Fatalf("unable to store level %d outputs: %v", l, err)
			}
			logrus.Infof("level %d: %d evaluations stored", l, len(out.Fine))
		}

		logrus.Infof("campaign %s evaluated", manifest.ID)
	},
}

func evaluateAll(model mlmc.Model, samples []mlmc.Sample) ([]mlmc.Output, error) {
	outputs := make([]mlmc.Output, len(samples))
	for i, s := range samples {
		out, err := model.Evaluate(s)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}
