package main

import (
	"flag"
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/hdwhdw/bsearch-fuzz/pkg/trial"
)

var (
	// newSeedSource and trialCount are variables so tests can shrink the
	// batch and make it deterministic.
	newSeedSource = trial.RandomSeeds
	trialCount    = trial.NumRandomTests
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bsearch-fuzz [seed]",
		Short: "Randomized property test for a recursive binary search",
		Long: `Runs a batch of randomly seeded binary search trials and reports how many
passed. Pass a seed printed by a failing trial to replay just that trial.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	// Expose glog's -v, -logtostderr and friends.
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		log.V(1).Infof("No seed given, running %d random trials", trialCount)
		trial.RunBatch(trialCount, newSeedSource(), out)
		return nil
	}

	if len(args) > 1 {
		log.V(1).Infof("Ignoring %d extra arguments", len(args)-1)
	}
	seed, err := trial.ParseSeed(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	log.V(1).Infof("Replaying seed %d", seed)
	trial.Run(seed, out)
	return nil
}
