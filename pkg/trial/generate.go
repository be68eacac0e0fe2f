// Package trial generates random binary search cases from a seed, checks
// bsearch.Search against a linear-scan reference, and reports the outcome.
//
// Each trial is fully determined by its seed, so a seed printed by a failing
// batch run can be replayed on its own to reproduce the failure.
package trial

import (
	"math/rand/v2"
	"slices"
)

const (
	// Generated sequences have a length in [0, MaxTestLength).
	MaxTestLength = 8

	// Generated values and targets lie in [0, MaxTestValue). The range is
	// small on purpose so duplicates and boundary hits are common.
	MaxTestValue = 8

	// Number of trials in a default batch run.
	NumRandomTests = 1000000
)

// Input is one generated search case.
type Input struct {
	Seed     uint64
	Sequence []uint32
	Target   uint32
}

// Generate deterministically builds a sorted sequence and a target from seed.
// Draw order is length, then each value, then target.
func Generate(seed uint64) Input {
	rng := rand.New(rand.NewPCG(seed, 0))

	length := rng.IntN(MaxTestLength)
	seq := make([]uint32, length)
	for i := range seq {
		seq[i] = rng.Uint32N(MaxTestValue)
	}
	slices.Sort(seq)

	return Input{
		Seed:     seed,
		Sequence: seq,
		Target:   rng.Uint32N(MaxTestValue),
	}
}
