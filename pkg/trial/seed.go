package trial

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

// ErrInvalidSeed is returned by ParseSeed for arguments that are not a
// base-10 unsigned 64-bit integer.
var ErrInvalidSeed = errors.New("invalid seed")

// ParseSeed parses a seed given on the command line.
func ParseSeed(arg string) (uint64, error) {
	seed, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidSeed, arg, err)
	}
	return seed, nil
}

// SeedSource supplies the seed for each trial of a batch.
type SeedSource interface {
	Next() uint64
}

// SeedFunc adapts a function to a SeedSource.
type SeedFunc func() uint64

// Next calls f.
func (f SeedFunc) Next() uint64 {
	return f()
}

// RandomSeeds returns a source of non-deterministic seeds.
func RandomSeeds() SeedSource {
	return SeedFunc(rand.Uint64)
}

// FixedSeeds returns a source that yields seeds in order and then wraps
// around. With no seeds it always yields 0.
func FixedSeeds(seeds ...uint64) SeedSource {
	i := 0
	return SeedFunc(func() uint64 {
		if len(seeds) == 0 {
			return 0
		}
		s := seeds[i%len(seeds)]
		i++
		return s
	})
}
