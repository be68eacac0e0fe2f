package trial

import (
	"slices"
	"strconv"
)

// Position is the outcome of a search: an index, or absent when Found is false.
type Position struct {
	Index int
	Found bool
}

// Absent is the Position of a value that is not in the sequence.
var Absent = Position{}

// At returns a present Position.
func At(i int) Position {
	return Position{Index: i, Found: true}
}

func (p Position) String() string {
	if !p.Found {
		return "absent"
	}
	return strconv.Itoa(p.Index)
}

// Reference returns the first index of target in seq by linear scan.
func Reference(seq []uint32, target uint32) Position {
	if i := slices.Index(seq, target); i >= 0 {
		return At(i)
	}
	return Absent
}

// Verify reports whether actual is an acceptable answer for target in seq.
// An exact match with expected passes. A different index also passes when it
// holds target, since duplicates make more than one index correct.
func Verify(seq []uint32, target uint32, expected, actual Position) bool {
	if actual == expected {
		return true
	}
	if !actual.Found || actual.Index < 0 || actual.Index >= len(seq) {
		return false
	}
	return seq[actual.Index] == target
}
