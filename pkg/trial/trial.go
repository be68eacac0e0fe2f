package trial

import (
	"fmt"
	"io"

	log "github.com/golang/glog"

	"github.com/hdwhdw/bsearch-fuzz/pkg/bsearch"
)

// search is a variable so tests can substitute a broken implementation.
var search = bsearch.Search

// Result is the outcome of a single trial.
type Result struct {
	Input
	Expected Position
	Actual   Position
	Passed   bool
}

// Run executes one trial for seed and writes its report to w.
// A failed check is reported and returned, never treated as an error.
func Run(seed uint64, w io.Writer) Result {
	fmt.Fprintf(w, "Testing with random seed: %d\n", seed)

	in := Generate(seed)
	log.V(2).Infof("seed %d: sequence=%v target=%d", seed, in.Sequence, in.Target)

	res := Evaluate(in)
	if !res.Passed {
		fmt.Fprintf(w, "  FAIL: seed %d: searched for %d in input array %v. Expected: %s. Actual: %s\n",
			seed, in.Target, in.Sequence, res.Expected, res.Actual)
		log.V(1).Infof("seed %d failed: expected %s, got %s", seed, res.Expected, res.Actual)
	}
	return res
}

// Evaluate searches in and checks the answer against Reference.
func Evaluate(in Input) Result {
	var actual Position
	if i, ok := search(in.Sequence, in.Target); ok {
		actual = At(i)
	}
	expected := Reference(in.Sequence, in.Target)

	return Result{
		Input:    in,
		Expected: expected,
		Actual:   actual,
		Passed:   Verify(in.Sequence, in.Target, expected, actual),
	}
}
