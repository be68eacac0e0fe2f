package trial

import (
	"fmt"
	"io"

	log "github.com/golang/glog"
)

// Summary is the tally of a batch run.
type Summary struct {
	Passed int
	Total  int
}

// Failed returns the number of failed trials.
func (s Summary) Failed() int {
	return s.Total - s.Passed
}

// RunBatch runs n trials seeded from seeds, writes each report and a final
// tally to w, and returns the tally. All n trials run even if some fail.
func RunBatch(n int, seeds SeedSource, w io.Writer) Summary {
	log.V(1).Infof("Starting batch of %d trials", n)

	sum := Summary{Total: n}
	for range n {
		if Run(seeds.Next(), w).Passed {
			sum.Passed++
		}
	}

	fmt.Fprintf(w, "Passed %d out of %d tests!\n", sum.Passed, sum.Total)
	log.V(1).Infof("Batch finished: %d passed, %d failed", sum.Passed, sum.Failed())
	return sum
}
