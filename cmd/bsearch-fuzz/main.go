// Command bsearch-fuzz checks a recursive binary search against a linear scan
// on randomly generated inputs.
//
// With no arguments it runs a batch of random trials and prints a tally.
// With a seed argument it replays that single trial, which is how a failure
// from a batch run is debugged. The exit status is 0 whenever the trials
// ran, whether or not any of them failed.
package main

import (
	"flag"

	log "github.com/golang/glog"
)

func main() {
	// stdout carries the report; glog goes to stderr unless overridden.
	_ = flag.Set("logtostderr", "true")

	if err := newRootCmd().Execute(); err != nil {
		log.Exitf("%v", err)
	}
	log.Flush()
}
