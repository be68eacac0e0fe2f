package trial

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPasses(t *testing.T) {
	var buf bytes.Buffer
	res := Run(42, &buf)

	assert.True(t, res.Passed)
	assert.Equal(t, "Testing with random seed: 42\n", buf.String())
	assert.Equal(t, Generate(42), res.Input)
}

func TestRunIdempotent(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		var a, b bytes.Buffer
		ra := Run(seed, &a)
		rb := Run(seed, &b)
		require.Equal(t, ra, rb)
		require.Equal(t, a.String(), b.String())
	}
}

// TestEvaluateGeneratorDomain runs the search over many generated cases.
func TestEvaluateGeneratorDomain(t *testing.T) {
	for seed := uint64(0); seed < 20000; seed++ {
		res := Evaluate(Generate(seed))
		if !res.Passed {
			t.Fatalf("seed %d: sequence=%v target=%d expected=%s actual=%s",
				seed, res.Sequence, res.Target, res.Expected, res.Actual)
		}
	}
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name      string
		seq       []uint32
		target    uint32
		wantFound bool
	}{
		{"empty", []uint32{}, 5, false},
		{"single", []uint32{3}, 3, true},
		{"duplicates", []uint32{1, 2, 2, 2, 5}, 2, true},
		{"absent", []uint32{1, 3, 5, 7}, 4, false},
		{"all zero", []uint32{0, 0, 0, 0, 0, 0, 0, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(Input{Sequence: tt.seq, Target: tt.target})
			assert.True(t, res.Passed)
			assert.Equal(t, tt.wantFound, res.Actual.Found)
		})
	}
}

func TestRunReportsFailure(t *testing.T) {
	patches := gomonkey.ApplyGlobalVar(&search, func([]uint32, uint32) (int, bool) {
		return 0, false
	})
	defer patches.Reset()

	// Find a seed whose target is present, so "always absent" is wrong.
	seed := uint64(0)
	for Reference(Generate(seed).Sequence, Generate(seed).Target) == Absent {
		seed++
	}
	in := Generate(seed)
	expected := Reference(in.Sequence, in.Target)

	var buf bytes.Buffer
	res := Run(seed, &buf)
	require.False(t, res.Passed)
	assert.Equal(t, Absent, res.Actual)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("Testing with random seed: %d", seed), lines[0])
	assert.Equal(t,
		fmt.Sprintf("  FAIL: seed %d: searched for %d in input array %v. Expected: %s. Actual: absent",
			seed, in.Target, in.Sequence, expected),
		lines[1])
}
