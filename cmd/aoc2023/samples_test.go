package main

import (
	"testing"

	aoc "github.com/maisem/aoc2023"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	results := aoc.RunSamples(source, &solver{})
	// Every part but 20.2 has a sample.
	require.Len(t, results, 41)
	for _, r := range results {
		t.Run(r.Name, func(t *testing.T) {
			require.NoError(t, r.Err)
			assert.Equal(t, r.Want, r.Got)
		})
	}
}
