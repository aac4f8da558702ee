package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamond() *Graph[int] {
	var g Graph[int]
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 48)
	g.AddEdge(0, 3, 50)
	g.AddEdge(1, 3, 50)
	g.AddEdge(2, 3, 1)
	return &g
}

func TestShortestPath(t *testing.T) {
	d, ok := ShortestPath[int, int](diamond(), 0, 3)
	require.True(t, ok)
	assert.Equal(t, 49, d)
}

func TestShortestPathFuncs(t *testing.T) {
	type edge struct{ a, b int }
	weights := map[edge]float64{
		{0, 1}: 1.5,
		{1, 2}: 0.25,
		{0, 2}: 2,
	}
	space := SearchFuncs[int, float64]{
		NeighborsFunc: func(n int) []int {
			var out []int
			for e := range weights {
				if e.a == n {
					out = append(out, e.b)
				}
			}
			return out
		},
		WeightFunc: func(from, to int) float64 {
			return weights[edge{from, to}]
		},
	}
	d, ok := ShortestPath[int, float64](space, 0, 2)
	require.True(t, ok)
	assert.Equal(t, 1.75, d)

	_, ok = ShortestPath[int, float64](space, 2, 0)
	assert.False(t, ok, "edges are one way")
}

func TestShortestPathUnreachable(t *testing.T) {
	g := diamond()
	g.AddEdge(10, 11, 1)
	_, ok := g.ShortestPath(0, 11)
	assert.False(t, ok)
	_, ok = g.ShortestPath(0, 99)
	assert.False(t, ok)
}

func TestShortestPathsMatchesEarlyExit(t *testing.T) {
	g := diamond()
	g.AddEdge(3, 4, 7)
	g.AddEdge(4, 5, 2)
	g.AddEdge(1, 5, 100)
	all := g.ShortestPaths(0)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 48, 3: 49, 4: 56, 5: 58}, all)
	for n, want := range all {
		got, ok := g.ShortestPath(0, n)
		require.True(t, ok)
		assert.Equal(t, want, got, "node %d", n)
	}
}

func TestSearchStep(t *testing.T) {
	s := NewSearch[int, int](diamond(), 0, 0)
	require.True(t, s.Step())
	d, ok := s.Distance(0)
	require.True(t, ok)
	assert.Zero(t, d)
	_, ok = s.Distance(3)
	assert.False(t, ok, "not finalized yet")

	d, ok = s.DistanceTo(1)
	require.True(t, ok)
	assert.Equal(t, 1, d)
	_, ok = s.Distance(2)
	assert.False(t, ok, "search stops at the goal")

	assert.Len(t, s.Run(), 4)
	assert.False(t, s.Step())
}

func TestSearchNegativeWeight(t *testing.T) {
	var g Graph[string]
	g.AddEdge("a", "b", -1)
	assert.Panics(t, func() { g.ShortestPaths("a") })
}
