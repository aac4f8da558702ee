package aoc

import (
	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
)

// Graph is an undirected graph with integer edge weights.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	mak.Set(&g.Nodes, a, true)
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	if g.Edges[a] == nil {
		mak.Set(&g.Edges, a, make(map[K]int))
	}
	if g.Edges[b] == nil {
		mak.Set(&g.Edges, b, make(map[K]int))
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Neighbors returns the nodes sharing an edge with a, in no particular
// order.
func (g *Graph[K]) Neighbors(a K) []K {
	return maps.Keys(g.Edges[a])
}

// Weight returns the weight of the edge between a and b.
func (g *Graph[K]) Weight(a, b K) int {
	return g.Edges[a][b]
}

// ShortestPath returns the length of the shortest path from a to b.
func (g *Graph[K]) ShortestPath(a, b K) (int, bool) {
	return ShortestPath[K, int](g, a, b)
}

// ShortestPaths returns the length of the shortest path from a to every
// node reachable from it.
func (g *Graph[K]) ShortestPaths(a K) map[K]int {
	return ShortestPaths[K, int](g, a)
}
