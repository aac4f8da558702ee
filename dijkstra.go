package aoc

import "fmt"

// SearchSpace is a graph that is only ever expanded on demand.
type SearchSpace[N comparable, D Number] interface {
	// Neighbors returns the nodes reachable in one step from n.
	Neighbors(n N) []N
	// Weight returns the non-negative cost of moving from one node to
	// a neighbor.
	Weight(from, to N) D
}

// SearchFuncs is a SearchSpace made of two functions.
type SearchFuncs[N comparable, D Number] struct {
	NeighborsFunc func(N) []N
	WeightFunc    func(from, to N) D
}

func (f SearchFuncs[N, D]) Neighbors(n N) []N { return f.NeighborsFunc(n) }
func (f SearchFuncs[N, D]) Weight(from, to N) D { return f.WeightFunc(from, to) }

// Search is a lazy Dijkstra search over a SearchSpace. Nodes are finalized in
// order of increasing distance from the start; a finalized distance never
// changes.
//
// Edge weights must be non-negative. Step panics if it sees a negative
// weight.
type Search[N comparable, D Number] struct {
	space    SearchSpace[N, D]
	frontier PriorityQueue[N, D]
	dist     map[N]D
}

// NewSearch returns a search of space starting at start, whose distance is
// zero.
func NewSearch[N comparable, D Number](space SearchSpace[N, D], start N, zero D) *Search[N, D] {
	s := &Search[N, D]{
		space: space,
		dist:  make(map[N]D),
	}
	s.frontier.Insert(start, zero)
	return s
}

// Step finalizes the closest node of the frontier and relaxes its edges. It
// reports false if the frontier was empty.
func (s *Search[N, D]) Step() bool {
	cur, ok := s.frontier.PopMin()
	if !ok {
		return false
	}
	s.dist[cur.Item] = cur.Priority
	for _, n := range s.space.Neighbors(cur.Item) {
		if _, done := s.dist[n]; done {
			continue
		}
		w := s.space.Weight(cur.Item, n)
		if w < 0 {
			panic(fmt.Sprintf("search: negative weight %v from %v to %v", w, cur.Item, n))
		}
		d := cur.Priority + w
		if p, ok := s.frontier.Priority(n); ok && p <= d {
			continue
		}
		s.frontier.Set(n, d)
	}
	return true
}

// Distance returns the distance to n if it has been finalized.
func (s *Search[N, D]) Distance(n N) (D, bool) {
	d, ok := s.dist[n]
	return d, ok
}

// DistanceTo runs the search until goal is finalized and returns its
// distance. It reports false if goal is unreachable.
func (s *Search[N, D]) DistanceTo(goal N) (D, bool) {
	for {
		if d, ok := s.dist[goal]; ok {
			return d, true
		}
		if !s.Step() {
			var zero D
			return zero, false
		}
	}
}

// Run exhausts the frontier and returns the distance to every reachable
// node.
func (s *Search[N, D]) Run() map[N]D {
	for s.Step() {
	}
	return s.dist
}

// ShortestPath returns the length of the shortest path from start to goal.
func ShortestPath[N comparable, D Number](space SearchSpace[N, D], start, goal N) (D, bool) {
	var zero D
	return NewSearch(space, start, zero).DistanceTo(goal)
}

// ShortestPaths returns the length of the shortest path from start to every
// reachable node.
func ShortestPaths[N comparable, D Number](space SearchSpace[N, D], start N) map[N]D {
	var zero D
	return NewSearch(space, start, zero).Run()
}
