package main

import aoc "github.com/maisem/aoc2023"

/*
want=16 args=6

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	g := s.Grid()
	steps := s.Arg(0, 64)
	start, ok := aoc.Find(g, 'S')
	if !ok {
		panic("no start tile")
	}
	garden := g.ToGraph(start, false, func(c byte) bool { return c == '#' })
	n := 0
	for _, d := range garden.ShortestPaths(start) {
		if d <= steps && d%2 == steps%2 {
			n++
		}
	}
	return n
}

// want=1594 args=50
func (s solver) D21p2() any {
	g := s.Grid()
	steps := s.Arg(0, 26501365)
	start, ok := aoc.Find(g, 'S')
	if !ok {
		panic("no start tile")
	}
	// The number of plots grows quadratically every time the reachable
	// diamond spans one more copy of the garden. The first few copies are
	// counted directly to get past the start's own garden.
	n := g.Size().X
	r, copies := steps%n, steps/n
	if steps <= 1000 || copies <= 4 {
		return infiniteGardenPlots(g, start, steps)[steps]
	}
	reach := infiniteGardenPlots(g, start, r+4*n)
	seq := []int{reach[r+2*n], reach[r+3*n], reach[r+4*n]}
	for k := 4; k < copies; k++ {
		next := aoc.Extrapolate(seq, true)
		seq = append(seq[1:], next)
	}
	return seq[len(seq)-1]
}

// infiniteGardenPlots returns, for every step count up to limit, the number
// of plots of the infinitely repeating garden g that can be reached from
// start in exactly that many steps.
func infiniteGardenPlots(g aoc.Grid[byte], start aoc.Pt, limit int) []int {
	size := g.Size()
	dist := map[aoc.Pt]int{start: 0}
	byDist := make([]int, limit+1)
	q := aoc.NewQueue(start)
	q.While(func(p aoc.Pt) bool {
		d := dist[p]
		byDist[d]++
		if d == limit {
			return true
		}
		for _, dir := range aoc.Directions {
			np := p.Step(dir)
			if _, ok := dist[np]; ok || g.At(aoc.StandardizePt(np, size)) == '#' {
				continue
			}
			dist[np] = d + 1
			q.Push(np)
		}
		return true
	})
	// A plot reached in d steps can be reached again in d+2.
	out := make([]int, limit+1)
	for d := range out {
		out[d] = byDist[d]
		if d >= 2 {
			out[d] += out[d-2]
		}
	}
	return out
}
