package main

import (
	"math"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	lines := s.Lines()
	times := aoc.Fields(aoc.TrimPrefix(lines[0], "Time:"))
	dists := aoc.Fields(aoc.TrimPrefix(lines[1], "Distance:"))
	out := 1
	for i, t := range times {
		out *= waysToWin(t, dists[i])
	}
	return out
}

// want=71503
func (s solver) D6p2() any {
	lines := s.Lines()
	t := aoc.Int(strings.ReplaceAll(aoc.TrimPrefix(lines[0], "Time:"), " ", ""))
	d := aoc.Int(strings.ReplaceAll(aoc.TrimPrefix(lines[1], "Distance:"), " ", ""))
	return waysToWin(t, d)
}

// waysToWin returns the number of whole hold times h for which h*(t-h) > d.
func waysToWin(t, d int) int {
	if t*t < 4*d {
		return 0
	}
	// h^2 - t*h + d < 0 strictly between the roots.
	hi, lo := aoc.SolveQuad(1, -t, d)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	if last < first {
		return 0
	}
	return last - first + 1
}
