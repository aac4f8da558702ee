package main

import (
	"fmt"

	aoc "github.com/maisem/aoc2023"
)

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	loop := walkLoop(s.Grid())
	var g aoc.Graph[aoc.Pt]
	for i, p := range loop {
		g.AddEdge(p, loop[(i+1)%len(loop)], 1)
	}
	farthest := 0
	for _, d := range g.ShortestPaths(loop[0]) {
		farthest = max(farthest, d)
	}
	return farthest
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	loop := walkLoop(s.Grid())
	return aoc.PolygonInteriorPoints(append(loop, loop[0]))
}

var pipeExits = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Left, aoc.Right},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Down, aoc.Right},
}

// pipeExit returns the exit of pipe c other than the one facing in. It
// reports false if c has no exit facing in.
func pipeExit(c byte, in aoc.Direction) (aoc.Direction, bool) {
	exits, ok := pipeExits[c]
	switch {
	case !ok:
		return 0, false
	case exits[0] == in:
		return exits[1], true
	case exits[1] == in:
		return exits[0], true
	}
	return 0, false
}

// walkLoop returns the tiles of the loop through S, in order, starting with
// S.
func walkLoop(g aoc.Grid[byte]) []aoc.Pt {
	start, ok := aoc.Find(g, 'S')
	if !ok {
		panic("no start tile")
	}
	var dirs []aoc.Direction
	for _, d := range aoc.Directions {
		if c, ok := g.AtOk(start.Step(d)); ok {
			if _, ok := pipeExit(c, d.Reverse()); ok {
				dirs = append(dirs, d)
			}
		}
	}
	if len(dirs) != 2 {
		panic(fmt.Sprintf("start tile %v connects to %d pipes; want 2", start, len(dirs)))
	}

	loop := []aoc.Pt{start}
	p, d := start.Step(dirs[0]), dirs[0]
	for p != start {
		loop = append(loop, p)
		next, ok := pipeExit(g.At(p), d.Reverse())
		if !ok {
			panic(fmt.Sprintf("loop broken at %v", p))
		}
		p, d = p.Step(next), next
		if !g.Contains(p) {
			panic(fmt.Sprintf("loop leaves the grid at %v", p))
		}
	}
	return loop
}
