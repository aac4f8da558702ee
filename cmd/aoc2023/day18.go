package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=62

R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	return lagoonSize(s.Lines(), func(dir, n, _ string) (aoc.Direction, int) {
		return digDirs[dir[0]], aoc.Int(n)
	})
}

// want=952408144115
func (s solver) D18p2() any {
	return lagoonSize(s.Lines(), func(_, _, color string) (aoc.Direction, int) {
		hex := strings.Trim(color, "(#)")
		if len(hex) != 6 {
			panic(fmt.Sprintf("bad color %q", color))
		}
		return digDirs["RDLU"[aoc.Digit(rune(hex[5]))]], aoc.ParseHex(hex[:5])
	})
}

var digDirs = map[byte]aoc.Direction{
	'U': aoc.Up,
	'R': aoc.Right,
	'D': aoc.Down,
	'L': aoc.Left,
}

// lagoonSize returns the number of cubes dug out by the plan, counting the
// trench. decode turns the fields of a line into a move.
func lagoonSize(lines []string, decode func(dir, n, color string) (aoc.Direction, int)) int {
	var cur aoc.Pt
	pts := []aoc.Pt{cur}
	for _, line := range lines {
		f := strings.Fields(line)
		if len(f) != 3 {
			panic(fmt.Sprintf("bad dig step %q", line))
		}
		d, n := decode(f[0], f[1], f[2])
		cur = cur.Add(d.Delta().Scale(n))
		pts = append(pts, cur)
	}
	if cur != pts[0] {
		panic(fmt.Sprintf("dig plan ends at %v, not at the start", cur))
	}
	return aoc.PolygonBoundedPoints(pts)
}
