package main

import (
	aoc "github.com/maisem/aoc2023"
	"tailscale.com/util/set"
)

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return energized(s.Grid(), aoc.Path{Pt: aoc.Pt{}, Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := s.Grid()
	return aoc.ParallelMapFold(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	}, func(a, b int) int { return max(a, b) }, 0)
}

// beamExits returns the directions a beam heading d leaves tile c in.
func beamExits(c byte, d aoc.Direction) []aoc.Direction {
	horizontal := d == aoc.Left || d == aoc.Right
	switch c {
	case '/':
		switch d {
		case aoc.Right:
			return []aoc.Direction{aoc.Up}
		case aoc.Up:
			return []aoc.Direction{aoc.Right}
		case aoc.Left:
			return []aoc.Direction{aoc.Down}
		default:
			return []aoc.Direction{aoc.Left}
		}
	case '\\':
		switch d {
		case aoc.Right:
			return []aoc.Direction{aoc.Down}
		case aoc.Down:
			return []aoc.Direction{aoc.Right}
		case aoc.Left:
			return []aoc.Direction{aoc.Up}
		default:
			return []aoc.Direction{aoc.Left}
		}
	case '|':
		if horizontal {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if !horizontal {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// energized returns the number of tiles a beam entering at start passes
// through.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := make(set.Set[aoc.Path])
	tiles := make(set.Set[aoc.Pt])
	var beams aoc.Stack[aoc.Path]
	beams.Push(start)
	beams.While(func(p aoc.Path) bool {
		if seen.Contains(p) {
			return true
		}
		seen.Add(p)
		tiles.Add(p.Pt)
		for _, d := range beamExits(g.At(p.Pt), p.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok {
				beams.Push(next)
			}
		}
		return true
	})
	return tiles.Len()
}
