package main

import (
	"fmt"

	aoc "github.com/maisem/aoc2023"
)

/*
want=405

#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
*/
func (s solver) D13p1() any {
	return summarizeMirrors(s.Blocks(), 0)
}

// want=400
func (s solver) D13p2() any {
	return summarizeMirrors(s.Blocks(), 1)
}

func summarizeMirrors(blocks [][]string, smudges int) int {
	total := 0
	for i, b := range blocks {
		g := aoc.ParseGrid(b, func(c byte) byte { return c })
		if row, ok := mirrorRow(g, smudges); ok {
			total += 100 * row
		} else if col, ok := mirrorRow(g.Transpose(), smudges); ok {
			total += col
		} else {
			panic(fmt.Sprintf("pattern %d has no mirror with %d smudges", i, smudges))
		}
	}
	return total
}

// mirrorRow returns the number of rows above a horizontal mirror line for
// which exactly smudges cells differ from their reflection.
func mirrorRow(g aoc.Grid[byte], smudges int) (int, bool) {
	for r := 1; r < len(g); r++ {
		diff := 0
		for a, b := r-1, r; a >= 0 && b < len(g) && diff <= smudges; a, b = a-1, b+1 {
			for x := range g[a] {
				if g[a][x] != g[b][x] {
					diff++
				}
			}
		}
		if diff == smudges {
			return r, true
		}
	}
	return 0, false
}
