package main

import aoc "github.com/maisem/aoc2023"

/*
want=374

...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
*/
func (s solver) D11p1() any {
	return galaxyDistances(s.Grid(), s.Arg(0, 2))
}

// want=8410 args=100
func (s solver) D11p2() any {
	return galaxyDistances(s.Grid(), s.Arg(0, 1000000))
}

// galaxyDistances returns the sum of the distances between every pair of
// galaxies, once every empty row and column is replaced by factor of them.
func galaxyDistances(g aoc.Grid[byte], factor int) int {
	size := g.Size()
	rowUsed := make([]bool, size.Y)
	colUsed := make([]bool, size.X)
	var galaxies []aoc.Pt
	for y, row := range g {
		for x, c := range row {
			if c == '#' {
				galaxies = append(galaxies, aoc.Pt{X: x, Y: y})
				rowUsed[y] = true
				colUsed[x] = true
			}
		}
	}
	// expanded[i] is the coordinate of i after expansion.
	expand := func(used []bool) []int {
		out := make([]int, len(used))
		at := 0
		for i, u := range used {
			out[i] = at
			if u {
				at++
			} else {
				at += factor
			}
		}
		return out
	}
	xs, ys := expand(colUsed), expand(rowUsed)
	for i, p := range galaxies {
		galaxies[i] = aoc.Pt{X: xs[p.X], Y: ys[p.Y]}
	}

	sum := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += a.MDist(b)
		}
	}
	return sum
}
