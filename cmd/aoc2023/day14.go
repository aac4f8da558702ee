package main

import (
	aoc "github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := s.Grid()
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	const cycles = 1000000000
	g := s.Grid()
	seen := map[deephash.Sum]int{}
	for i := 1; i <= cycles; i++ {
		g = spinCycle(g)
		h := g.Hash()
		prev, ok := seen[h]
		if !ok {
			seen[h] = i
			continue
		}
		s.Debugf("spin cycle %d repeats cycle %d", i, prev)
		for left := (cycles - i) % (i - prev); left > 0; left-- {
			g = spinCycle(g)
		}
		break
	}
	return northLoad(g)
}

// tiltNorth rolls every round rock (O) north until it hits a cube rock (#),
// another round rock or the edge.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// spinCycle tilts g north, west, south and then east.
func spinCycle(g aoc.Grid[byte]) aoc.Grid[byte] {
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

func northLoad(g aoc.Grid[byte]) int {
	load := 0
	for y, row := range g {
		for _, c := range row {
			if c == 'O' {
				load += len(g) - y
			}
		}
	}
	return load
}
