package main

import (
	aoc "github.com/maisem/aoc2023"
	"tailscale.com/util/set"
)

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	sum := 0
	for _, pn := range partNumbers(s.Grid()) {
		if pn.symbols.Len() > 0 {
			sum += pn.n
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	g := s.Grid()
	gears := map[aoc.Pt][]int{}
	for _, pn := range partNumbers(g) {
		for p := range pn.symbols {
			if g.At(p) == '*' {
				gears[p] = append(gears[p], pn.n)
			}
		}
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}

type partNumber struct {
	n       int
	symbols set.Set[aoc.Pt] // adjacent symbols
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// partNumbers returns every number of the schematic along with the symbols
// next to it.
func partNumbers(g aoc.Grid[byte]) []partNumber {
	var out []partNumber
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !isDigit(row[x]) {
				continue
			}
			pn := partNumber{symbols: make(set.Set[aoc.Pt])}
			for ; x < len(row) && isDigit(row[x]); x++ {
				pn.n = pn.n*10 + aoc.Digit(rune(row[x]))
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(n aoc.Pt) bool {
					if v, ok := g.AtOk(n); ok && v != '.' && !isDigit(v) {
						pn.symbols.Add(n)
					}
					return true
				})
			}
			out = append(out, pn)
		}
	}
	return out
}
