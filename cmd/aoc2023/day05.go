package main

import (
	"slices"

	aoc "github.com/maisem/aoc2023"
)

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	seeds, maps := parseAlmanac(s.Blocks())
	var spans []span
	for _, seed := range seeds {
		spans = append(spans, span{seed, seed + 1})
	}
	return lowestLocation(spans, maps)
}

// want=46
func (s solver) D5p2() any {
	seeds, maps := parseAlmanac(s.Blocks())
	var spans []span
	for i := 0; i+1 < len(seeds); i += 2 {
		spans = append(spans, span{seeds[i], seeds[i] + seeds[i+1]})
	}
	return lowestLocation(spans, maps)
}

// span is the half-open range [lo, hi).
type span struct {
	lo, hi int
}

type almanacRule struct {
	dst, src, n int
}

type almanacMap []almanacRule

func parseAlmanac(blocks [][]string) (seeds []int, maps []almanacMap) {
	seeds = aoc.Fields(aoc.TrimPrefix(blocks[0][0], "seeds:"))
	for _, b := range blocks[1:] {
		var m almanacMap
		for _, line := range b[1:] {
			f := aoc.Fields(line)
			if len(f) != 3 {
				panic("bad almanac line: " + line)
			}
			m = append(m, almanacRule{dst: f[0], src: f[1], n: f[2]})
		}
		maps = append(maps, m)
	}
	return seeds, maps
}

// apply maps every span through m, splitting spans that only partly overlap
// a rule. Values not covered by any rule map to themselves.
func (m almanacMap) apply(in []span) []span {
	var out []span
	var todo aoc.Stack[span]
	for _, sp := range in {
		todo.Push(sp)
	}
	todo.While(func(sp span) bool {
		for _, r := range m {
			lo, hi := max(sp.lo, r.src), min(sp.hi, r.src+r.n)
			if lo >= hi {
				continue
			}
			shift := r.dst - r.src
			out = append(out, span{lo + shift, hi + shift})
			if sp.lo < lo {
				todo.Push(span{sp.lo, lo})
			}
			if hi < sp.hi {
				todo.Push(span{hi, sp.hi})
			}
			return true
		}
		out = append(out, sp)
		return true
	})
	return out
}

func lowestLocation(spans []span, maps []almanacMap) int {
	for _, m := range maps {
		spans = m.apply(spans)
	}
	return slices.MinFunc(spans, func(a, b span) int { return a.lo - b.lo }).lo
}
