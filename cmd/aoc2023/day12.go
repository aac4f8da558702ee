package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return aoc.ParallelMapFold(s.Lines(), func(line string) int {
		return parseSprings(line, 1).arrangements()
	}, add, 0)
}

// want=525152
func (s solver) D12p2() any {
	return aoc.ParallelMapFold(s.Lines(), func(line string) int {
		return parseSprings(line, 5).arrangements()
	}, add, 0)
}

func add(a, b int) int { return a + b }

type springRow struct {
	springs string
	groups  []int
}

// parseSprings parses a row of springs, unfolded by repeating it n times.
func parseSprings(line string, n int) springRow {
	springs, groups, ok := strings.Cut(line, " ")
	if !ok {
		panic(fmt.Sprintf("bad spring row %q", line))
	}
	var r springRow
	var ss []string
	for i := 0; i < n; i++ {
		ss = append(ss, springs)
	}
	r.springs = strings.Join(ss, "?")
	g := aoc.Ints(strings.Split(groups, ",")...)
	for i := 0; i < n; i++ {
		r.groups = append(r.groups, g...)
	}
	return r
}

// arrangements returns the number of ways to replace every ? with a working
// (.) or damaged (#) spring so that the runs of damaged springs match the
// groups.
func (r springRow) arrangements() int {
	// count is only memoized for i < len(springs) and j < len(groups).
	memo := aoc.NewMemo[int, int, int](len(r.springs) * len(r.groups))
	var count func(i, j int) int
	count = func(i, j int) int {
		if i >= len(r.springs) {
			if j == len(r.groups) {
				return 1
			}
			return 0
		}
		if j == len(r.groups) {
			if strings.Contains(r.springs[i:], "#") {
				return 0
			}
			return 1
		}
		return memo.Do(i, j, func() int {
			n := 0
			c := r.springs[i]
			if c == '.' || c == '?' {
				n += count(i+1, j)
			}
			if c == '#' || c == '?' {
				g := r.groups[j]
				end := i + g
				if end <= len(r.springs) &&
					!strings.Contains(r.springs[i:end], ".") &&
					(end == len(r.springs) || r.springs[end] != '#') {
					n += count(end+1, j+1)
				}
			}
			return n
		})
	}
	return count(0, 0)
}
