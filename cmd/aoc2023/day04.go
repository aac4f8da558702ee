package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	sum := 0
	s.ForLines(func(line string) {
		if n := cardMatches(line); n > 0 {
			sum += 1 << (n - 1)
		}
	})
	return sum
}

// want=30
func (s solver) D4p2() any {
	lines := s.Lines()
	copies := make([]int, len(lines))
	for i := range copies {
		copies[i] = 1
	}
	for i, line := range lines {
		n := cardMatches(line)
		for j := i + 1; j <= i+n && j < len(lines); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

// cardMatches returns how many of the numbers on a card are winning numbers.
func cardMatches(line string) int {
	_, nums, ok := strings.Cut(line, ":")
	if !ok {
		panic(fmt.Sprintf("bad card %q", line))
	}
	winning, have, ok := strings.Cut(nums, "|")
	if !ok {
		panic(fmt.Sprintf("bad card %q", line))
	}
	win := map[int]bool{}
	for _, n := range aoc.Fields(winning) {
		win[n] = true
	}
	matches := 0
	for _, n := range aoc.Fields(have) {
		if win[n] {
			matches++
		}
	}
	return matches
}
