// The aoc2023 command solves the 2023 Advent of Code puzzles.
//
// Without arguments it checks every sample and then solves the real
// inputs, fetching and caching them as needed:
//
//	aoc2023 [-day N] [-part P] [-sample | -skip-sample] [-debug]
//
// With arguments it solves one part for a local input file and prints
// only the answer:
//
//	aoc2023 -day N <part> <input-file> [args...]
package main

import (
	"embed"
	"log"

	aoc "github.com/maisem/aoc2023"
)

func main() {
	log.SetFlags(0)
	aoc.Run(2023, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
