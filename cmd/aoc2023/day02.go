package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	bag := cubes{red: 12, green: 13, blue: 14}
	sum := 0
	s.ForLines(func(line string) {
		id, seen := parseGame(line)
		if seen.within(bag) {
			sum += id
		}
	})
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	s.ForLines(func(line string) {
		_, seen := parseGame(line)
		sum += seen.red * seen.green * seen.blue
	})
	return sum
}

type cubes struct {
	red, green, blue int
}

func (c cubes) within(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

// parseGame returns the id of the game and the most cubes of each color
// shown at once.
func parseGame(line string) (id int, seen cubes) {
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		panic(fmt.Sprintf("bad game %q", line))
	}
	id = aoc.Int(aoc.TrimPrefix(head, "Game "))
	draws := strings.FieldsFunc(rest, func(r rune) bool { return r == ';' || r == ',' })
	for _, d := range draws {
		n, color, ok := strings.Cut(strings.TrimSpace(d), " ")
		if !ok {
			panic(fmt.Sprintf("bad draw %q", d))
		}
		v := aoc.Int(n)
		switch color {
		case "red":
			seen.red = max(seen.red, v)
		case "green":
			seen.green = max(seen.green, v)
		case "blue":
			seen.blue = max(seen.blue, v)
		default:
			panic(fmt.Sprintf("bad color %q", color))
		}
	}
	return id, seen
}
