package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return calibrationSum(s.Lines(), false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return calibrationSum(s.Lines(), true)
}

var digitNames = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// lineDigits returns the digits of line in order. If spelled is true, digit
// names count too, and may overlap ("oneight" is 1 then 8).
func lineDigits(line string, spelled bool) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			out = append(out, aoc.Digit(rune(c)))
			continue
		}
		if !spelled {
			continue
		}
		for d, name := range digitNames[1:] {
			if strings.HasPrefix(line[i:], name) {
				out = append(out, d+1)
				break
			}
		}
	}
	return out
}

func calibrationSum(lines []string, spelled bool) int {
	var vals []int
	for _, line := range lines {
		ds := lineDigits(line, spelled)
		if len(ds) == 0 {
			panic(fmt.Sprintf("no digits in %q", line))
		}
		vals = append(vals, ds[0]*10+ds[len(ds)-1])
	}
	return aoc.Sum(vals...)
}
