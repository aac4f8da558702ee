package main

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=1320

rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
*/
func (s solver) D15p1() any {
	total := 0
	for _, step := range initSteps(s.Input()) {
		total += holidayHash(step)
	}
	return total
}

// want=145
func (s solver) D15p2() any {
	type lens struct {
		label string
		focal int
	}
	var boxes [256][]lens
	for _, step := range initSteps(s.Input()) {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := &boxes[holidayHash(label)]
			*b = slices.DeleteFunc(*b, func(l lens) bool { return l.label == label })
			continue
		}
		label, focal, ok := strings.Cut(step, "=")
		if !ok {
			panic(fmt.Sprintf("bad step %q", step))
		}
		b := &boxes[holidayHash(label)]
		l := lens{label, aoc.Int(focal)}
		if i := slices.IndexFunc(*b, func(l lens) bool { return l.label == label }); i >= 0 {
			(*b)[i] = l
		} else {
			*b = append(*b, l)
		}
	}
	power := 0
	for bi, b := range boxes {
		for li, l := range b {
			power += (bi + 1) * (li + 1) * l.focal
		}
	}
	return power
}

func initSteps(in []byte) []string {
	return strings.Split(strings.ReplaceAll(strings.TrimSpace(string(in)), "\n", ""), ",")
}

// holidayHash is the HASH algorithm.
func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}
