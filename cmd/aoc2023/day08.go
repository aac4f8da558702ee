package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=2

RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	m := parseDesertMap(s.Blocks())
	return m.steps("AAA", func(n string) bool { return n == "ZZZ" })
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	m := parseDesertMap(s.Blocks())
	var cycles []int
	for n := range m.nodes {
		if strings.HasSuffix(n, "A") {
			c := m.ghostCycle(n)
			s.Debugf("ghost %s: cycle %d", n, c)
			cycles = append(cycles, c)
		}
	}
	return aoc.LCM(cycles...)
}

type desertMap struct {
	turns string
	nodes map[string][2]string
}

func parseDesertMap(blocks [][]string) desertMap {
	m := desertMap{
		turns: blocks[0][0],
		nodes: map[string][2]string{},
	}
	for _, line := range blocks[1] {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			panic(fmt.Sprintf("bad node %q", line))
		}
		l, r, ok := strings.Cut(strings.Trim(rest, "()"), ", ")
		if !ok {
			panic(fmt.Sprintf("bad node %q", line))
		}
		m.nodes[name] = [2]string{l, r}
	}
	return m
}

func (m desertMap) next(n string, step int) string {
	next, ok := m.nodes[n]
	if !ok {
		panic(fmt.Sprintf("unknown node %q", n))
	}
	if m.turns[step%len(m.turns)] == 'L' {
		return next[0]
	}
	return next[1]
}

// steps returns the number of steps from start until done is true.
func (m desertMap) steps(start string, done func(string) bool) int {
	n := start
	i := 0
	for ; !done(n); i++ {
		n = m.next(n, i)
	}
	return i
}

// ghostCycle returns the number of steps from start to its first Z node.
// The ghost must then come back to a Z node after exactly as many steps,
// or the ghosts cannot be lined up with an LCM.
func (m desertMap) ghostCycle(start string) int {
	atZ := func(n string) bool { return strings.HasSuffix(n, "Z") }
	first := m.steps(start, atZ)
	n := start
	for i := 0; i < first; i++ {
		n = m.next(n, i)
	}
	i := first
	for n = m.next(n, i); !atZ(n); n = m.next(n, i) {
		i++
	}
	if second := i + 1; second != 2*first {
		panic(fmt.Sprintf("ghost from %s: first Z after %d steps, next after %d", start, first, second))
	}
	return first
}
