package main

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"golang.org/x/exp/maps"
)

/*
want=11687500

broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
*/
func (s solver) D20p1() any {
	m := parseMachine(s.Lines())
	var lo, hi int
	for i := 0; i < 1000; i++ {
		m.press(func(p pulse) {
			if p.high {
				hi++
			} else {
				lo++
			}
		})
	}
	return lo * hi
}

func (s solver) D20p2() any {
	return pressesUntilLow(parseMachine(s.Lines()), "rx")
}

// pressesUntilLow returns the number of presses until target gets a low
// pulse. target must be fed by a single conjunction, so that happens once
// all of the conjunction's inputs send a high pulse during the same press.
// Each input is assumed to do so on a fixed cycle.
func pressesUntilLow(m machine, target string) int {
	var feeder string
	for name, mod := range m {
		if slices.Contains(mod.outs, target) {
			if feeder != "" {
				panic(fmt.Sprintf("%s has more than one input", target))
			}
			feeder = name
		}
	}
	if feeder == "" || m[feeder].kind != '&' {
		panic(fmt.Sprintf("%s is not fed by a single conjunction", target))
	}
	inputs := maps.Keys(m[feeder].memory)
	cycles := map[string]int{}
	const maxPresses = 1 << 20
	for press := 1; len(cycles) < len(inputs); press++ {
		if press > maxPresses {
			panic(fmt.Sprintf("no cycle found for the inputs of %s after %d presses", feeder, maxPresses))
		}
		m.press(func(p pulse) {
			if p.to == feeder && p.high {
				if _, ok := cycles[p.from]; !ok {
					cycles[p.from] = press
				}
			}
		})
	}
	return aoc.LCM(maps.Values(cycles)...)
}

type pulse struct {
	from, to string
	high     bool
}

type module struct {
	kind   byte // '%' flip-flop, '&' conjunction, 'b' broadcaster
	outs   []string
	on     bool            // flip-flop state
	memory map[string]bool // last pulse from each input of a conjunction
}

type machine map[string]*module

func parseMachine(lines []string) machine {
	m := machine{}
	for _, line := range lines {
		name, outs, ok := strings.Cut(line, " -> ")
		if !ok {
			panic(fmt.Sprintf("bad module %q", line))
		}
		mod := &module{outs: strings.Split(outs, ", ")}
		switch {
		case name == "broadcaster":
			mod.kind = 'b'
		case name[0] == '%' || name[0] == '&':
			mod.kind = name[0]
			name = name[1:]
		default:
			panic(fmt.Sprintf("bad module %q", line))
		}
		m[name] = mod
	}
	for name, mod := range m {
		for _, o := range mod.outs {
			if c, ok := m[o]; ok && c.kind == '&' {
				if c.memory == nil {
					c.memory = map[string]bool{}
				}
				c.memory[name] = false
			}
		}
	}
	return m
}

// press pushes the button once and calls onPulse for every pulse sent,
// in order, until the machine settles.
func (m machine) press(onPulse func(pulse)) {
	q := aoc.NewQueue(pulse{from: "button", to: "broadcaster"})
	q.While(func(p pulse) bool {
		onPulse(p)
		mod, ok := m[p.to]
		if !ok {
			return true
		}
		var high bool
		switch mod.kind {
		case '%':
			if p.high {
				return true
			}
			mod.on = !mod.on
			high = mod.on
		case '&':
			mod.memory[p.from] = p.high
			for _, v := range mod.memory {
				if !v {
					high = true
					break
				}
			}
		default:
			high = p.high
		}
		for _, o := range mod.outs {
			q.Push(pulse{from: p.to, to: o, high: high})
		}
		return true
	})
}
