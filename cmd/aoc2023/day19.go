package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	blocks := s.Blocks()
	flows := parseWorkflows(blocks[0])
	total := 0
	for _, line := range blocks[1] {
		p := parseRatings(line)
		if flows.accepts(p) {
			total += aoc.Sum(p[:]...)
		}
	}
	return total
}

// want=167409079868000
func (s solver) D19p2() any {
	flows := parseWorkflows(s.Blocks()[0])
	var all ratingRanges
	for i := range all {
		all[i] = span{1, 4001}
	}
	return flows.acceptedCombinations(all)
}

const categories = "xmas"

// ratings are the x, m, a and s ratings of a part.
type ratings [4]int

// ratingRanges are the half-open ranges of each rating of a set of parts.
type ratingRanges [4]span

func (r ratingRanges) combinations() int {
	n := 1
	for _, sp := range r {
		n *= sp.hi - sp.lo
	}
	return n
}

type workflowRule struct {
	category int // index into categories, or -1 if the rule always matches
	less     bool
	value    int
	target   string
}

type workflows map[string][]workflowRule

func parseWorkflows(lines []string) workflows {
	out := workflows{}
	for _, line := range lines {
		name, rest, ok := strings.Cut(strings.TrimSuffix(line, "}"), "{")
		if !ok {
			panic(fmt.Sprintf("bad workflow %q", line))
		}
		var rules []workflowRule
		for _, r := range strings.Split(rest, ",") {
			cond, target, ok := strings.Cut(r, ":")
			if !ok {
				rules = append(rules, workflowRule{category: -1, target: r})
				continue
			}
			if len(cond) < 3 || (cond[1] != '<' && cond[1] != '>') {
				panic(fmt.Sprintf("bad rule %q", r))
			}
			c := strings.IndexByte(categories, cond[0])
			if c < 0 {
				panic(fmt.Sprintf("bad rule %q", r))
			}
			rules = append(rules, workflowRule{
				category: c,
				less:     cond[1] == '<',
				value:    aoc.Int(cond[2:]),
				target:   target,
			})
		}
		out[name] = rules
	}
	return out
}

func parseRatings(line string) ratings {
	var p ratings
	for _, f := range strings.Split(strings.Trim(line, "{}"), ",") {
		k, v, ok := strings.Cut(f, "=")
		if !ok || len(k) != 1 || !strings.Contains(categories, k) {
			panic(fmt.Sprintf("bad rating %q", f))
		}
		p[strings.Index(categories, k)] = aoc.Int(v)
	}
	return p
}

func (w workflows) rules(name string) []workflowRule {
	rules, ok := w[name]
	if !ok {
		panic(fmt.Sprintf("unknown workflow %q", name))
	}
	return rules
}

func (w workflows) accepts(p ratings) bool {
	name := "in"
	for name != "A" && name != "R" {
		for _, r := range w.rules(name) {
			if r.category < 0 ||
				(r.less && p[r.category] < r.value) ||
				(!r.less && p[r.category] > r.value) {
				name = r.target
				break
			}
		}
	}
	return name == "A"
}

// split returns the parts of sp that do and do not match the rule.
func (r workflowRule) split(sp span) (match, rest span) {
	if r.less {
		return span{sp.lo, min(sp.hi, r.value)}, span{max(sp.lo, r.value), sp.hi}
	}
	return span{max(sp.lo, r.value+1), sp.hi}, span{sp.lo, min(sp.hi, r.value+1)}
}

// acceptedCombinations returns the number of parts within rr that end up
// accepted.
func (w workflows) acceptedCombinations(rr ratingRanges) int {
	type job struct {
		flow string
		rr   ratingRanges
	}
	total := 0
	var todo aoc.Stack[job]
	todo.Push(job{"in", rr})
	todo.While(func(j job) bool {
		switch j.flow {
		case "A":
			total += j.rr.combinations()
			return true
		case "R":
			return true
		}
		cur := j.rr
		for _, r := range w.rules(j.flow) {
			if r.category < 0 {
				todo.Push(job{r.target, cur})
				return true
			}
			match, rest := r.split(cur[r.category])
			if match.lo < match.hi {
				next := cur
				next[r.category] = match
				todo.Push(job{r.target, next})
			}
			if rest.lo >= rest.hi {
				return true
			}
			cur[r.category] = rest
		}
		return true
	})
	return total
}
