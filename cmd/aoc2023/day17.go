package main

import aoc "github.com/maisem/aoc2023"

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657665533
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return minHeatLoss(s.Lines(), 1, 3)
}

/*
want=71

111111111111
999999999991
999999999991
999999999991
999999999991
*/
func (s solver) D17p2() any {
	return minHeatLoss(s.Lines(), 4, 10)
}

type crucibleKind int

const (
	crucibleStart crucibleKind = iota
	crucibleBlock
	crucibleEnd
)

// crucibleNode is a crucible that just moved Run blocks in a row heading
// Dir to reach Pt. The start and end nodes stand in for the first and last
// moves and carry no direction.
type crucibleNode struct {
	kind crucibleKind
	Pt   aoc.Pt
	Dir  aoc.Direction
	Run  int
}

// crucibleSpace is the state space of a crucible that must move at least
// minRun and at most maxRun blocks in a straight line, from the top left
// block to the bottom right one.
type crucibleSpace struct {
	g              aoc.Grid[int]
	minRun, maxRun int
	end            aoc.Pt
}

func (c crucibleSpace) Neighbors(n crucibleNode) []crucibleNode {
	var out []crucibleNode
	switch n.kind {
	case crucibleEnd:
		return nil
	case crucibleStart:
		for _, d := range aoc.Directions {
			out = c.enter(out, n.Pt, d, 1)
		}
		return out
	}
	if n.Run < c.maxRun {
		out = c.enter(out, n.Pt, n.Dir, n.Run+1)
	}
	if n.Run >= c.minRun {
		out = c.enter(out, n.Pt, n.Dir.Turn(true), 1)
		out = c.enter(out, n.Pt, n.Dir.Turn(false), 1)
	}
	return out
}

// enter appends the nodes for moving one block from "from" heading d.
func (c crucibleSpace) enter(out []crucibleNode, from aoc.Pt, d aoc.Direction, run int) []crucibleNode {
	p := from.Step(d)
	if !c.g.Contains(p) {
		return out
	}
	out = append(out, crucibleNode{kind: crucibleBlock, Pt: p, Dir: d, Run: run})
	if p == c.end && run >= c.minRun {
		out = append(out, crucibleNode{kind: crucibleEnd, Pt: p})
	}
	return out
}

// Weight is the heat lost entering the block of to.
func (c crucibleSpace) Weight(_, to crucibleNode) int {
	return c.g.At(to.Pt)
}

func minHeatLoss(lines []string, minRun, maxRun int) int {
	g := aoc.ParseGrid(lines, func(b byte) int { return aoc.Digit(rune(b)) })
	size := g.Size()
	space := crucibleSpace{
		g:      g,
		minRun: minRun,
		maxRun: maxRun,
		end:    aoc.Pt{X: size.X - 1, Y: size.Y - 1},
	}
	start := crucibleNode{kind: crucibleStart}
	end := crucibleNode{kind: crucibleEnd, Pt: space.end}
	loss, ok := aoc.ShortestPath[crucibleNode, int](space, start, end)
	if !ok {
		panic("no path to the factory")
	}
	return loss
}
