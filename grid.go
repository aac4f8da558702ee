package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Contains reports whether p is within the bounds of the grid.
func (g Grid[T]) Contains(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid returns a grid with one row per line, mapping each byte with f.
func ParseGrid[T any](lines []string, f func(byte) T) Grid[T] {
	out := make(Grid[T], len(lines))
	for y, line := range lines {
		out[y] = make([]T, len(line))
		for x := 0; x < len(line); x++ {
			out[y][x] = f(line[x])
		}
	}
	return out
}

// Find returns the first point, in row order, holding v.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// RotateClockwiseInto writes g rotated a quarter turn clockwise into out,
// which must be sized with g's width as its height.
func (g Grid[T]) RotateClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateClockwiseInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// EdgePaths returns a path entering the grid at every edge cell, heading
// away from that edge.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// ToGraph converts the cells reachable from start into a graph with an edge
// of weight 1 between neighboring cells. If allowDiagonals is true, then
// diagonal neighbors are included. If disallowed is not nil, it is
// additionally called on each cell, and if it returns true, that cell is not
// included in the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.AddNode(start)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	visited := make(map[Pt]bool)
	q := NewQueue[Pt](start)
	q.While(func(p1 Pt) bool {
		if visited[p1] {
			return true
		}
		visited[p1] = true
		fn(p1, func(p2 Pt) (keepGoing bool) {
			v, ok := grid.AtOk(p2)
			if !ok || (disallowed != nil && disallowed(v)) {
				return true
			}
			if visited[p2] {
				return true // edge added from the other side
			}
			q.Push(p2)
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	return g
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one cell in its direction. It reports false if that leaves
// the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.Contains(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction in clockwise order.
var Directions = []Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	switch d {
	case Up:
		if right {
			return Right
		}
		return Left
	case Right:
		if right {
			return Down
		}
		return Up
	case Down:
		if right {
			return Left
		}
		return Right
	case Left:
		if right {
			return Up
		}
		return Down
	}
	panic("bad")
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta returns the unit vector for d, with Y growing downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Step returns the point next to p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	dd := d.Delta()
	return Pt2[T]{p.X + T(dd.X), p.Y + T(dd.Y)}
}

// StandardizePt maps p onto a grid of the given size that repeats
// infinitely in every direction.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
