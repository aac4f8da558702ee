package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts      []Pt
		area     int
		bounded  int
		interior int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			area:     25,
			bounded:  36,
			interior: 16,
		},
		{
			// Same square, the other way around.
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 0, Y: 5},
				{X: 5, Y: 5},
				{X: 5, Y: 0},
				{X: 0, Y: 0},
			},
			area:     25,
			bounded:  36,
			interior: 16,
		},
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 2, Y: 0},
				{X: 2, Y: 1},
				{X: 1, Y: 1},
				{X: 1, Y: 2},
				{X: 0, Y: 2},
				{X: 0, Y: 0},
			},
			area:     3,
			bounded:  8,
			interior: 0,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.area {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.area)
		}
		if got := PolygonBoundedPoints(tt.pts); got != tt.bounded {
			t.Errorf("PolygonBoundedPoints(%v) = %v, want %v", tt.pts, got, tt.bounded)
		}
		if got := PolygonInteriorPoints(tt.pts); got != tt.interior {
			t.Errorf("PolygonInteriorPoints(%v) = %v, want %v", tt.pts, got, tt.interior)
		}
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in            []int
		next, previous int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, Extrapolate(tt.in, true), "next of %v", tt.in)
		assert.Equal(t, tt.previous, Extrapolate(tt.in, false), "previous of %v", tt.in)
	}
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, 6, LCM(2, 3))
	assert.Equal(t, 12, LCM(4, 6, 12))
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 0x70c71, ParseHex("#70c71"))
	assert.Equal(t, 255, ParseHex("0xff"))
	assert.Equal(t, []int{1, -2, 30}, Fields(" 1  -2 30 "))
	assert.Equal(t, []int{4, 2}, Digits("42"))
	assert.Equal(t, 3, AbsDiff(2, 5))
	assert.Equal(t, 8, Pt{1, 2}.MDist(Pt{-3, -2}))

	hi, lo := SolveQuad(1, -7, 10)
	assert.Equal(t, 5.0, hi)
	assert.Equal(t, 2.0, lo)
}

func TestNumberPanics(t *testing.T) {
	assert.PanicsWithValue(t, `not a digit: 'x'`, func() { Digit('x') })
	assert.PanicsWithValue(t, "no real roots", func() { SolveQuad(1, 0, 1) })
}
