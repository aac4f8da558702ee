package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	aoc "github.com/maisem/aoc2023"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDigits(t *testing.T) {
	assert.Equal(t, []int{1, 8, 2, 3, 4}, lineDigits("oneight234", true))
	assert.Equal(t, []int{2, 3, 4}, lineDigits("oneight234", false))
}

func TestParseGame(t *testing.T) {
	id, seen := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	assert.Equal(t, 3, id)
	assert.Equal(t, cubes{red: 20, green: 13, blue: 6}, seen)
	assert.False(t, seen.within(cubes{red: 12, green: 13, blue: 14}))
	assert.Panics(t, func() { parseGame("Game 1: 3 purple") })
}

func TestPartNumbers(t *testing.T) {
	g := aoc.ParseGrid([]string{
		"12.",
		"..*",
		"3.4",
	}, func(b byte) byte { return b })
	pns := partNumbers(g)
	require.Len(t, pns, 3)
	for _, pn := range pns {
		assert.Equal(t, pn.n != 3, pn.symbols.Len() == 1, "number %d", pn.n)
	}
}

func TestAlmanacMapApply(t *testing.T) {
	m := almanacMap{{dst: 50, src: 98, n: 2}, {dst: 52, src: 50, n: 48}}
	got := m.apply([]span{{45, 55}, {99, 101}})
	assert.ElementsMatch(t, []span{{45, 50}, {52, 57}, {51, 52}, {100, 101}}, got)
}

func TestWaysToWin(t *testing.T) {
	assert.Equal(t, 4, waysToWin(7, 9))
	assert.Equal(t, 8, waysToWin(15, 40))
	assert.Equal(t, 9, waysToWin(30, 200))
	assert.Equal(t, 0, waysToWin(2, 5))
}

func TestHandKind(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   int
	}{
		{"32T3K", false, 1},
		{"KK677", false, 2},
		{"T55J5", false, 3},
		{"T55J5", true, 5},
		{"KTJJT", true, 5},
		{"JJJJJ", true, 6},
		{"23332", false, 4},
		{"23456", false, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handKind(tt.cards, tt.jokers), "%s jokers=%v", tt.cards, tt.jokers)
	}
}

func TestGhostCycleShape(t *testing.T) {
	m := parseDesertMap([][]string{
		{"L"},
		{
			"11A = (11B, 11B)",
			"11B = (11Z, 11Z)",
			"11Z = (11C, 11C)",
			"11C = (11Z, 11Z)",
		},
	})
	// Z after 2 steps, then every 2 steps: lines up.
	assert.Equal(t, 2, m.ghostCycle("11A"))

	m.nodes["11A"] = [2]string{"11Z", "11Z"}
	// Z after 1 step, then every 2 steps: does not.
	assert.Panics(t, func() { m.ghostCycle("11A") })
}

func TestWalkLoop(t *testing.T) {
	g := aoc.ParseGrid([]string{
		".....",
		".S-7.",
		".|.|.",
		".L-J.",
		".....",
	}, func(b byte) byte { return b })
	loop := walkLoop(g)
	assert.Len(t, loop, 8)
	assert.Equal(t, aoc.Pt{X: 1, Y: 1}, loop[0])
	assert.Equal(t, 1, aoc.PolygonInteriorPoints(append(loop, loop[0])))

	g = aoc.ParseGrid([]string{
		"-S-",
		".|.",
	}, func(b byte) byte { return b })
	assert.Panics(t, func() { walkLoop(g) }, "three pipes connect to S")
}

func TestGalaxyDistances(t *testing.T) {
	g := aoc.ParseGrid([]string{
		"#..",
		"...",
		"..#",
	}, func(b byte) byte { return b })
	assert.Equal(t, 4, galaxyDistances(g, 1))
	assert.Equal(t, 6, galaxyDistances(g, 2))
	assert.Equal(t, 22, galaxyDistances(g, 10))
}

func TestSpringArrangements(t *testing.T) {
	tests := []struct {
		line  string
		folds int
		want  int
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 1, 4},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 1},
		{"????.######..#####. 1,6,5", 1, 4},
		{"?###???????? 3,2,1", 1, 10},
		{"???.### 1,1,3", 5, 1},
		{".??..??...?##. 1,1,3", 5, 16384},
		{"?###???????? 3,2,1", 5, 506250},
		{"# 1", 1, 1},
		{"# 2", 1, 0},
		{"... 1", 1, 0},
		{"?.??#??.?.????.??.?? 1,4,1,1,1,2", 5, 452659840},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSprings(tt.line, tt.folds).arrangements(), "%s x%d", tt.line, tt.folds)
	}
}

func TestMirrorSmudge(t *testing.T) {
	g := aoc.ParseGrid([]string{
		"#.##..##.",
		"..#.##.#.",
		"##......#",
		"##......#",
		"..#.##.#.",
		"..##..##.",
		"#.#.##.#.",
	}, func(b byte) byte { return b })
	row, ok := mirrorRow(g, 0)
	assert.False(t, ok, "row %d", row)
	col, ok := mirrorRow(g.Transpose(), 0)
	require.True(t, ok)
	assert.Equal(t, 5, col)
	row, ok = mirrorRow(g, 1)
	require.True(t, ok)
	assert.Equal(t, 3, row)
}

func TestHolidayHash(t *testing.T) {
	assert.Equal(t, 52, holidayHash("HASH"))
	assert.Equal(t, 0, holidayHash("rn"))
	assert.Equal(t, []string{"a=1", "b-"}, initSteps([]byte("a=1,\nb-\n")))
}

func TestBeamExits(t *testing.T) {
	assert.Equal(t, []aoc.Direction{aoc.Up}, beamExits('/', aoc.Right))
	assert.Equal(t, []aoc.Direction{aoc.Left}, beamExits('\\', aoc.Up))
	assert.Equal(t, []aoc.Direction{aoc.Up, aoc.Down}, beamExits('|', aoc.Left))
	assert.Equal(t, []aoc.Direction{aoc.Down}, beamExits('|', aoc.Down))
	assert.Equal(t, []aoc.Direction{aoc.Right}, beamExits('.', aoc.Right))
}

func TestMinHeatLossUltra(t *testing.T) {
	lines := strings.Fields(`
111111111111
999999999991
999999999991
999999999991
999999999991`)
	assert.Equal(t, 71, minHeatLoss(lines, 4, 10))
	assert.Equal(t, 59, minHeatLoss(lines, 1, 3))
}

func TestCrucibleNeighbors(t *testing.T) {
	g := aoc.MakeGrid[int](5, 5)
	space := crucibleSpace{g: g, minRun: 4, maxRun: 10, end: aoc.Pt{X: 4, Y: 4}}

	start := space.Neighbors(crucibleNode{kind: crucibleStart})
	assert.ElementsMatch(t, []crucibleNode{
		{kind: crucibleBlock, Pt: aoc.Pt{X: 1, Y: 0}, Dir: aoc.Right, Run: 1},
		{kind: crucibleBlock, Pt: aoc.Pt{X: 0, Y: 1}, Dir: aoc.Down, Run: 1},
	}, start)

	// Too short a run to turn or stop.
	n := crucibleNode{kind: crucibleBlock, Pt: aoc.Pt{X: 4, Y: 2}, Dir: aoc.Down, Run: 2}
	assert.Equal(t, []crucibleNode{
		{kind: crucibleBlock, Pt: aoc.Pt{X: 4, Y: 3}, Dir: aoc.Down, Run: 3},
	}, space.Neighbors(n))

	n = crucibleNode{kind: crucibleBlock, Pt: aoc.Pt{X: 4, Y: 3}, Dir: aoc.Down, Run: 3}
	assert.Contains(t, space.Neighbors(n), crucibleNode{kind: crucibleEnd, Pt: aoc.Pt{X: 4, Y: 4}})
	assert.Empty(t, space.Neighbors(crucibleNode{kind: crucibleEnd}))
}

func TestLagoonSize(t *testing.T) {
	lines := []string{
		"R 2 (#000020)",
		"D 2 (#000021)",
		"L 2 (#000022)",
		"U 2 (#000023)",
	}
	part1 := func(dir, n, _ string) (aoc.Direction, int) { return digDirs[dir[0]], aoc.Int(n) }
	assert.Equal(t, 9, lagoonSize(lines, part1))
	assert.Panics(t, func() { lagoonSize(lines[:3], part1) })
}

func TestAcceptedCombinations(t *testing.T) {
	flows := parseWorkflows([]string{
		"in{x<11:A,m>3990:A,R}",
	})
	var all ratingRanges
	for i := range all {
		all[i] = span{1, 4001}
	}
	// x in 1..10 with anything else, plus x in 11..4000 with m in 3991..4000.
	want := 10*4000*4000*4000 + 3990*10*4000*4000
	assert.Equal(t, want, flows.acceptedCombinations(all))
	assert.True(t, flows.accepts(ratings{10, 1, 1, 1}))
	assert.False(t, flows.accepts(ratings{11, 3990, 1, 1}))
}

func TestMachine(t *testing.T) {
	m := parseMachine(strings.Split(`broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`, "\n"))
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
	assert.Equal(t, 8000, lo)
	assert.Equal(t, 4000, hi)
}

func TestPressesUntilLow(t *testing.T) {
	// hub hears a high pulse from x every 2 presses and from y every 4.
	m := parseMachine([]string{
		"broadcaster -> a1, b1",
		"%a1 -> x",
		"%b1 -> b2",
		"%b2 -> y",
		"&x -> hub",
		"&y -> hub",
		"&hub -> rx",
	})
	assert.Equal(t, 4, pressesUntilLow(m, "rx"))

	m = parseMachine([]string{
		"broadcaster -> a",
		"%a -> rx",
	})
	assert.Panics(t, func() { pressesUntilLow(m, "rx") })
}

func TestInfiniteGardenPlots(t *testing.T) {
	g := aoc.ParseGrid([]string{
		"...",
		".S.",
		"...",
	}, func(b byte) byte { return b })
	got := infiniteGardenPlots(g, aoc.Pt{X: 1, Y: 1}, 3)
	// An open plane: (d+1)^2 plots at exactly d steps.
	assert.Equal(t, []int{1, 4, 9, 16}, got)
}

func TestInfiniteGardenLongWalks(t *testing.T) {
	open := []string{
		".....",
		".....",
		"..S..",
		".....",
		".....",
	}
	rocks := []string{
		".......",
		".#...#.",
		".......",
		"...S...",
		".......",
		".#...#.",
		".......",
	}
	big := make([]string, 301)
	for y := range big {
		big[y] = strings.Repeat(".", 301)
	}
	big[150] = strings.Repeat(".", 150) + "S" + strings.Repeat(".", 150)

	tests := []struct {
		name   string
		garden []string
		steps  int
		want   int
	}{
		{"open", open, 1001, 1002 * 1002},
		{"rocks", rocks, 1001, 921636},
		{"rocks", rocks, 1200, 1324753},
		// Too few copies of the garden to extrapolate from.
		{"big", big, 1001, 1002 * 1002},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.name, tt.steps), func(t *testing.T) {
			g := aoc.ParseGrid(tt.garden, func(b byte) byte { return b })
			start, ok := aoc.Find(g, 'S')
			require.True(t, ok)
			assert.Equal(t, tt.want, infiniteGardenPlots(g, start, tt.steps)[tt.steps])

			src := fstest.MapFS{
				"garden.go": {Data: []byte(fmt.Sprintf("package main\n\n/*\nwant=%d args=%d\n\n%s\n*/\nfunc (s solver) D21p2() any { return nil }\n",
					tt.want, tt.steps, strings.Join(tt.garden, "\n")))},
			}
			results := aoc.RunSamples(src, &solver{})
			require.Len(t, results, 1)
			require.NoError(t, results[0].Err)
			assert.Equal(t, strconv.Itoa(tt.want), results[0].Got)
		})
	}
}

func TestBadSampleIsAnError(t *testing.T) {
	src := fstest.MapFS{
		"city.go": {Data: []byte("package main\n\n/*\nwant=1\n\n12\n3x\n*/\nfunc (s solver) D17p1() any { return nil }\n")},
	}
	results := aoc.RunSamples(src, &solver{})
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "not a digit")
}
