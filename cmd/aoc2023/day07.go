package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2023"
	"golang.org/x/exp/maps"
)

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return camelWinnings(s.Lines(), false)
}

// want=5905
func (s solver) D7p2() any {
	return camelWinnings(s.Lines(), true)
}

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type camelHand struct {
	cards string
	bid   int
	kind  int
}

// handKind ranks a hand from 0 (high card) to 6 (five of a kind). With
// jokers, every J joins the most common other card.
func handKind(cards string, jokers bool) int {
	counts := map[rune]int{}
	nj := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			nj++
			continue
		}
		counts[c]++
	}
	cs := maps.Values(counts)
	slices.Sort(cs)
	slices.Reverse(cs)
	if len(cs) == 0 {
		cs = []int{0}
	}
	cs[0] += nj
	switch {
	case cs[0] == 5:
		return 6
	case cs[0] == 4:
		return 5
	case cs[0] == 3 && cs[1] == 2:
		return 4
	case cs[0] == 3:
		return 3
	case cs[0] == 2 && cs[1] == 2:
		return 2
	case cs[0] == 2:
		return 1
	}
	return 0
}

func camelWinnings(lines []string, jokers bool) int {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	var hands []camelHand
	for _, line := range lines {
		cards, bid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			panic(fmt.Sprintf("bad hand %q", line))
		}
		hands = append(hands, camelHand{
			cards: cards,
			bid:   aoc.Int(bid),
			kind:  handKind(cards, jokers),
		})
	}
	slices.SortFunc(hands, func(a, b camelHand) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		for i := range a.cards {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return total
}
