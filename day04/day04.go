// Package day04 clears paper rolls that forklifts can reach.
package day04

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

const (
	roll  = '@'
	empty = '.'

	// A roll is reachable when fewer than this many rolls surround it.
	crowded = 4
)

var Puzzle = aoc.Day{
	Day:     4,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 13,
		PartTwo: 43,
	},
}

const Sample = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

func parse(input string) (*aoc.Grid[byte], error) {
	return aoc.ParseGridFunc(input, func(b byte) (byte, error) {
		if b != roll && b != empty {
			return 0, fmt.Errorf("%w: unexpected %q", aoc.ErrMalformedInput, b)
		}
		return b, nil
	})
}

// PartOne counts the rolls that can be removed right away.
func PartOne(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return len(Removable(g)), nil
}

// PartTwo counts every roll removed by repeating RemovePass until nothing
// more can be removed.
func PartTwo(input string) (int, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	removed := 0
	for {
		n := RemovePass(g)
		if n == 0 {
			return removed, nil
		}
		removed += n
	}
}

func isRoll(b byte) bool { return b == roll }

// Removable returns the rolls with fewer than four rolls among their eight
// neighbors, in row-major order.
func Removable(g *aoc.Grid[byte]) []aoc.Pt {
	var out []aoc.Pt
	for _, p := range g.FindAll(isRoll) {
		n := 0
		for q := range g.Neighbors8(p) {
			if g.At(q) == roll {
				n++
			}
		}
		if n < crowded {
			out = append(out, p)
		}
	}
	return out
}

// RemovePass clears every roll that is removable in the current state of g
// and returns how many were cleared. All candidates are picked before any
// is cleared.
func RemovePass(g *aoc.Grid[byte]) int {
	rm := Removable(g)
	for _, p := range rm {
		g.Set(p, empty)
	}
	return len(rm)
}
