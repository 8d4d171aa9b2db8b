// Package day07 follows a tachyon beam down through a manifold of
// splitters.
package day07

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

const (
	start    = 'S'
	space    = '.'
	splitter = '^'
)

var Puzzle = aoc.Day{
	Day:     7,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 21,
		PartTwo: 40,
	},
}

const Sample = `
.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
`

// Stats summarizes a beam's descent.
type Stats struct {
	// Splits counts splitter hits, with beams that share a cell counted
	// once.
	Splits int
	// Peak is the largest number of beams alive after any step, counting
	// every path that reached a cell separately.
	Peak int
}

// Descend sends a beam down from the S cell of g. Each step moves every
// beam one row down. A beam that lands on a splitter is replaced by one on
// each side of it, and a beam that leaves the grid is dropped.
func Descend(g *aoc.Grid[byte]) (Stats, error) {
	origin, ok := g.Find(func(b byte) bool { return b == start })
	if !ok {
		return Stats{}, fmt.Errorf("%w: no start cell", aoc.ErrMalformedInput)
	}

	// beams maps a beam's position to the number of paths that reached it.
	beams := map[aoc.Pt]int{origin: 1}
	st := Stats{Peak: 1}
	for len(beams) > 0 {
		next := make(map[aoc.Pt]int)
		for b, n := range beams {
			if !g.InBounds(b) {
				continue
			}
			moved := b.Step(aoc.Down)
			c, ok := g.Get(moved)
			if !ok {
				continue
			}
			switch c {
			case space:
				next[moved] += n
			case splitter:
				st.Splits++
				next[moved.Step(aoc.Left)] += n
				next[moved.Step(aoc.Right)] += n
			default:
				return Stats{}, fmt.Errorf("%w: beam hit %q at %v", aoc.ErrMalformedInput, c, moved)
			}
		}
		total := 0
		for _, n := range next {
			total += n
		}
		st.Peak = max(st.Peak, total)
		beams = next
	}
	return st, nil
}

func descend(input string) (Stats, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return Stats{}, err
	}
	return Descend(g)
}

// PartOne counts how many times the beam is split.
func PartOne(input string) (int, error) {
	st, err := descend(input)
	return st.Splits, err
}

// PartTwo counts the timelines a single particle can end up in.
func PartTwo(input string) (int, error) {
	st, err := descend(input)
	return st.Peak, err
}
