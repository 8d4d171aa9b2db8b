// Package day05 checks ingredient ids against ranges of fresh ids.
package day05

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/maisem/aoc2025"
)

var Puzzle = aoc.Day{
	Day:     5,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 3,
		PartTwo: 14,
	},
}

const Sample = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

// Interval is an inclusive range of ids.
type Interval struct {
	Lo, Hi int
}

func (iv Interval) Contains(n int) bool {
	return iv.Lo <= n && n <= iv.Hi
}

func (iv Interval) Len() int {
	return iv.Hi - iv.Lo + 1
}

// Merge sorts ivs and joins intervals that overlap or touch.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	ivs = slices.Clone(ivs)
	slices.SortFunc(ivs, func(a, b Interval) int { return cmp.Compare(a.Lo, b.Lo) })
	out := []Interval{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.Lo <= last.Hi+1 {
			last.Hi = max(last.Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}

func parse(input string) (fresh []Interval, ids []int, err error) {
	secs := aoc.Sections(input)
	if len(secs) != 2 {
		return nil, nil, fmt.Errorf("%w: want 2 sections, got %d", aoc.ErrMalformedInput, len(secs))
	}
	for _, line := range secs[0] {
		lo, hi, err := aoc.Range(line)
		if err != nil {
			return nil, nil, err
		}
		if hi < lo {
			return nil, nil, fmt.Errorf("%w: range %q is reversed", aoc.ErrMalformedInput, line)
		}
		fresh = append(fresh, Interval{lo, hi})
	}
	ids, err = aoc.Ints(secs[1]...)
	if err != nil {
		return nil, nil, err
	}
	return Merge(fresh), ids, nil
}

// PartOne counts the ids that fall in a fresh range.
func PartOne(input string) (int, error) {
	fresh, ids, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		if slices.ContainsFunc(fresh, func(iv Interval) bool { return iv.Contains(id) }) {
			n++
		}
	}
	return n, nil
}

// PartTwo counts the ids covered by any fresh range.
func PartTwo(input string) (int, error) {
	fresh, _, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, iv := range fresh {
		n += iv.Len()
	}
	return n, nil
}
