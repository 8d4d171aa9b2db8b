// Package day03 picks the largest joltage each battery bank can produce.
package day03

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

var Puzzle = aoc.Day{
	Day:     3,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 357,
		PartTwo: 3121910778619,
	},
}

const Sample = `987654321111111
811111111111119
234234234234278
818181911112111
`

func PartOne(input string) (int, error) {
	return totalJoltage(input, 2)
}

func PartTwo(input string) (int, error) {
	return totalJoltage(input, 12)
}

func totalJoltage(input string, n int) (int, error) {
	total := 0
	for i, line := range aoc.Lines(input) {
		bank, err := aoc.Digits(strings.TrimSpace(line))
		if err != nil {
			return 0, fmt.Errorf("bank %d: %w", i, err)
		}
		j, err := MaxJoltage(bank, n)
		if err != nil {
			return 0, fmt.Errorf("bank %d: %w", i, err)
		}
		total += j
	}
	return total, nil
}

// MaxJoltage returns the largest number formed by n digits of bank, taken
// in order.
func MaxJoltage(bank []int, n int) (int, error) {
	if n > len(bank) {
		return 0, fmt.Errorf("%w: bank of %d batteries cannot supply %d", aoc.ErrMalformedInput, len(bank), n)
	}
	v, start := 0, 0
	for left := n; left > 0; left-- {
		// Leave room for the left-1 digits still to pick.
		i := largest(bank[start : len(bank)-left+1])
		v = v*10 + bank[start+i]
		start += i + 1
	}
	return v, nil
}

// largest returns the index of the first occurrence of the maximum.
func largest(s []int) int {
	best := 0
	for i, v := range s {
		if v > s[best] {
			best = i
		}
	}
	return best
}
