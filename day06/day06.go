// Package day06 solves a cephalopod math worksheet.
package day06

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maisem/aoc2025"
)

var Puzzle = aoc.Day{
	Day:     6,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 4277556,
		PartTwo: 3263827,
	},
}

const Sample = "123 328  51 64 \n" +
	" 45 64  387 23 \n" +
	"  6 98  215 314\n" +
	"*   +   *   +  \n"

func apply(op byte, nums []int) (int, error) {
	switch op {
	case '+':
		return aoc.Sum(nums...), nil
	case '*':
		return aoc.Product(nums...), nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", aoc.ErrMalformedInput, op)
}

func split(input string) (rows []string, ops string, err error) {
	lines := aoc.Lines(input)
	if len(lines) < 2 {
		return nil, "", fmt.Errorf("%w: worksheet needs numbers and operators", aoc.ErrMalformedInput)
	}
	return lines[:len(lines)-1], lines[len(lines)-1], nil
}

// PartOne reads each problem as a column of whitespace-separated numbers.
func PartOne(input string) (int, error) {
	rows, opLine, err := split(input)
	if err != nil {
		return 0, err
	}
	ops := strings.Fields(opLine)
	cols := make([][]int, len(ops))
	for y, row := range rows {
		nums, err := aoc.Ints(strings.Fields(row)...)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", y, err)
		}
		if len(nums) != len(ops) {
			return 0, fmt.Errorf("%w: row %d has %d numbers, want %d", aoc.ErrMalformedInput, y, len(nums), len(ops))
		}
		for x, n := range nums {
			cols[x] = append(cols[x], n)
		}
	}
	total := 0
	for x, op := range ops {
		if len(op) != 1 {
			return 0, fmt.Errorf("%w: unknown operator %q", aoc.ErrMalformedInput, op)
		}
		v, err := apply(op[0], cols[x])
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// PartTwo reads every character column top to bottom as one number.
// Problems are separated by columns of spaces and take their operator from
// the bottom row.
func PartTwo(input string) (int, error) {
	rows, opLine, err := split(input)
	if err != nil {
		return 0, err
	}
	lines := slices.Concat(rows, []string{opLine})
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}
	g, err := aoc.ParseGrid(strings.Join(lines, "\n"))
	if err != nil {
		return 0, err
	}

	// Each row of cols is one column of the worksheet; its last cell is
	// the operator row.
	cols := g.Transpose()
	h := cols.Width() - 1
	total := 0
	var (
		nums []int
		op   byte
	)
	flush := func() error {
		if len(nums) == 0 {
			return nil
		}
		v, err := apply(op, nums)
		total += v
		nums, op = nil, 0
		return err
	}
	var sb strings.Builder
	for x := 0; x < cols.Height(); x++ {
		sb.Reset()
		for y := 0; y < h; y++ {
			sb.WriteByte(cols.At(aoc.Pt{X: y, Y: x}))
		}
		digits := strings.TrimSpace(sb.String())
		c := cols.At(aoc.Pt{X: h, Y: x})
		if digits == "" {
			if c != ' ' {
				return 0, fmt.Errorf("%w: operator %q over an empty column", aoc.ErrMalformedInput, c)
			}
			if err := flush(); err != nil {
				return 0, err
			}
			continue
		}
		if c != ' ' {
			op = c
		}
		n, err := aoc.Int(digits)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", x, err)
		}
		nums = append(nums, n)
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return total, nil
}
