// Package day01 turns a combination dial.
package day01

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

const (
	dialSize  = 100
	dialStart = 50
)

var Puzzle = aoc.Day{
	Day:     1,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 3,
		PartTwo: 6,
	},
}

const Sample = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
`

// Dial is a dial numbered 0 through 99.
type Dial struct {
	Pos int
}

// Rotate turns the dial by n clicks, left if n is negative, and returns
// how many clicks left it pointing at 0.
func (d *Dial) Rotate(n int) int {
	var zeros int
	if n >= 0 {
		zeros = (d.Pos + n) / dialSize
	} else {
		n = -n
		switch {
		case d.Pos == 0:
			zeros = n / dialSize
		case n >= d.Pos:
			zeros = (n-d.Pos)/dialSize + 1
		}
		n = -n
	}
	d.Pos = ((d.Pos+n)%dialSize + dialSize) % dialSize
	return zeros
}

func parse(input string) ([]int, error) {
	var out []int
	for _, line := range aoc.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		amount := line[1:]
		if amount == "" || amount[0] < '0' || amount[0] > '9' {
			return nil, fmt.Errorf("%w: bad rotation %q", aoc.ErrMalformedInput, line)
		}
		n, err := aoc.Int(amount)
		if err != nil {
			return nil, err
		}
		switch line[0] {
		case 'L', 'l':
			n = -n
		case 'R', 'r':
		default:
			return nil, fmt.Errorf("%w: bad rotation %q", aoc.ErrMalformedInput, line)
		}
		out = append(out, n)
	}
	return out, nil
}

// PartOne counts the rotations that leave the dial at 0.
func PartOne(input string) (int, error) {
	rots, err := parse(input)
	if err != nil {
		return 0, err
	}
	d := Dial{Pos: dialStart}
	count := 0
	for _, n := range rots {
		d.Rotate(n)
		if d.Pos == 0 {
			count++
		}
	}
	return count, nil
}

// PartTwo counts every click that lands on 0, including those in the
// middle of a rotation.
func PartTwo(input string) (int, error) {
	rots, err := parse(input)
	if err != nil {
		return 0, err
	}
	d := Dial{Pos: dialStart}
	count := 0
	for _, n := range rots {
		count += d.Rotate(n)
	}
	return count, nil
}
