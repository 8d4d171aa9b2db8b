// Package day02 sums product ids made of a repeated block of digits.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/maisem/aoc2025"
)

var Puzzle = aoc.Day{
	Day:     2,
	PartOne: PartOne,
	PartTwo: PartTwo,
	Sample: aoc.Sample{
		Input:   Sample,
		PartOne: 1227775554,
		PartTwo: 4174379265,
	},
}

const Sample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124"

// Go's regexp has no backreferences.
var (
	doubled  = regexp2.MustCompile(`^(\d+)\1$`, regexp2.None)
	repeated = regexp2.MustCompile(`^(\d+?)\1+$`, regexp2.None)
)

// PartOne sums the ids that are a block of digits written exactly twice.
func PartOne(input string) (int, error) {
	return sumMatching(input, doubled)
}

// PartTwo sums the ids that are a block of digits written two or more
// times.
func PartTwo(input string) (int, error) {
	return sumMatching(input, repeated)
}

// A range is split into at most spanParts spans of at least minSpan ids
// each, so the work list stays proportional to the number of ranges.
const (
	spanParts = 64
	minSpan   = 1 << 10
)

// span is an inclusive run of ids handed to one worker.
type span struct {
	lo, hi int
}

func sumMatching(input string, rx *regexp2.Regexp) (int, error) {
	work, err := spans(input)
	if err != nil {
		return 0, err
	}
	return aoc.ParallelSum(work, 0, func(sp span) (int, error) {
		sum := 0
		for id := sp.lo; ; id++ {
			ok, err := rx.MatchString(strconv.Itoa(id))
			if err != nil {
				return 0, err
			}
			if ok {
				sum += id
			}
			if id == sp.hi {
				return sum, nil
			}
		}
	})
}

// spans parses the comma-separated inclusive ranges in input and splits
// each one into spans.
func spans(input string) ([]span, error) {
	var out []span
	for _, rng := range strings.Split(strings.TrimSpace(input), ",") {
		lo, hi, err := aoc.Range(rng)
		if err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, fmt.Errorf("%w: range %q is reversed", aoc.ErrMalformedInput, rng)
		}
		step := max((hi-lo)/spanParts+1, minSpan)
		for s := lo; ; {
			e := hi
			if hi-s >= step {
				e = s + step - 1
			}
			out = append(out, span{s, e})
			if e == hi {
				break
			}
			s = e + 1
		}
	}
	return out, nil
}
