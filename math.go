package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for _, c := range line {
		d, err := Digit(c)
		if err != nil {
			return nil, err
		}
		in = append(in, d)
	}
	return in, nil
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: not a digit: %q", ErrMalformedInput, r)
	}
	return int(r - '0'), nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return n, nil
}

// Ints returns the int values of the strings.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Int(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Range parses an inclusive "lo-hi" pair.
func Range(s string) (lo, hi int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: range %q has no '-'", ErrMalformedInput, s)
	}
	if lo, err = Int(a); err != nil {
		return 0, 0, err
	}
	if hi, err = Int(b); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
