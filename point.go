package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

// Pt2 is a point on an integer plane. X grows to the right and Y grows
// downward, matching the row order of puzzle input.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Origin is the zero point.
var Origin = Pt{}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Pt2[T]) Add(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + b.X, p.Y + b.Y}
}

func (p Pt2[T]) Sub(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - b.X, p.Y - b.Y}
}

func (p Pt2[T]) Scale(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// Manhattan returns the manhattan distance between p and the origin.
func (p Pt2[T]) Manhattan() T {
	return AbsDiff(p.X, 0) + AbsDiff(p.Y, 0)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Step returns the point one unit away from p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	dp := d.Delta()
	return Pt2[T]{p.X + T(dp.X), p.Y + T(dp.Y)}
}

// Move steps p in place.
func (p *Pt2[T]) Move(d Direction) {
	*p = p.Step(d)
}

// Neighbors4 returns the axis-adjacent points in Directions order. No bounds
// are applied.
func (p Pt2[T]) Neighbors4() [4]Pt2[T] {
	var out [4]Pt2[T]
	for i, d := range Directions {
		out[i] = p.Step(d)
	}
	return out
}

// Neighbors8 returns the 8 surrounding points in row-major order. No bounds
// are applied.
func (p Pt2[T]) Neighbors8() [8]Pt2[T] {
	var out [8]Pt2[T]
	i := 0
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			out[i] = Pt2[T]{p.X + x, p.Y + y}
			i++
		}
	}
	return out
}

// InBounds reports whether p lies within a width x height rectangle anchored
// at the origin.
func (p Pt2[T]) InBounds(width, height T) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}
