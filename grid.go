package aoc

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"tailscale.com/util/deephash"
)

// Grid is a dense, fixed-size 2D array of cells addressed by Pt. Cells are
// stored row-major.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// NewGrid returns a width x height grid with every cell set to fill.
func NewGrid[T any](width, height int, fill T) (*Grid[T], error) {
	if width < 0 || height < 0 || (width > 0 && height > math.MaxInt/width) {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrMalformedInput, width, height)
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g, nil
}

// MakeGrid returns a zero-valued grid. It panics on negative dimensions.
func MakeGrid[T any](width, height int) *Grid[T] {
	var zero T
	return MustGet(NewGrid(width, height, zero))
}

// ParseGrid builds a byte grid from text, one row per line. Leading and
// trailing blank lines are ignored. All rows must be as wide as the first.
func ParseGrid(text string) (*Grid[byte], error) {
	return ParseGridFunc(text, func(b byte) (byte, error) { return b, nil })
}

// ParseGridFunc is like ParseGrid but converts each byte with f.
func ParseGridFunc[T any](text string, f func(byte) (T, error)) (*Grid[T], error) {
	text = strings.Trim(text, "\r\n")
	if text == "" {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedInput)
	}
	lines := strings.Split(text, "\n")
	g := &Grid[T]{
		width:  len(strings.TrimSuffix(lines[0], "\r")),
		height: len(lines),
	}
	g.cells = make([]T, 0, g.width*g.height)
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != g.width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedInput, y, len(line), g.width)
		}
		for x := 0; x < len(line); x++ {
			v, err := f(line[x])
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", Pt{x, y}, err)
			}
			g.cells = append(g.cells, v)
		}
	}
	return g, nil
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

func (g *Grid[T]) Size() Pt {
	return Pt{g.width, g.height}
}

func (g *Grid[T]) InBounds(p Pt) bool {
	return p.InBounds(g.width, g.height)
}

func (g *Grid[T]) index(p Pt) int {
	return p.Y*g.width + p.X
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Pt) T {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("point %v outside %dx%d grid", p, g.width, g.height))
	}
	return g.cells[g.index(p)]
}

// Get returns the cell at p, or false if p is out of bounds.
func (g *Grid[T]) Get(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// Ptr returns a pointer to the cell at p, or false if p is out of bounds.
func (g *Grid[T]) Ptr(p Pt) (*T, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[g.index(p)], true
}

// Set stores v at p. Writes outside the grid are dropped; check InBounds
// first if that matters.
func (g *Grid[T]) Set(p Pt, v T) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = v
	}
}

// Neighbors4 yields the in-bounds axis-adjacent points of p.
func (g *Grid[T]) Neighbors4(p Pt) iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		for _, n := range p.Neighbors4() {
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// Neighbors8 yields the in-bounds points surrounding p, diagonals included.
func (g *Grid[T]) Neighbors8(p Pt) iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		for _, n := range p.Neighbors8() {
			if g.InBounds(n) && !yield(n) {
				return
			}
		}
	}
}

// All yields every point and its value in row-major order.
func (g *Grid[T]) All() iter.Seq2[Pt, T] {
	return func(yield func(Pt, T) bool) {
		for i, v := range g.cells {
			if !yield(Pt{i % g.width, i / g.width}, v) {
				return
			}
		}
	}
}

// Find returns the first point in row-major order whose value satisfies
// match.
func (g *Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for p, v := range g.All() {
		if match(v) {
			return p, true
		}
	}
	return Pt{}, false
}

// FindAll returns every point whose value satisfies match, in row-major
// order.
func (g *Grid[T]) FindAll(match func(T) bool) []Pt {
	var out []Pt
	for p, v := range g.All() {
		if match(v) {
			out = append(out, p)
		}
	}
	return out
}

func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if match(v) {
			n++
		}
	}
	return n
}

// RotateRow shifts row y right by n cells, wrapping around.
func (g *Grid[T]) RotateRow(y, n int) {
	if y < 0 || y >= g.height || g.width == 0 {
		return
	}
	rotateRight(g.cells[y*g.width:(y+1)*g.width], n)
}

// RotateColumn shifts column x down by n cells, wrapping around.
func (g *Grid[T]) RotateColumn(x, n int) {
	if x < 0 || x >= g.width || g.height == 0 {
		return
	}
	col := make([]T, g.height)
	for y := range col {
		col[y] = g.cells[y*g.width+x]
	}
	rotateRight(col, n)
	for y, v := range col {
		g.cells[y*g.width+x] = v
	}
}

func rotateRight[T any](s []T, n int) {
	n %= len(s)
	if n < 0 {
		n += len(s)
	}
	slices.Reverse(s)
	slices.Reverse(s[:n])
	slices.Reverse(s[n:])
}

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	out := &Grid[T]{
		width:  g.height,
		height: g.width,
		cells:  make([]T, len(g.cells)),
	}
	for p, v := range g.All() {
		out.cells[out.index(Pt{p.Y, p.X})] = v
	}
	return out
}

func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  slices.Clone(g.cells),
	}
}

// Hash returns a digest of the grid's size and contents.
func (g *Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(g)
}

// Rows yields each row top to bottom. The slices share storage with g.
func (g *Grid[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for y := 0; y < g.height; y++ {
			if !yield(g.cells[y*g.width : (y+1)*g.width : (y+1)*g.width]) {
				return
			}
		}
	}
}

// String renders the grid one row per line. Byte grids print as text.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for row := range g.Rows() {
		if b, ok := any(row).([]byte); ok {
			sb.Write(b)
		} else {
			for x, v := range row {
				if x > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
