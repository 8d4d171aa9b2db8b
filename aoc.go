// Package aoc holds the point, direction and grid helpers shared by Maisem's
// Advent of Code 2025 solutions, and the runner that maps a day number to
// its pair of solutions. (forked from maisem/aoc)
package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"
)

var (
	// ErrNoInput is returned when a day's input file does not exist.
	ErrNoInput = errors.New("no input file found")
	// ErrNotImplemented is returned for a day with no registered solution.
	ErrNotImplemented = errors.New("day not implemented")
	// ErrMalformedInput wraps every parse failure.
	ErrMalformedInput = errors.New("malformed input")
	// ErrSampleMismatch is returned when a solution disagrees with the
	// expected answer for its sample.
	ErrSampleMismatch = errors.New("sample mismatch")
)

// Part solves one half of a puzzle.
type Part func(input string) (int, error)

// Sample is a puzzle's worked example and its expected answers.
type Sample struct {
	Input   string
	PartOne int
	PartTwo int
}

// Day is a registered puzzle.
type Day struct {
	Day     int
	PartOne Part
	PartTwo Part
	Sample  Sample
}

//go:generate mockgen -source=aoc.go -destination=mock_source_test.go -package=aoc InputSource

// InputSource loads the puzzle input for a day.
type InputSource interface {
	Input(day int) (string, error)
}

// DirSource reads inputs from Dir. Pattern is a format string that is given
// the day number, e.g. "day%02d.txt".
type DirSource struct {
	Dir     string
	Pattern string
}

func (s DirSource) Input(day int) (string, error) {
	name := filepath.Join(s.Dir, fmt.Sprintf(s.Pattern, day))
	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: day %d (%s)", ErrNoInput, day, name)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Mode selects which input a Runner solves.
type Mode int

const (
	// ModeInput solves the real input only.
	ModeInput Mode = iota
	// ModeCheck verifies the sample first, then solves the real input.
	ModeCheck
	// ModeSample verifies and reports the sample only.
	ModeSample
)

// Runner dispatches a day number to its registered solutions.
type Runner struct {
	Source InputSource
	Logger *log.Logger // nil discards logs
	Mode   Mode

	days map[int]Day
}

// NewRunner returns a Runner for days. Registering the same day twice is an
// error.
func NewRunner(src InputSource, logger *log.Logger, days ...Day) (*Runner, error) {
	if logger == nil {
		logger = discard
	}
	r := &Runner{
		Source: src,
		Logger: logger,
		days:   make(map[int]Day, len(days)),
	}
	for _, d := range days {
		if d.PartOne == nil || d.PartTwo == nil {
			return nil, fmt.Errorf("day %d: missing solution", d.Day)
		}
		if _, dup := r.days[d.Day]; dup {
			return nil, fmt.Errorf("day %d registered twice", d.Day)
		}
		r.days[d.Day] = d
	}
	return r, nil
}

// Days returns the registered day numbers in order.
func (r *Runner) Days() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

var partNames = [2]string{"one", "two"}

var discard = log.New(io.Discard)

// Run solves day and writes its report to w. Nothing is written unless
// both parts succeed.
func (r *Runner) Run(w io.Writer, day int) error {
	d, ok := r.days[day]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotImplemented, day)
	}
	if r.Mode != ModeInput {
		got, err := r.checkSample(d)
		if err != nil {
			return err
		}
		if r.Mode == ModeSample {
			return report(w, day, got)
		}
	}
	input, err := r.Source.Input(day)
	if err != nil {
		return err
	}
	got, err := r.solve(d, input, false)
	if err != nil {
		return err
	}
	return report(w, day, got)
}

func (r *Runner) checkSample(d Day) ([2]int, error) {
	if d.Sample.Input == "" {
		return [2]int{}, fmt.Errorf("day %d has no sample", d.Day)
	}
	got, err := r.solve(d, d.Sample.Input, true)
	if err != nil {
		return got, err
	}
	want := [2]int{d.Sample.PartOne, d.Sample.PartTwo}
	for i := range got {
		if got[i] != want[i] {
			r.logger().Error("sample", "day", d.Day, "part", partNames[i], "got", got[i], "want", want[i])
			return got, fmt.Errorf("%w: day %d part %s: got %d, want %d", ErrSampleMismatch, d.Day, partNames[i], got[i], want[i])
		}
	}
	r.logger().Info("sample ok", "day", d.Day)
	return got, nil
}

func (r *Runner) solve(d Day, input string, sample bool) ([2]int, error) {
	var got [2]int
	for i, part := range [2]Part{d.PartOne, d.PartTwo} {
		t0 := time.Now()
		v, err := part(input)
		if err != nil {
			return got, fmt.Errorf("day %d part %s: %w", d.Day, partNames[i], err)
		}
		got[i] = v
		r.logger().Debug("solved", "day", d.Day, "part", partNames[i], "sample", sample, "took", time.Since(t0).Round(time.Microsecond))
	}
	return got, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return discard
	}
	return r.Logger
}

func report(w io.Writer, day int, got [2]int) error {
	_, err := fmt.Fprintf(w, "\nDay %02d\n\n  Part one: %d\n  Part two: %d\n", day, got[0], got[1])
	return err
}

// Lines splits text into lines. Leading and trailing newlines are dropped,
// as is a '\r' at the end of each line. Other whitespace is kept.
func Lines(text string) []string {
	text = strings.Trim(text, "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Sections splits text into blocks separated by blank lines.
func Sections(text string) [][]string {
	var out [][]string
	var cur []string
	for _, l := range Lines(text) {
		if strings.TrimSpace(l) == "" {
			if cur != nil {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if cur != nil {
		out = append(out, cur)
	}
	return out
}
