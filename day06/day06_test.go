package day06

import (
	"errors"
	"testing"

	"github.com/maisem/aoc2025"
)

func TestSample(t *testing.T) {
	if got, err := PartOne(Sample); err != nil || got != 4277556 {
		t.Errorf("PartOne(Sample) = %v, %v; want 4277556", got, err)
	}
	if got, err := PartTwo(Sample); err != nil || got != 3263827 {
		t.Errorf("PartTwo(Sample) = %v, %v; want 3263827", got, err)
	}
}

func TestPartTwoRaggedLines(t *testing.T) {
	// Trailing spaces trimmed by an editor must not change the answer.
	in := "123 328  51 64\n" +
		" 45 64  387 23\n" +
		"  6 98  215 314\n" +
		"*   +   *   +\n"
	if got, err := PartTwo(in); err != nil || got != 3263827 {
		t.Errorf("PartTwo = %v, %v; want 3263827", got, err)
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		fn   aoc.Part
		in   string
	}{
		{"PartOne", PartOne, "1 2\n"},
		{"PartOne", PartOne, "1 2\n3\n+ *\n"},
		{"PartOne", PartOne, "1 2\n- +\n"},
		{"PartOne", PartOne, "1 x\n+ +\n"},
		{"PartTwo", PartTwo, "12\n34\n-\n"},
		{"PartTwo", PartTwo, "1  2\n+ * \n"},
	}
	for _, tt := range tests {
		if _, err := tt.fn(tt.in); !errors.Is(err, aoc.ErrMalformedInput) {
			t.Errorf("%s(%q) err = %v, want ErrMalformedInput", tt.name, tt.in, err)
		}
	}
}
