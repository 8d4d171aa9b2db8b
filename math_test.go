package aoc

import (
	"errors"
	"slices"
	"testing"
)

func TestDigits(t *testing.T) {
	got, err := Digits("90210")
	if err != nil || !slices.Equal(got, []int{9, 0, 2, 1, 0}) {
		t.Errorf("Digits(90210) = %v, %v", got, err)
	}
	if _, err := Digits("12a"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Digits(12a) err = %v, want ErrMalformedInput", err)
	}
}

func TestInts(t *testing.T) {
	got, err := Ints(" 1", "-2 ", "30")
	if err != nil || !slices.Equal(got, []int{1, -2, 30}) {
		t.Errorf("Ints = %v, %v", got, err)
	}
	if _, err := Ints("1", "two"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Ints(two) err = %v, want ErrMalformedInput", err)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		in      string
		lo, hi  int
		wantErr bool
	}{
		{in: "11-22", lo: 11, hi: 22},
		{in: " 3-5\n", lo: 3, hi: 5},
		{in: "7", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "1-x", wantErr: true},
	}
	for _, tt := range tests {
		lo, hi, err := Range(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Range(%q) err = %v, want ErrMalformedInput", tt.in, err)
			}
			continue
		}
		if err != nil || lo != tt.lo || hi != tt.hi {
			t.Errorf("Range(%q) = %d, %d, %v; want %d, %d", tt.in, lo, hi, err, tt.lo, tt.hi)
		}
	}
}

func TestSumProduct(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %v", got)
	}
	if got := Product(2, 3, 4); got != 24 {
		t.Errorf("Product = %v", got)
	}
	if got := Product[int](); got != 1 {
		t.Errorf("Product() = %v, want 1", got)
	}
	if got := AbsDiff(3, 10); got != 7 {
		t.Errorf("AbsDiff(3, 10) = %v", got)
	}
}

func TestLinesSections(t *testing.T) {
	in := "\na\r\n b \n\n\nc\n"
	if got := Lines(in); !slices.Equal(got, []string{"a", " b ", "", "", "c"}) {
		t.Errorf("Lines = %q", got)
	}
	secs := Sections(in)
	if len(secs) != 2 || !slices.Equal(secs[0], []string{"a", " b "}) || !slices.Equal(secs[1], []string{"c"}) {
		t.Errorf("Sections = %q", secs)
	}
	if got := Lines("\n\n"); got != nil {
		t.Errorf("Lines(blank) = %q, want nil", got)
	}
}
