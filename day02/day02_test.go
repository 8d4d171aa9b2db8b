package day02

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/maisem/aoc2025"
)

func TestSample(t *testing.T) {
	if got, err := PartOne(Sample); err != nil || got != 1227775554 {
		t.Errorf("PartOne(Sample) = %v, %v; want 1227775554", got, err)
	}
	if got, err := PartTwo(Sample); err != nil || got != 4174379265 {
		t.Errorf("PartTwo(Sample) = %v, %v; want 4174379265", got, err)
	}
}

func TestRepeated(t *testing.T) {
	tests := []struct {
		in          string
		wantDoubled bool
		wantRepeat  bool
	}{
		{"1010", true, true},
		{"11", true, true},
		{"111", false, true},
		{"1188511885", true, true},
		{"2121212121", false, true},
		{"222222", true, true},
		{"38593859", true, true},
		{"446446", true, true},
		{"565656", false, true},
		{"824824824", false, true},
		{"99", true, true},
		{"12", false, false},
		{"101", false, false},
		{"7", false, false},
	}
	for _, tt := range tests {
		if got, _ := doubled.MatchString(tt.in); got != tt.wantDoubled {
			t.Errorf("doubled(%q) = %v, want %v", tt.in, got, tt.wantDoubled)
		}
		if got, _ := repeated.MatchString(tt.in); got != tt.wantRepeat {
			t.Errorf("repeated(%q) = %v, want %v", tt.in, got, tt.wantRepeat)
		}
	}
}

func TestSpans(t *testing.T) {
	got, err := spans("3-5,9-9\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := []span{{3, 5}, {9, 9}}; !slices.Equal(got, want) {
		t.Errorf("spans = %v, want %v", got, want)
	}

	got, err = spans("0-999999")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != spanParts {
		t.Errorf("wide range split into %d spans, want %d", len(got), spanParts)
	}
	next := 0
	for _, sp := range got {
		if sp.lo != next || sp.hi < sp.lo {
			t.Fatalf("span %v does not follow %d", sp, next-1)
		}
		next = sp.hi + 1
	}
	if next != 1000000 {
		t.Errorf("spans end at %d, want 999999", next-1)
	}

	for _, in := range []string{"5-3", "1-", "12", "a-b"} {
		if _, err := spans(in); !errors.Is(err, aoc.ErrMalformedInput) {
			t.Errorf("spans(%q) err = %v, want ErrMalformedInput", in, err)
		}
	}
}

func TestRangeAtMaxInt(t *testing.T) {
	in := fmt.Sprintf("%d-%d", math.MaxInt-7, math.MaxInt)
	got, err := spans(in)
	if err != nil || len(got) != 1 || got[0].hi != math.MaxInt {
		t.Fatalf("spans(%q) = %v, %v", in, got, err)
	}
	if got, err := PartOne(in); err != nil || got != 0 {
		t.Errorf("PartOne(%q) = %v, %v; want 0", in, got, err)
	}
}
