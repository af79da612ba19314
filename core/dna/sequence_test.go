package dna

import (
	"reflect"
	"testing"
)

func TestGapStripping(t *testing.T) {
	s := NewSequence("-ACG-TACG")

	wantPos := []int{1, 2, 3, 5, 6, 7, 8}
	if !reflect.DeepEqual(s.Positions, wantPos) {
		t.Errorf("positions = %v, want %v", s.Positions, wantPos)
	}
	if string(s.Bases) != "ACGTACG" {
		t.Errorf("bases = %q, want ACGTACG", s.Bases)
	}
	if s.Len() != 7 {
		t.Errorf("len = %d, want 7", s.Len())
	}
}

func TestNoGaps(t *testing.T) {
	s := NewSequence("acgt")
	if string(s.Bases) != "acgt" {
		t.Errorf("bases = %q", s.Bases)
	}
	if !reflect.DeepEqual(s.Positions, []int{0, 1, 2, 3}) {
		t.Errorf("positions = %v", s.Positions)
	}
}

func TestEmptyAndAllGap(t *testing.T) {
	for _, raw := range []string{"", "---"} {
		s := NewSequence(raw)
		if s.Len() != 0 {
			t.Errorf("NewSequence(%q).Len() = %d, want 0", raw, s.Len())
		}
	}
}

func TestStrandDisplay(t *testing.T) {
	if Forward.String() != "+" || Reverse.String() != "-" {
		t.Errorf("strand display: %s %s", Forward, Reverse)
	}
}

func TestParseStrand(t *testing.T) {
	if s, err := ParseStrand("+"); err != nil || s != Forward {
		t.Errorf("ParseStrand(+) = %v, %v", s, err)
	}
	if s, err := ParseStrand("-"); err != nil || s != Reverse {
		t.Errorf("ParseStrand(-) = %v, %v", s, err)
	}
	if _, err := ParseStrand("x"); err == nil {
		t.Error("expected error for bad strand")
	}
}
