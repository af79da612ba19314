package common

import (
	"testing"

	"pwmscan-core/dna"
	"pwmscan/internal/pipeline"
)

func TestSortHits(t *testing.T) {
	hits := []pipeline.Hit{
		{SequenceID: "chr2", Matrix: "a", Strand: dna.Forward, SeqStart: 1, SeqEnd: 4},
		{SequenceID: "chr1", Matrix: "b", Strand: dna.Forward, SeqStart: 9, SeqEnd: 12},
		// reverse hit: start > end yet leftmost boundary is 5
		{SequenceID: "chr1", Matrix: "a", Strand: dna.Reverse, SeqStart: 8, SeqEnd: 5},
		{SequenceID: "chr1", Matrix: "a", Strand: dna.Forward, SeqStart: 5, SeqEnd: 8},
	}
	SortHits(hits)

	if hits[0].SequenceID != "chr1" || hits[0].SeqStart != 5 || hits[0].Strand != dna.Forward {
		t.Errorf("first = %+v", hits[0])
	}
	if hits[1].Strand != dna.Reverse {
		t.Errorf("second should be the reverse hit at the same window, got %+v", hits[1])
	}
	if hits[2].Matrix != "b" {
		t.Errorf("third = %+v", hits[2])
	}
	if hits[3].SequenceID != "chr2" {
		t.Errorf("last = %+v", hits[3])
	}
}
