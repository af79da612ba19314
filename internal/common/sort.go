// internal/common/sort.go
package common

import (
	"sort"

	"pwmscan/internal/pipeline"
)

// LessHit defines a stable order for hits (for --sort). Reverse-strand hits
// carry start > end, so ordering uses the leftmost boundary.
func LessHit(a, b pipeline.Hit) bool {
	if a.SequenceID != b.SequenceID {
		return a.SequenceID < b.SequenceID
	}
	al, bl := leftmost(a), leftmost(b)
	if al != bl {
		return al < bl
	}
	if a.Matrix != b.Matrix {
		return a.Matrix < b.Matrix
	}
	return a.Strand < b.Strand
}

func leftmost(h pipeline.Hit) int {
	if h.SeqEnd < h.SeqStart {
		return h.SeqEnd
	}
	return h.SeqStart
}

func SortHits(hs []pipeline.Hit) {
	sort.Slice(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}
