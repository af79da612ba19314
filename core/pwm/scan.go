// core/pwm/scan.go
package pwm

import (
	"fmt"

	"pwmscan-core/dna"
)

// Score is one window at or above the matrix threshold. Coordinates are
// 1-based; SeqStart/SeqEnd are in gap-free sequence space, AlignStart/AlignEnd
// in the original (gapped) string. On the Reverse strand start > end.
type Score struct {
	SeqStart   int
	SeqEnd     int
	AlignStart int
	AlignEnd   int
	Score      float64
}

// baseIndex maps A/C/G/T (either case) to the matrix column, -1 otherwise.
var baseIndex [256]int8

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	baseIndex['A'], baseIndex['a'] = 0, 0
	baseIndex['C'], baseIndex['c'] = 1, 1
	baseIndex['G'], baseIndex['g'] = 2, 2
	baseIndex['T'], baseIndex['t'] = 3, 3
}

// Scan slides the matrix over seq and returns every window whose normalized
// score (raw / MaxScore) reaches the threshold, in ascending window order
// regardless of strand. A sequence shorter than the matrix yields no windows.
// A non-ACGT base in any scored window aborts the scan.
func (m *Matrix) Scan(seq *dna.Sequence) ([]Score, error) {
	if seq.Len() < m.length {
		return nil, nil
	}
	// Strand fixes which boundary is reported as start vs end; the walk
	// itself is always left to right.
	s, e := 1, m.length
	if m.Strand == dna.Reverse {
		s, e = m.length, 1
	}

	var out []Score
	last := seq.Len() - m.length
	for i := 0; i <= last; i++ {
		raw := 0.0
		for k := 0; k < m.length; k++ {
			b := seq.Bases[i+k]
			idx := baseIndex[b]
			if idx < 0 {
				return nil, fmt.Errorf("unrecognized base %q at gap-free position %d", b, i+k+1)
			}
			raw += m.probs[k][idx] * m.conservation[k]
		}
		norm := raw / m.maxScore
		if norm < m.threshold {
			continue
		}
		out = append(out, Score{
			SeqStart:   i + s,
			SeqEnd:     i + e,
			AlignStart: seq.Positions[i+s-1] + 1,
			AlignEnd:   seq.Positions[i+e-1] + 1,
			Score:      norm,
		})
	}
	return out, nil
}
