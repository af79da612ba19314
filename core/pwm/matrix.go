// core/pwm/matrix.go
package pwm

import (
	"fmt"
	"math"

	"pwmscan-core/dna"
)

// Matrix is a position-weight matrix derived from raw base counts. All fields
// are computed at construction and never mutated; a Reverse-strand Matrix is a
// fully materialized reverse-complement of the counts, so Scan never branches
// on strand.
type Matrix struct {
	Name   string
	Strand dna.Strand

	length       int
	probs        [][5]float64
	conservation []float64
	maxScore     float64
	threshold    float64
}

// New builds a Matrix from counts: one row per motif position, each row
// exactly 4 values in A,C,G,T order. Every row must have 4 values or
// construction fails.
func New(name string, threshold float64, counts [][]float64, strand dna.Strand) (*Matrix, error) {
	if strand == dna.Reverse {
		counts = reverseComplement(counts)
	}
	probs, err := normalize(counts)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}
	m := &Matrix{
		Name:         name,
		Strand:       strand,
		length:       len(counts),
		probs:        probs,
		conservation: conservation(probs),
		threshold:    threshold,
	}
	m.maxScore = maxScore(m.probs, m.conservation)
	return m, nil
}

// Length returns the number of motif positions.
func (m *Matrix) Length() int { return m.length }

// Threshold returns the normalized-score cutoff supplied at construction.
func (m *Matrix) Threshold() float64 { return m.threshold }

// MaxScore returns the best raw score any window could achieve. It is the
// normalization denominator for Scan and is not claimed to be tight for real
// sequences.
func (m *Matrix) MaxScore() float64 { return m.maxScore }

// reverseComplement flips the counts to the opposite strand: row order is
// reversed (motif direction) and each row's 4 values are reversed, which in
// A,C,G,T order swaps A<->T and C<->G.
func reverseComplement(counts [][]float64) [][]float64 {
	n := len(counts)
	out := make([][]float64, n)
	for i, row := range counts {
		rev := make([]float64, len(row))
		for j, v := range row {
			rev[len(row)-1-j] = v
		}
		out[n-1-i] = rev
	}
	return out
}

// normalize turns counts into per-position probability rows. All rows share
// the largest row total as denominator, so positions with fewer observations
// keep a non-zero residual 5th value (unassigned mass). That residual is never
// indexed during scanning; it only feeds the conservation entropy.
func normalize(counts [][]float64) ([][5]float64, error) {
	maxTotal := math.Inf(-1)
	for _, row := range counts {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if sum > maxTotal {
			maxTotal = sum
		}
	}
	probs := make([][5]float64, 0, len(counts))
	for i, row := range counts {
		if len(row) != 4 {
			return nil, fmt.Errorf("row %d has %d values, want 4", i+1, len(row))
		}
		var p [5]float64
		sum := 0.0
		for j, v := range row {
			p[j] = v / maxTotal
			sum += v
		}
		p[4] = 1.0 - sum/maxTotal
		probs = append(probs, p)
	}
	return probs, nil
}

// conservation computes, per position, a normalized negative-entropy weight
// over the 5-value distribution: 1 + sum(p*ln p)/ln 5. Near 1 when one base
// dominates; smaller (possibly negative) toward uniform. Zero entries
// contribute nothing, the p*ln p -> 0 limit.
func conservation(probs [][5]float64) []float64 {
	out := make([]float64, 0, len(probs))
	for _, p := range probs {
		sum := 0.0
		for _, v := range p {
			if v > 0 {
				sum += v * math.Log(v)
			}
		}
		out = append(out, sum/math.Log(float64(len(p)))+1.0)
	}
	return out
}

// maxScore sums, per position, the best of the 4 base probabilities weighted
// by conservation. The residual 5th value is excluded: it is not a base.
func maxScore(probs [][5]float64, cons []float64) float64 {
	total := 0.0
	for i, p := range probs {
		best := math.Inf(-1)
		for _, v := range p[:4] {
			if v > best {
				best = v
			}
		}
		total += cons[i] * best
	}
	return total
}
