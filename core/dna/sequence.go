// core/dna/sequence.go
package dna

// Sequence is a gap-stripped DNA sequence. Positions holds, for each retained
// base, its 0-based index in the original (possibly gapped) string, so window
// coordinates found in gap-free space can be mapped back onto an alignment.
// No alphabet validation happens here; bad bases are caught at scoring time.
type Sequence struct {
	Positions []int
	Bases     []byte
}

// NewSequence builds a Sequence from raw, dropping '-' gap characters while
// recording the original index of every kept base. It always succeeds; an
// empty or all-gap input yields empty slices.
func NewSequence(raw string) *Sequence {
	s := &Sequence{
		Positions: make([]int, 0, len(raw)),
		Bases:     make([]byte, 0, len(raw)),
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] == '-' {
			continue
		}
		s.Positions = append(s.Positions, i)
		s.Bases = append(s.Bases, raw[i])
	}
	return s
}

// Len returns the number of gap-free bases.
func (s *Sequence) Len() int { return len(s.Bases) }
