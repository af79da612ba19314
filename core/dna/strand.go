// core/dna/strand.go
package dna

import "fmt"

// Strand selects the orientation a matrix is built for.
type Strand int

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// ParseStrand accepts the display forms "+" and "-".
func ParseStrand(v string) (Strand, error) {
	switch v {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("invalid strand %q (want + or -)", v)
}
