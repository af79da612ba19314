// internal/output/bed.go
package output

import (
	"fmt"
	"io"

	"pwmscan/internal/pipeline"
)

// bedScore clamps a normalized score into BED's 0-1000 range. Normalized
// scores are not hard-bounded to [0,1], so clamp both ends.
func bedScore(s float64) int {
	v := int(s*1000 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 1000 {
		return 1000
	}
	return v
}

// FormatRowBED returns one BED6 line for a hit (no trailing newline).
// BED is 0-based half-open with start < end regardless of strand; the
// alignment (original string) coordinates are used so gaps are respected.
func FormatRowBED(h pipeline.Hit) string {
	start, end := h.AlignStart, h.AlignEnd
	if end < start {
		start, end = end, start
	}
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%d\t%s",
		h.SequenceID, start-1, end, h.Matrix, bedScore(h.Score), h.Strand,
	)
}

// WriteBED prints one BED6 line per hit.
func WriteBED(w io.Writer, list []pipeline.Hit) error {
	for _, h := range list {
		if _, err := fmt.Fprintln(w, FormatRowBED(h)); err != nil {
			return err
		}
	}
	return nil
}

// StreamBED streams BED6 lines from a channel to the writer.
func StreamBED(w io.Writer, in <-chan pipeline.Hit) error {
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatRowBED(h)); err != nil {
			return err
		}
	}
	return nil
}
