// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"pwmscan/internal/pipeline"
)

// FormatRowTSV returns the TSV columns for one hit (no trailing newline).
// Score is rendered with 3 decimals; JSON carries full precision.
func FormatRowTSV(h pipeline.Hit) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%.3f",
		h.SourceFile, h.SequenceID, h.Matrix, h.Strand,
		h.SeqStart, h.SeqEnd, h.AlignStart, h.AlignEnd, h.Score,
	)
}

// WriteText prints one TSV line per hit.
func WriteText(w io.Writer, list []pipeline.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, h := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText streams TSV lines from a channel to the writer.
func StreamText(w io.Writer, in <-chan pipeline.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(h)); err != nil {
			return err
		}
	}
	return nil
}
