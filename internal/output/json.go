// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"pwmscan/internal/pipeline"
	"pwmscan/pkg/api"
)

// ToAPIHit converts a pipeline Hit to the stable wire schema (v1).
func ToAPIHit(h pipeline.Hit) api.HitV1 {
	return api.HitV1{
		Matrix:     h.Matrix,
		SequenceID: h.SequenceID,
		Strand:     h.Strand.String(),
		SeqStart:   h.SeqStart,
		SeqEnd:     h.SeqEnd,
		AlignStart: h.AlignStart,
		AlignEnd:   h.AlignEnd,
		Score:      h.Score,
		SourceFile: h.SourceFile,
	}
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Hit) error {
	out := make([]api.HitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIHit(h))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
