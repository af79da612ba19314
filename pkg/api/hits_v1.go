// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON schema for matrix hits.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Matrix     string  `json:"matrix"`
	SequenceID string  `json:"sequence_id"`
	Strand     string  `json:"strand"` // "+" | "-"
	SeqStart   int     `json:"seq_start"`
	SeqEnd     int     `json:"seq_end"`
	AlignStart int     `json:"align_start"`
	AlignEnd   int     `json:"align_end"`
	Score      float64 `json:"score"`
	SourceFile string  `json:"source_file,omitempty"`
}
