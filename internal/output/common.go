package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tmatrix\tstrand\tseq_start\tseq_end\talign_start\talign_end\tscore"
