package writers

import (
	"bytes"
	"strings"
	"testing"

	"pwmscan-core/dna"
	"pwmscan/internal/pipeline"
)

func feed(ch chan<- pipeline.Hit, hits ...pipeline.Hit) {
	for _, h := range hits {
		ch <- h
	}
	close(ch)
}

func TestTextWriterStreams(t *testing.T) {
	var buf bytes.Buffer
	ch, errCh := StartHitWriter(&buf, "text", false, true, 0)
	feed(ch,
		pipeline.Hit{SequenceID: "s", Matrix: "m", Strand: dna.Forward, SeqStart: 1, SeqEnd: 4, AlignStart: 1, AlignEnd: 4, Score: 0.9},
	)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "source_file\t") {
		t.Errorf("missing header: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "\t0.900") {
		t.Errorf("missing row: %q", buf.String())
	}
}

func TestSortBuffersAndOrders(t *testing.T) {
	var buf bytes.Buffer
	ch, errCh := StartHitWriter(&buf, "text", true, false, 0)
	feed(ch,
		pipeline.Hit{SequenceID: "s", Matrix: "m", SeqStart: 9, SeqEnd: 12},
		pipeline.Hit{SequenceID: "s", Matrix: "m", SeqStart: 1, SeqEnd: 4},
	)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "\t1\t4\t") {
		t.Errorf("sorted output wrong: %v", lines)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	ch, errCh := StartHitWriter(&buf, "xml", false, true, 0)
	feed(ch, pipeline.Hit{SequenceID: "s"})
	if err := <-errCh; err == nil {
		t.Fatal("expected unsupported-format error")
	}
}
