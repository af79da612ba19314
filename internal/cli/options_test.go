// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestMinimalOK(t *testing.T) {
	o := mustParse(t,
		"--matrix", "m.txt",
		"--sequences", "ref.fa",
	)
	if len(o.MatrixFiles) != 1 || o.MatrixFiles[0] != "m.txt" {
		t.Errorf("bad matrix files %+v", o)
	}
	if o.Threshold != 0.8 || o.Strand != StrandBoth || o.Output != "text" {
		t.Errorf("bad defaults %+v", o)
	}
	if !o.Header {
		t.Error("header should default on")
	}
}

func TestRepeatableInputs(t *testing.T) {
	o := mustParse(t,
		"--matrix", "a.txt", "--matrix", "b.txt",
		"--sequences", "ref.fa", "--sequences", "-",
	)
	if len(o.MatrixFiles) != 2 || len(o.SeqFiles) != 2 {
		t.Errorf("repeatable flags not collected: %+v", o)
	}
}

func TestStrandAndThreshold(t *testing.T) {
	o := mustParse(t,
		"--matrix", "m.txt", "--sequences", "ref.fa",
		"--strand", "-", "--threshold", "0.25",
	)
	if o.Strand != StrandReverse || o.Threshold != 0.25 {
		t.Errorf("got %+v", o)
	}
}

func TestErrorNoMatrix(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--sequences", "ref.fa"}); err == nil {
		t.Fatal("expected error with no matrix file")
	}
}

func TestErrorNoSequences(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--matrix", "m.txt"}); err == nil {
		t.Fatal("expected error when sequences missing")
	}
}

func TestErrorBadStrand(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--matrix", "m.txt", "--sequences", "ref.fa", "--strand", "fwd",
	})
	if err == nil {
		t.Fatal("expected bad-strand error")
	}
}

func TestErrorBadOutput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--matrix", "m.txt", "--sequences", "ref.fa", "--output", "xml",
	})
	if err == nil {
		t.Fatal("expected bad-output error")
	}
}

func TestErrorNegativeThreads(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--matrix", "m.txt", "--sequences", "ref.fa", "--threads", "-1",
	})
	if err == nil {
		t.Fatal("expected negative-threads error")
	}
}

func TestNoHeader(t *testing.T) {
	o := mustParse(t,
		"--matrix", "m.txt", "--sequences", "ref.fa", "--no-header",
	)
	if o.Header {
		t.Error("--no-header should clear Header")
	}
}
