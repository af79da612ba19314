// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"pwmscan-core/dna"
	"pwmscan-core/pwm"
	"pwmscan/internal/cli"
	"pwmscan/internal/pipeline"
	"pwmscan/internal/version"
	"pwmscan/internal/writers"
)

// RunContext parses argv, builds the per-strand matrices, and streams scan
// hits to stdout. Exit codes: 0 ok, 1 scan/write failure, 2 usage or input
// data error, 3 output flush failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("pwmscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if code := flushCode(outw, stderr); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pwmscan version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	matrices, err := buildMatrices(opts, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	hitCh, errCh := writers.StartHitWriter(outw, opts.Output, opts.Sort, opts.Header, 0)
	scanErr := pipeline.ForEachHit(parent, pipeline.Config{Threads: threads}, opts.SeqFiles, matrices, func(h pipeline.Hit) error {
		hitCh <- h
		return nil
	})
	close(hitCh)
	writeErr := <-errCh

	if scanErr != nil {
		_, _ = fmt.Fprintln(stderr, scanErr)
		return 1
	}
	if writers.IsBrokenPipe(writeErr) {
		return 0
	}
	if writeErr != nil {
		_, _ = fmt.Fprintln(stderr, writeErr)
		return 1
	}
	return flushCode(outw, stderr)
}

// Run wraps RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// buildMatrices loads every counts file and materializes one Matrix per
// requested strand. Duplicate matrix names are allowed but warned about,
// since they make TSV rows ambiguous.
func buildMatrices(opts cli.Options, stderr io.Writer) ([]*pwm.Matrix, error) {
	var strands []dna.Strand
	switch opts.Strand {
	case cli.StrandForward:
		strands = []dna.Strand{dna.Forward}
	case cli.StrandReverse:
		strands = []dna.Strand{dna.Reverse}
	default:
		strands = []dna.Strand{dna.Forward, dna.Reverse}
	}

	seen := make(map[string]bool)
	var matrices []*pwm.Matrix
	for _, path := range opts.MatrixFiles {
		tables, err := pwm.LoadCounts(path)
		if err != nil {
			return nil, err
		}
		for _, c := range tables {
			if seen[c.Name] {
				warnf(stderr, opts.Quiet, "duplicate matrix name %q", c.Name)
			}
			seen[c.Name] = true
			for _, s := range strands {
				m, err := pwm.New(c.Name, opts.Threshold, c.Rows, s)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				matrices = append(matrices, m)
			}
		}
	}
	return matrices, nil
}

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
