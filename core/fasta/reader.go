// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence. Records are always emitted whole:
// window scans need the full record because gap-free coordinates are global
// to the sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamCtx parses FASTA from r and calls emit once per record. It is
// cancelable between lines; emit may return a non-nil error to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		seq = make([]byte, 0, 1<<20)
	)
	flush := func() error {
		if id == "" && len(seq) == 0 {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" {
				if err := flush(); err != nil {
					return err
				}
				seq = seq[:0]
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (stdin via "-", gzip transparently) and streams
// its records through emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// Records is the channel wrapper around StreamPathCtx. Open errors for
// non-stdin paths are reported immediately; scan-time errors close the
// channel early and are returned by the goroutine's emit path only.
func Records(ctx context.Context, path string) (<-chan Record, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}
	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamPathCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
