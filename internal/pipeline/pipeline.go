// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"pwmscan-core/dna"
	"pwmscan-core/fasta"
	"pwmscan-core/pwm"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Hit is one above-threshold window with its provenance attached.
// Coordinates keep the core convention: 1-based, start > end on the
// reverse strand.
type Hit struct {
	SourceFile string
	SequenceID string
	Matrix     string
	Strand     dna.Strand
	SeqStart   int
	SeqEnd     int
	AlignStart int
	AlignEnd   int
	Score      float64
}

type result struct {
	hits []Hit
	err  error
}

// ForEachHit streams Hits to the caller via visit. It reads records from
// seqFiles, scans each record against every matrix on a worker pool, and
// returns the first error encountered (including context cancellation).
// Records are scanned whole: a window's gap-free coordinates are global to
// the record, so splitting a record would corrupt them.
func ForEachHit(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	matrices []*pwm.Matrix,
	visit func(Hit) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		rec        fasta.Record
		sourceFile string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					seq := dna.NewSequence(string(j.rec.Seq))
					var res result
					for _, m := range matrices {
						scores, err := m.Scan(seq)
						if err != nil {
							res = result{err: err}
							break
						}
						for _, s := range scores {
							res.hits = append(res.hits, Hit{
								SourceFile: j.sourceFile,
								SequenceID: j.rec.ID,
								Matrix:     m.Name,
								Strand:     m.Strand,
								SeqStart:   s.SeqStart,
								SeqEnd:     s.SeqEnd,
								AlignStart: s.AlignStart,
								AlignEnd:   s.AlignEnd,
								Score:      s.Score,
							})
						}
					}
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if r.err != nil {
				cerr = r.err
				continue
			}
			for _, h := range r.hits {
				if err := visit(h); err != nil {
					cerr = err
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for _, fa := range seqFiles {
		rch, err := fasta.Records(ctx, fa)
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if cerr == nil {
				cerr = err
			}
			continue
		}
		for rec := range rch {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{rec: rec, sourceFile: fa}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
