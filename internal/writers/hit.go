// internal/writers/hit.go
package writers

import (
	"fmt"
	"io"

	"pwmscan/internal/common"
	"pwmscan/internal/output"
	"pwmscan/internal/pipeline"
)

// StartHitWriter spins up a writer goroutine fed by the returned channel.
// Close the channel to finish; the error channel yields the write result.
// JSON always buffers (single array); text/bed buffer only when sorting.
func StartHitWriter(out io.Writer, format string, sort bool, header bool, bufSize int) (chan<- pipeline.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []pipeline.Hit
			for h := range in {
				buf = append(buf, h)
			}
			if sort {
				common.SortHits(buf)
			}
			err = output.WriteJSON(out, buf)

		case "bed":
			if sort {
				var buf []pipeline.Hit
				for h := range in {
					buf = append(buf, h)
				}
				common.SortHits(buf)
				err = output.WriteBED(out, buf)
			} else {
				err = output.StreamBED(out, in)
			}

		case "text":
			if sort {
				var buf []pipeline.Hit
				for h := range in {
					buf = append(buf, h)
				}
				common.SortHits(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain whatever is left (stream writers stop reading on a write
		// error) so the sender never blocks.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
