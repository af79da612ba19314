// core/pwm/loader.go
package pwm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Counts is one raw counts table as read from a file, before any strand
// transform or normalization.
type Counts struct {
	Name string
	Rows [][]float64
}

// LoadCounts reads a whitespace-separated counts file:
//
//	>motif_name
//	12  3   0  5
//	0   18  1  1
//
// '>' lines start a new matrix; data lines carry exactly 4 non-negative
// numbers (A C G T). '#' comments and blank lines are skipped. Rows before
// any '>' header belong to a matrix named after the file.
func LoadCounts(path string) ([]Counts, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	defName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var (
		list []Counts
		cur  *Counts
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if len(cur.Rows) == 0 {
			return fmt.Errorf("%s: matrix %q has no rows", path, cur.Name)
		}
		list = append(list, *cur)
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			name := strings.TrimSpace(line[1:])
			if name == "" {
				return nil, fmt.Errorf("%s:%d empty matrix name", path, ln)
			}
			cur = &Counts{Name: name}
			continue
		}
		f := strings.Fields(line)
		if len(f) != 4 {
			return nil, fmt.Errorf("%s:%d has %d values, want 4", path, ln, len(f))
		}
		row := make([]float64, 4)
		for i, tok := range f {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad count %q", path, ln, tok)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s:%d negative count %q", path, ln, tok)
			}
			row[i] = v
		}
		if cur == nil {
			cur = &Counts{Name: defName}
		}
		cur.Rows = append(cur.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: no matrices found", path)
	}
	return list, nil
}
