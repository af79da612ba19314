// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pwmscan/internal/version"
)

// Strand selection modes.
const (
	StrandBoth    = "both"
	StrandForward = "+"
	StrandReverse = "-"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	MatrixFiles []string
	SeqFiles    []string

	// Scoring
	Threshold float64
	Strand    string

	// Performance
	Threads int

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: scan DNA sequences with a position-weight matrix

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var mats stringSlice
	fs.Var(&mats, "matrix", "counts-matrix file (repeatable) [*]")
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable or '-') [*]")

	fs.Float64Var(&opt.Threshold, "threshold", 0.8, "minimum normalized score to report [0.8]")
	fs.StringVar(&opt.Strand, "strand", StrandBoth, "strand(s) to scan: both | + | - [both]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | bed [text]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs for determinism (SequenceID,Start,Matrix,Strand) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.MatrixFiles = mats
	opt.SeqFiles = seq
	opt.Header = !noHeader

	// Validation
	if len(opt.MatrixFiles) == 0 {
		return opt, errors.New("at least one --matrix file is required")
	}
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	switch opt.Strand {
	case StrandBoth, StrandForward, StrandReverse:
	default:
		return opt, fmt.Errorf("invalid --strand %q (want both, + or -)", opt.Strand)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "bed" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
