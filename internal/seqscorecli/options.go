package seqscorecli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
	"abrank/internal/config"
)

type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

type Options struct {
	clibase.Common

	SeqFiles  []string
	Liability string // liability table path

	Tau       float64
	MinLinker int

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "sequence solubility and CDR liability scoring", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] library_fv.fasta[.gz]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --out sol.tsv --liability lia.tsv a.fa b.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -s, --sequences file        scFv FASTA (repeatable, globs, '-' for STDIN)")

		_, _ = fmt.Fprintln(out, "\nScoring:")
		_, _ = fmt.Fprintf(out, "      --liability file        CDR liability table [%s]\n", def("liability"))
		_, _ = fmt.Fprintln(out, "      --tau float             Liability density decay constant [config: 12]")
		_, _ = fmt.Fprintln(out, "      --min-linker int        Shortest G/S/P run accepted as linker [config: 12]")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "solubility_proxy.csv")
	seqFlag := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqFlag, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqFlag, "s", "alias of --sequences")
	fs.StringVar(&o.Liability, "liability", "liabilities_cdr.csv", "CDR liability table [liabilities_cdr.csv]")
	fs.Float64Var(&o.Tau, "tau", 0, "liability density decay constant")
	fs.IntVar(&o.MinLinker, "min-linker", 0, "shortest linker run")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}
	o.set = clibase.Visited(fs)

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.SeqFiles = append(o.SeqFiles, exp...)
	}
	if len(o.SeqFiles) == 0 {
		return o, fmt.Errorf("at least one sequence file is required (positional or --sequences)")
	}
	if o.set["tau"] && o.Tau <= 0 {
		return o, fmt.Errorf("--tau must be > 0")
	}
	if o.set["min-linker"] && o.MinLinker < 1 {
		return o, fmt.Errorf("--min-linker must be >= 1")
	}
	return o, clibase.Validate(&o.Common)
}

// Set reports the flags given on the command line.
func (o Options) Set() map[string]bool { return o.set }

// Apply copies explicitly set scoring flags over cfg.
func (o Options) Apply(cfg *config.Config) {
	if o.set["tau"] {
		cfg.Liability.Tau = o.Tau
	}
	if o.set["min-linker"] {
		cfg.Liability.MinLinker = o.MinLinker
	}
}

// PrintExamples writes the quickstart block.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s tezepelumab_lib_fv.fasta\n", name)
		_, _ = fmt.Fprintf(w, "  %s -o sol.tsv --liability lia.tsv --threads 4 lib.fa.gz\n", name)
		_, _ = fmt.Fprintf(w, "  zcat lib.fa.gz | %s -o - -\n", name)
	})
}
