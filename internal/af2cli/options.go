package af2cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
	"abrank/internal/config"
)

// Parsing modes.
const (
	ModeMonomer = "monomer"
	ModeDocking = "docking"
)

type Options struct {
	clibase.Common

	Dirs   []string
	Mode   string
	Rank   int
	Target string
	Tag    string

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "structure-prediction artifact parser", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] colabfold_out/\n", name)
		_, _ = fmt.Fprintf(out, "  %s --mode docking [--target C] colabfold_multimer_out/\n", name)

		_, _ = fmt.Fprintln(out, "\nParsing:")
		_, _ = fmt.Fprintf(out, "      --mode string           monomer | docking [%s]\n", def("mode"))
		_, _ = fmt.Fprintln(out, "      --rank int              Model rank to read (rank_001 = 1) [config: 1]")
		_, _ = fmt.Fprintln(out, "      --target string         Target chain label for interface PAE [last chain]")
		_, _ = fmt.Fprintln(out, "      --tag string            Only parse jobs whose id contains this text (e.g. complex)")
		_, _ = fmt.Fprintln(out, "  default --out: af2_summary.csv (monomer), docking_metrics.csv (docking)")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "")
	fs.StringVar(&o.Mode, "mode", ModeMonomer, "monomer | docking [monomer]")
	fs.IntVar(&o.Rank, "rank", 0, "model rank to read")
	fs.StringVar(&o.Target, "target", "", "target chain label for interface PAE")
	fs.StringVar(&o.Tag, "tag", "", "only parse jobs whose id contains this text")
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

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	o.Dirs = exp
	if len(o.Dirs) == 0 {
		return o, fmt.Errorf("a prediction output directory is required")
	}

	o.Mode = strings.ToLower(o.Mode)
	switch o.Mode {
	case ModeMonomer, ModeDocking:
	default:
		return o, fmt.Errorf("--mode must be %q or %q", ModeMonomer, ModeDocking)
	}
	if o.set["rank"] && (o.Rank < 1 || o.Rank > 999) {
		return o, fmt.Errorf("--rank must be between 1 and 999")
	}
	if o.Out == "" {
		o.Out = DefaultOut(o.Mode)
	}
	return o, clibase.Validate(&o.Common)
}

// DefaultOut is the table path used when --out is not given.
func DefaultOut(mode string) string {
	if mode == ModeDocking {
		return "docking_metrics.csv"
	}
	return "af2_summary.csv"
}

func (o Options) Set() map[string]bool { return o.set }

func (o Options) Apply(cfg *config.Config) {
	if o.set["rank"] {
		cfg.Structure.Rank = o.Rank
	}
	if o.set["target"] {
		cfg.Structure.Target = o.Target
	}
	if o.set["tag"] {
		cfg.Structure.Tag = o.Tag
	}
}

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s af2_library_out/\n", name)
		_, _ = fmt.Fprintf(w, "  %s --mode docking -o docking.csv af2_multimer_out/\n", name)
		_, _ = fmt.Fprintf(w, "  %s --mode docking --rank 2 --target C af2_multimer_out/\n", name)
	})
}
