package compositecli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
	"abrank/internal/config"
)

type Options struct {
	clibase.Common

	// Inputs
	Structure  string
	Solubility string
	Liability  string
	Fasta      string // source scFv FASTA for the selection export

	// Outputs
	TopFasta string
	Selected string

	// Filters
	MinMeanPLDDT  float64
	MinFWPLDDT    float64
	MinSolubility float64
	MaxNGlyco     int

	// Diversity
	Bins      int
	PerBucket int
	MaxSelect int

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "composite developability score and diverse selection", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --structure af2.csv --solubility sol.csv --liability lia.csv [--fasta lib_fv.fasta]\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --structure file        Monomer structure summary table [*]")
		_, _ = fmt.Fprintln(out, "      --solubility file       Solubility table [*]")
		_, _ = fmt.Fprintln(out, "      --liability file        CDR liability table [*]")
		_, _ = fmt.Fprintln(out, "      --fasta file            Source scFv FASTA; enables --top-fasta")

		_, _ = fmt.Fprintln(out, "\nSelection output:")
		_, _ = fmt.Fprintf(out, "      --top-fasta file        FASTA of the diverse selection [%s]\n", def("top-fasta"))
		_, _ = fmt.Fprintln(out, "      --selected file         Table of the diverse selection [off]")

		_, _ = fmt.Fprintln(out, "\nHard filters [config defaults]:")
		_, _ = fmt.Fprintln(out, "      --min-mean-plddt float  Minimum mean pLDDT [80]")
		_, _ = fmt.Fprintln(out, "      --min-fw-plddt float    Minimum framework pLDDT [88]")
		_, _ = fmt.Fprintln(out, "      --min-solubility float  Minimum solubility score [0.45]")
		_, _ = fmt.Fprintln(out, "      --max-nglyco int        Maximum CDR N-glycosylation sequons [0]")

		_, _ = fmt.Fprintln(out, "\nDiversity [config defaults]:")
		_, _ = fmt.Fprintln(out, "      --bins int              Equal-width bins per feature [5]")
		_, _ = fmt.Fprintln(out, "      --per-bucket int        Candidates per bucket [2]")
		_, _ = fmt.Fprintln(out, "      --max-selected int      Selection size [20]")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "candidates_ranked.csv")
	fs.StringVar(&o.Structure, "structure", "", "monomer structure summary table")
	fs.StringVar(&o.Solubility, "solubility", "", "solubility table")
	fs.StringVar(&o.Liability, "liability", "", "CDR liability table")
	fs.StringVar(&o.Fasta, "fasta", "", "source scFv FASTA")
	fs.StringVar(&o.TopFasta, "top-fasta", "top20.fasta", "FASTA of the diverse selection")
	fs.StringVar(&o.Selected, "selected", "", "table of the diverse selection")

	fs.Float64Var(&o.MinMeanPLDDT, "min-mean-plddt", 0, "minimum mean pLDDT")
	fs.Float64Var(&o.MinFWPLDDT, "min-fw-plddt", 0, "minimum framework pLDDT")
	fs.Float64Var(&o.MinSolubility, "min-solubility", 0, "minimum solubility")
	fs.IntVar(&o.MaxNGlyco, "max-nglyco", 0, "maximum N-glycosylation sequons")
	fs.IntVar(&o.Bins, "bins", 0, "bins per diversity feature")
	fs.IntVar(&o.PerBucket, "per-bucket", 0, "candidates per bucket")
	fs.IntVar(&o.MaxSelect, "max-selected", 0, "selection size")
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
		return o, fmt.Errorf("unexpected arguments: %v", posArgs)
	}
	if o.Structure == "" || o.Solubility == "" || o.Liability == "" {
		return o, errors.New("--structure, --solubility and --liability are required")
	}
	return o, clibase.Validate(&o.Common)
}

func (o Options) Set() map[string]bool { return o.set }

// Inputs are the files that must exist before the run starts.
func (o Options) Inputs() []string {
	return []string{o.Structure, o.Solubility, o.Liability, o.Fasta}
}

// Apply copies explicitly set filter and diversity flags over cfg; the
// result is validated by the caller.
func (o Options) Apply(cfg *config.Config) {
	if o.set["min-mean-plddt"] {
		cfg.Filters.MinMeanPLDDT = o.MinMeanPLDDT
	}
	if o.set["min-fw-plddt"] {
		cfg.Filters.MinFWPLDDT = o.MinFWPLDDT
	}
	if o.set["min-solubility"] {
		cfg.Filters.MinSolubility = o.MinSolubility
	}
	if o.set["max-nglyco"] {
		cfg.Filters.MaxNGlyco = o.MaxNGlyco
	}
	if o.set["bins"] {
		cfg.Diversity.Bins = o.Bins
	}
	if o.set["per-bucket"] {
		cfg.Diversity.PerBucket = o.PerBucket
	}
	if o.set["max-selected"] {
		cfg.Diversity.Total = o.MaxSelect
	}
}

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s --structure af2_summary.csv --solubility solubility_proxy.csv \\\n", name)
		_, _ = fmt.Fprintln(w, "      --liability liabilities_cdr.csv --fasta tezepelumab_lib_fv.fasta")
		_, _ = fmt.Fprintf(w, "  %s ... --min-fw-plddt 85 --max-selected 10 --selected top.csv\n", name)
	})
}
