package librarycli

import (
	"errors"
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

type Mode int

const (
	// ModeGenerate builds a seeded variant library from the template.
	ModeGenerate Mode = iota
	// ModeSplit cuts existing scFv FASTA records into VH/VL.
	ModeSplit
	// ModeDomains reads a VH/VL table.
	ModeDomains
)

type Options struct {
	clibase.Common

	// Generation
	Name      string
	Prefix    string
	Count     int
	Seed      int64
	Mutations int
	OutDir    string

	// Multimer inputs
	SeqFiles    []string
	Domains     string
	SplitOut    string
	MultimerDir string
	MinLinker   int

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "variant library and multimer input generation", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [--count N] [--seed S] [--multimer-dir DIR]\n", name)
		_, _ = fmt.Fprintf(out, "  %s --multimer-dir DIR library_fv.fasta\n", name)
		_, _ = fmt.Fprintf(out, "  %s --multimer-dir DIR --domains candidates_split.csv\n", name)

		_, _ = fmt.Fprintln(out, "\nGeneration [config defaults]:")
		_, _ = fmt.Fprintln(out, "      --name string           Template name, used in variant ids [tezepelumab]")
		_, _ = fmt.Fprintln(out, "      --prefix string         Output file prefix [<name>_lib]")
		_, _ = fmt.Fprintln(out, "      --count int             Number of variants [100]")
		_, _ = fmt.Fprintln(out, "      --seed int              Random seed [42]")
		_, _ = fmt.Fprintln(out, "      --mutations int         CDR substitutions per chain [6]")
		_, _ = fmt.Fprintf(out, "      --outdir dir            Directory of the library FASTA files [%s]\n", def("outdir"))

		_, _ = fmt.Fprintln(out, "\nMultimer inputs:")
		_, _ = fmt.Fprintln(out, "  -s, --sequences file        scFv FASTA to split instead of generating (repeatable)")
		_, _ = fmt.Fprintln(out, "      --domains file          VH/VL table (id, vh_seq, vl_seq) to use as is")
		_, _ = fmt.Fprintf(out, "      --split-out file        VH/VL table written after splitting [%s]\n", def("split-out"))
		_, _ = fmt.Fprintln(out, "      --multimer-dir dir      Write one {id}.fasta (VH, VL, antigen) per candidate")
		_, _ = fmt.Fprintln(out, "      --min-linker int        Shortest G/S/P run accepted as linker [config: 12]")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "variants.csv")
	fs.StringVar(&o.Name, "name", "", "template name")
	fs.StringVar(&o.Prefix, "prefix", "", "output file prefix")
	fs.IntVar(&o.Count, "count", 0, "number of variants")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed")
	fs.IntVar(&o.Mutations, "mutations", 0, "substitutions per chain")
	fs.StringVar(&o.OutDir, "outdir", ".", "library FASTA directory")

	seqFlag := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqFlag, "sequences", "scFv FASTA file(s) (repeatable) or '-'")
	fs.Var(seqFlag, "s", "alias of --sequences")
	fs.StringVar(&o.Domains, "domains", "", "VH/VL table")
	fs.StringVar(&o.SplitOut, "split-out", "candidates_split.csv", "VH/VL table output")
	fs.StringVar(&o.MultimerDir, "multimer-dir", "", "multimer FASTA directory")
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
		files, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.SeqFiles = append(o.SeqFiles, files...)
	}
	if len(o.SeqFiles) > 0 && o.Domains != "" {
		return o, errors.New("--domains cannot be combined with FASTA input")
	}
	if o.Domains != "" && o.MultimerDir == "" {
		return o, errors.New("--domains requires --multimer-dir")
	}
	return o, clibase.Validate(&o.Common)
}

func (o Options) Set() map[string]bool { return o.set }

func (o Options) Mode() Mode {
	switch {
	case o.Domains != "":
		return ModeDomains
	case len(o.SeqFiles) > 0:
		return ModeSplit
	default:
		return ModeGenerate
	}
}

// Inputs are the files that must exist before the run starts.
func (o Options) Inputs() []string {
	return append([]string{o.Domains}, o.SeqFiles...)
}

func (o Options) Apply(cfg *config.Config) {
	if o.set["name"] {
		cfg.Library.Name = o.Name
		if !o.set["prefix"] {
			cfg.Library.Prefix = o.Name + "_lib"
		}
	}
	if o.set["prefix"] {
		cfg.Library.Prefix = o.Prefix
	}
	if o.set["count"] {
		cfg.Library.Count = o.Count
	}
	if o.set["seed"] {
		cfg.Library.Seed = o.Seed
	}
	if o.set["mutations"] {
		cfg.Library.MutationsPerChain = o.Mutations
	}
	if o.set["min-linker"] {
		cfg.Liability.MinLinker = o.MinLinker
	}
}

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s --count 100 --seed 42 --outdir data\n", name)
		_, _ = fmt.Fprintf(w, "  %s --multimer-dir multimer_fastas top20.fasta\n", name)
		_, _ = fmt.Fprintf(w, "  %s --multimer-dir multimer_fastas --domains candidates_split.csv\n", name)
	})
}
