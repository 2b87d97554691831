// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
	"abrank/internal/config"
	"abrank/internal/output"
)

type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// Options holds the flags of the end-to-end abrank command.
type Options struct {
	clibase.Common

	// Input
	SeqFiles []string
	AF2Dir   string
	DockDir  string

	// Output
	OutDir string

	// Structure
	Target string

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "antibody variant developability scoring and ranking", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --af2-dir af2_out/ [--dock-dir af2_multimer_out/] library_fv.fasta\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -s, --sequences file        scFv FASTA (repeatable, globs, '-' for STDIN) [*]")
		_, _ = fmt.Fprintln(out, "      --af2-dir dir           Monomer prediction outputs [*]")
		_, _ = fmt.Fprintln(out, "      --dock-dir dir          Docking prediction outputs; enables the final ranking")
		_, _ = fmt.Fprintln(out, "      --target string         Target chain label for interface PAE [last chain]")

		_, _ = fmt.Fprintln(out, "\nStage tables:")
		_, _ = fmt.Fprintf(out, "      --outdir dir            Directory of every stage table and top20.fasta [%s]\n", def("outdir"))
		_, _ = fmt.Fprintln(out, "  --out defaults to <outdir>/final_ranking (with --dock-dir) or <outdir>/candidates_ranked")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "")
	seqFlag := &sliceValue{dst: &o.SeqFiles}
	fs.Var(seqFlag, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqFlag, "s", "alias of --sequences")
	fs.StringVar(&o.AF2Dir, "af2-dir", "", "monomer prediction outputs")
	fs.StringVar(&o.DockDir, "dock-dir", "", "docking prediction outputs")
	fs.StringVar(&o.Target, "target", "", "target chain label")
	fs.StringVar(&o.OutDir, "outdir", "abrank_out", "stage table directory")
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

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	o.SeqFiles = append(o.SeqFiles, files...)
	if len(o.SeqFiles) == 0 {
		return o, errors.New("a FASTA input is required")
	}
	if o.AF2Dir == "" {
		return o, errors.New("--af2-dir is required")
	}
	if o.OutDir == "" {
		return o, errors.New("--outdir must not be empty")
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	if o.Out == "" {
		base := "candidates_ranked"
		if o.DockDir != "" {
			base = "final_ranking"
		}
		o.Out = o.Path(base)
	}
	return o, nil
}

func (o Options) Set() map[string]bool { return o.set }

// Path places a stage table in OutDir with the extension of --format.
func (o Options) Path(base string) string {
	ext := o.Format
	if ext == "" {
		ext = output.FormatCSV
	}
	return filepath.Join(o.OutDir, base+"."+ext)
}

func (o Options) Apply(cfg *config.Config) {
	if o.set["target"] {
		cfg.Structure.Target = o.Target
	}
}

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s --af2-dir af2_library_out tezepelumab_lib_fv.fasta\n", name)
		_, _ = fmt.Fprintf(w, "  %s --af2-dir af2_out --dock-dir af2_multimer_out --outdir run1 lib_fv.fasta\n", name)
		_, _ = fmt.Fprintf(w, "  %s --config abrank.yaml --archive runs.db --af2-dir af2_out lib_fv.fasta\n", name)
	})
}
