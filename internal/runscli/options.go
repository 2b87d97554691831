package runscli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
)

type Options struct {
	clibase.Common

	Run   string
	Stage string

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "run archive browser", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --archive runs.db\n", name)
		_, _ = fmt.Fprintf(out, "  %s --archive runs.db --run ID --stage final -o final.csv\n", name)

		_, _ = fmt.Fprintln(out, "\nSelection:")
		_, _ = fmt.Fprintln(out, "      --run id                Run to export (default: list runs)")
		_, _ = fmt.Fprintln(out, "      --stage name            Stage table of --run to export")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "-")
	fs.StringVar(&o.Run, "run", "", "run id")
	fs.StringVar(&o.Stage, "stage", "", "stage name")
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
	if (o.Run == "") != (o.Stage == "") {
		return o, errors.New("--run and --stage go together")
	}
	return o, clibase.Validate(&o.Common)
}

func (o Options) Set() map[string]bool { return o.set }

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s --archive runs.db\n", name)
		_, _ = fmt.Fprintf(w, "  %s --archive runs.db --run 3f2a... --stage candidates --format json\n", name)
	})
}
