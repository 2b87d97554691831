package finalcli

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

	Dev    string
	Dock   string
	DevCol string

	MinIPTM float64
	WDev    float64
	WIPTM   float64
	WPAE    float64

	set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "merge developability and docking into the final ranking", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --dev candidates_ranked.csv --dock docking_metrics.csv\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --dev file              Developability table (candidate_id or id column) [*]")
		_, _ = fmt.Fprintln(out, "      --dock file             Docking metrics table [*]")
		_, _ = fmt.Fprintln(out, "      --dev-col name          Developability score column [DCS]")

		_, _ = fmt.Fprintln(out, "\nScoring [config defaults]:")
		_, _ = fmt.Fprintln(out, "      --min-iptm float        Drop candidates with ipTM below this [0.2]")
		_, _ = fmt.Fprintln(out, "      --w-dev float           Weight of the developability score [1.0]")
		_, _ = fmt.Fprintln(out, "      --w-iptm float          Weight of ipTM [1.5]")
		_, _ = fmt.Fprintln(out, "      --w-pae float           Penalty weight of interface PAE [0.5]")
	})
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common, "final_ranking.csv")
	fs.StringVar(&o.Dev, "dev", "", "developability table")
	fs.StringVar(&o.Dock, "dock", "", "docking metrics table")
	fs.StringVar(&o.DevCol, "dev-col", "", "developability score column")
	fs.Float64Var(&o.MinIPTM, "min-iptm", 0, "minimum ipTM")
	fs.Float64Var(&o.WDev, "w-dev", 0, "developability weight")
	fs.Float64Var(&o.WIPTM, "w-iptm", 0, "ipTM weight")
	fs.Float64Var(&o.WPAE, "w-pae", 0, "interface PAE weight")
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
	if o.Dev == "" || o.Dock == "" {
		return o, errors.New("--dev and --dock are required")
	}
	if o.set["dev-col"] && o.DevCol == "" {
		return o, errors.New("--dev-col must not be empty")
	}
	return o, clibase.Validate(&o.Common)
}

func (o Options) Set() map[string]bool { return o.set }

func (o Options) Apply(cfg *config.Config) {
	if o.set["dev-col"] {
		cfg.Final.DevColumn = o.DevCol
	}
	if o.set["min-iptm"] {
		cfg.Final.MinIPTM = o.MinIPTM
	}
	if o.set["w-dev"] {
		cfg.Final.WDev = o.WDev
	}
	if o.set["w-iptm"] {
		cfg.Final.WIPTM = o.WIPTM
	}
	if o.set["w-pae"] {
		cfg.Final.WPAE = o.WPAE
	}
}

func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  %s --dev candidates_ranked.csv --dock docking_metrics.csv\n", name)
		_, _ = fmt.Fprintf(w, "  %s --dev dev.csv --dock dock.csv --min-iptm 0.3 --w-pae 1 --format json -o -\n", name)
	})
}
