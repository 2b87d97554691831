// internal/af2app/app.go
package af2app

import (
	"context"
	"io"

	"abrank-core/structure"

	"abrank/internal/af2cli"
	"abrank/internal/appcore"
	"abrank/internal/cliutil"
	"abrank/internal/cmdutil"
	"abrank/internal/output"
)

const name = "abrank-af2"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := af2cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := af2cli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			af2cli.PrintExamples(stdout, name)
		}
		return appcore.ParseFailed(fs, err, stdout, stderr)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, name)
	}
	if err := cliutil.CheckInputs(true, opts.Dirs...); err != nil {
		return appcore.Finish(stderr, err)
	}

	env, err := appcore.Setup(name, opts.Common, opts.Set(), opts.Apply, stdout, stderr)
	if err != nil {
		return appcore.Finish(stderr, err)
	}
	defer env.Close()
	return appcore.Finish(stderr, run(parent, env, opts))
}

func run(ctx context.Context, env *appcore.Env, opts af2cli.Options) error {
	if opts.Mode == af2cli.ModeDocking {
		var all []structure.DockingSummary
		for _, d := range opts.Dirs {
			rows, err := cmdutil.ParseDocking(ctx, env, d)
			if err != nil {
				return err
			}
			all = append(all, rows...)
		}
		return env.Emit(opts.Out, opts.Format, "docking", output.DockingTable(all))
	}

	var all []structure.Summary
	for _, d := range opts.Dirs {
		rows, err := cmdutil.ParseMonomers(ctx, env, d)
		if err != nil {
			return err
		}
		all = append(all, rows...)
	}
	structure.SortByMeanPLDDT(all)
	return env.Emit(opts.Out, opts.Format, "structure", output.StructureTable(all))
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
