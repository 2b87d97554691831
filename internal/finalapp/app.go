// internal/finalapp/app.go
package finalapp

import (
	"context"
	"io"

	"abrank/internal/appcore"
	"abrank/internal/cliutil"
	"abrank/internal/cmdutil"
	"abrank/internal/finalcli"
	"abrank/internal/output"
	"abrank/internal/pretty"
	"abrank/internal/tables"
)

const name = "abrank-final"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := finalcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := finalcli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			finalcli.PrintExamples(stdout, name)
		}
		return appcore.ParseFailed(fs, err, stdout, stderr)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, name)
	}
	if err := cliutil.CheckInputs(false, opts.Dev, opts.Dock); err != nil {
		return appcore.Finish(stderr, err)
	}

	env, err := appcore.Setup(name, opts.Common, opts.Set(), opts.Apply, stdout, stderr)
	if err != nil {
		return appcore.Finish(stderr, err)
	}
	defer env.Close()
	return appcore.Finish(stderr, run(parent, env, opts))
}

func run(ctx context.Context, env *appcore.Env, opts finalcli.Options) error {
	devCol := env.Config.Final.DevColumn
	dev, err := tables.ReadDev(opts.Dev, devCol)
	if err != nil {
		return err
	}
	dock, err := tables.ReadDocking(opts.Dock)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	rows, err := cmdutil.Final(env, dev, dock)
	if err != nil {
		return err
	}
	if err := env.Emit(opts.Out, opts.Format, "final", output.FinalTable(rows, devCol)); err != nil {
		return err
	}
	pretty.Final(env.Stderr, rows, devCol, env.Pretty())
	if len(rows) == 0 {
		return appcore.ErrNoResults
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
