// internal/libraryapp/app.go
package libraryapp

import (
	"context"
	"io"

	"abrank-core/library"

	"abrank/internal/appcore"
	"abrank/internal/cliutil"
	"abrank/internal/cmdutil"
	"abrank/internal/librarycli"
	"abrank/internal/output"
	"abrank/internal/tables"
)

const name = "abrank-library"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := librarycli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := librarycli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			librarycli.PrintExamples(stdout, name)
		}
		return appcore.ParseFailed(fs, err, stdout, stderr)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, name)
	}
	if err := cliutil.CheckInputs(false, opts.Inputs()...); err != nil {
		return appcore.Finish(stderr, err)
	}

	env, err := appcore.Setup(name, opts.Common, opts.Set(), opts.Apply, stdout, stderr)
	if err != nil {
		return appcore.Finish(stderr, err)
	}
	defer env.Close()
	return appcore.Finish(stderr, run(parent, env, opts))
}

func run(ctx context.Context, env *appcore.Env, opts librarycli.Options) error {
	tmpl := library.Tezepelumab()

	var ds []library.Domains
	switch opts.Mode() {
	case librarycli.ModeGenerate:
		files := cmdutil.NewLibraryFiles(opts.OutDir, env.Config.Library.Prefix)
		vs, err := cmdutil.GenerateLibrary(env, tmpl, files)
		if err != nil {
			return err
		}
		if err := env.Emit(opts.Out, opts.Format, "library", output.VariantTable(vs)); err != nil {
			return err
		}
		if opts.MultimerDir == "" {
			return nil
		}
		ds = cmdutil.VariantDomains(vs)
		if err := env.Emit(opts.SplitOut, "", "domains", output.DomainsTable(ds)); err != nil {
			return err
		}

	case librarycli.ModeSplit:
		recs, err := cmdutil.LoadSequences(ctx, env, opts.SeqFiles)
		if err != nil {
			return err
		}
		if ds, err = cmdutil.SplitDomains(ctx, env, recs); err != nil {
			return err
		}
		if err := env.Emit(opts.SplitOut, "", "domains", output.DomainsTable(ds)); err != nil {
			return err
		}

	case librarycli.ModeDomains:
		var err error
		if ds, err = tables.ReadDomains(opts.Domains); err != nil {
			return err
		}
	}

	if len(ds) == 0 {
		return appcore.ErrNoResults
	}
	if opts.MultimerDir == "" {
		return nil
	}
	return cmdutil.WriteMultimers(env, opts.MultimerDir, ds, tmpl.Antigen)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
