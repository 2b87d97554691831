// internal/compositeapp/app.go
package compositeapp

import (
	"context"
	"io"

	"abrank/internal/appcore"
	"abrank/internal/cliutil"
	"abrank/internal/cmdutil"
	"abrank/internal/compositecli"
	"abrank/internal/output"
	"abrank/internal/pretty"
	"abrank/internal/tables"

	"abrank-core/fasta"
)

const name = "abrank-composite"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := compositecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := compositecli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			compositecli.PrintExamples(stdout, name)
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

func run(ctx context.Context, env *appcore.Env, opts compositecli.Options) error {
	structs, err := tables.ReadStructure(opts.Structure)
	if err != nil {
		return err
	}
	sol, err := tables.ReadSolubility(opts.Solubility)
	if err != nil {
		return err
	}
	lia, err := tables.ReadLiability(opts.Liability)
	if err != nil {
		return err
	}

	res, err := cmdutil.Composite(env, structs, sol, lia)
	if err != nil {
		return err
	}
	motifs := cmdutil.MotifNames(env)
	if err := env.Emit(opts.Out, opts.Format, "candidates", output.CandidateTable(res.Ranked, motifs)); err != nil {
		return err
	}
	if opts.Selected != "" {
		if err := env.Emit(opts.Selected, "", "selected", output.CandidateTable(res.Selected, motifs)); err != nil {
			return err
		}
	}
	if opts.Fasta != "" && opts.TopFasta != "" {
		src, err := fasta.ReadFileCtx(ctx, opts.Fasta)
		if err != nil {
			return err
		}
		if err := cmdutil.WriteSelectedFASTA(env, opts.TopFasta, res.Selected, src); err != nil {
			return err
		}
	}
	pretty.Candidates(env.Stderr, res, env.Pretty())
	if len(res.Ranked) == 0 {
		return appcore.ErrNoResults
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
