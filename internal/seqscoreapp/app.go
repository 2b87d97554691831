// internal/seqscoreapp/app.go
package seqscoreapp

import (
	"context"
	"fmt"
	"io"

	"abrank/internal/appcore"
	"abrank/internal/cliutil"
	"abrank/internal/cmdutil"
	"abrank/internal/output"
	"abrank/internal/seqscorecli"
)

const name = "abrank-seqscore"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := seqscorecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := seqscorecli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			seqscorecli.PrintExamples(stdout, name)
		}
		return appcore.ParseFailed(fs, err, stdout, stderr)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, name)
	}
	if err := cliutil.CheckInputs(false, opts.SeqFiles...); err != nil {
		return appcore.Finish(stderr, err)
	}

	env, err := appcore.Setup(name, opts.Common, opts.Set(), opts.Apply, stdout, stderr)
	if err != nil {
		return appcore.Finish(stderr, err)
	}
	defer env.Close()
	return appcore.Finish(stderr, run(parent, env, opts))
}

func run(ctx context.Context, env *appcore.Env, opts seqscorecli.Options) error {
	recs, err := cmdutil.LoadSequences(ctx, env, opts.SeqFiles)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("%w: no FASTA records in input", appcore.ErrNoResults)
	}
	scores, err := cmdutil.ScoreSequences(ctx, env, recs)
	if err != nil {
		return err
	}
	if err := env.Emit(opts.Out, opts.Format, "solubility", output.SolubilityTable(scores.Solubility)); err != nil {
		return err
	}
	return env.Emit(opts.Liability, "", "liability", output.LiabilityTable(scores.Liability, cmdutil.MotifNames(env)))
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
