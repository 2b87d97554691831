// internal/app/app.go
package app

import (
	"context"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"abrank-core/aggregate"

	"abrank/internal/appcore"
	"abrank/internal/cli"
	"abrank/internal/cliutil"
	"abrank/internal/cmdutil"
	"abrank/internal/output"
	"abrank/internal/pretty"
)

const name = "abrank"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			cli.PrintExamples(stdout, name)
		}
		return appcore.ParseFailed(fs, err, stdout, stderr)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, name)
	}
	if err := cliutil.CheckInputs(false, opts.SeqFiles...); err != nil {
		return appcore.Finish(stderr, err)
	}
	if err := cliutil.CheckInputs(true, opts.AF2Dir, opts.DockDir); err != nil {
		return appcore.Finish(stderr, err)
	}

	env, err := appcore.Setup(name, opts.Common, opts.Set(), opts.Apply, stdout, stderr)
	if err != nil {
		return appcore.Finish(stderr, err)
	}
	defer env.Close()
	return appcore.Finish(stderr, run(parent, env, opts))
}

// run chains seqscore -> structure -> composite (-> docking -> final).
func run(ctx context.Context, env *appcore.Env, opts cli.Options) error {
	final := opts.DockDir != ""
	if final {
		if err := cmdutil.CheckDevColumn(env.Config.Final.DevColumn); err != nil {
			return err
		}
	}
	candidatesOut := opts.Path("candidates_ranked")
	if !final {
		candidatesOut = opts.Out
	}

	// Sequence scores
	recs, err := cmdutil.LoadSequences(ctx, env, opts.SeqFiles)
	if err != nil {
		return err
	}
	scores, err := cmdutil.ScoreSequences(ctx, env, recs)
	if err != nil {
		return err
	}
	motifs := cmdutil.MotifNames(env)
	if err := env.Emit(opts.Path("solubility_proxy"), opts.Format, "solubility", output.SolubilityTable(scores.Solubility)); err != nil {
		return err
	}
	if err := env.Emit(opts.Path("liabilities_cdr"), opts.Format, "liability", output.LiabilityTable(scores.Liability, motifs)); err != nil {
		return err
	}

	// Structure
	structs, err := cmdutil.ParseMonomers(ctx, env, opts.AF2Dir)
	if err != nil {
		return err
	}
	if err := env.Emit(opts.Path("af2_summary"), opts.Format, "structure", output.StructureTable(structs)); err != nil {
		return err
	}

	// Composite
	res, err := cmdutil.Composite(env, structs, scores.Solubility, scores.Liability)
	if err != nil {
		return err
	}
	if err := env.Emit(candidatesOut, opts.Format, "candidates", output.CandidateTable(res.Ranked, motifs)); err != nil {
		return err
	}
	if err := cmdutil.WriteSelectedFASTA(env, filepath.Join(opts.OutDir, "top20.fasta"), res.Selected, recs); err != nil {
		return err
	}
	pretty.Candidates(env.Stderr, res, env.Pretty())
	if len(res.Ranked) == 0 {
		return appcore.ErrNoResults
	}
	if !final {
		return nil
	}
	return runFinal(ctx, env, opts, res)
}

func runFinal(ctx context.Context, env *appcore.Env, opts cli.Options, res aggregate.Result) error {
	dock, err := cmdutil.ParseDocking(ctx, env, opts.DockDir)
	if err != nil {
		return err
	}
	if err := env.Emit(opts.Path("docking_metrics"), opts.Format, "docking", output.DockingTable(dock)); err != nil {
		return err
	}

	devCol := env.Config.Final.DevColumn
	dev, err := cmdutil.DevRows(res.Ranked, devCol)
	if err != nil {
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
	env.Log.Info("pipeline finished", zap.String("outdir", opts.OutDir), zap.Int("final_rows", len(rows)))
	if len(rows) == 0 {
		return appcore.ErrNoResults
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
