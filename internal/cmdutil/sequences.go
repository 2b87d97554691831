// Package cmdutil holds the stage runners shared by the single-stage tools
// and the end-to-end abrank command.
package cmdutil

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"abrank-core/fasta"
	"abrank-core/liability"
	"abrank-core/solubility"

	"abrank/internal/appcore"
	"abrank/internal/pipeline"
	"abrank/internal/visitors"
)

// LoadSequences reads every FASTA file in argument order.
func LoadSequences(ctx context.Context, env *appcore.Env, files []string) ([]fasta.Record, error) {
	var out []fasta.Record
	for _, f := range files {
		recs, err := fasta.ReadFileCtx(ctx, f)
		if err != nil {
			return nil, err
		}
		env.Log.Info("loaded sequences", zap.String("file", f), zap.Int("records", len(recs)))
		out = append(out, recs...)
	}
	return out, nil
}

// SeqScores are the two per-sequence score tables.
type SeqScores struct {
	Solubility []solubility.Result // sorted by score, best first
	Liability  []liability.Result  // input order
}

// ScoreSequences runs the solubility and liability scorers over recs on
// the worker pool.
func ScoreSequences(ctx context.Context, env *appcore.Env, recs []fasta.Record) (SeqScores, error) {
	cfg := env.Pipeline()

	sol, err := pipeline.Visit(ctx, cfg, recs, visitors.Solubility{Model: solubility.DefaultModel(), Log: env.Log}.Visit)
	if err != nil {
		return SeqScores{}, err
	}
	sort.SliceStable(sol, func(a, b int) bool { return sol[a].Score > sol[b].Score })

	scorer := env.Config.LiabilityScorer()
	lia, err := pipeline.Visit(ctx, cfg, recs, visitors.Liability{Scorer: scorer, Log: env.Log}.Visit)
	if err != nil {
		return SeqScores{}, err
	}

	fallback := 0
	for _, r := range lia {
		if !r.SplitOK {
			fallback++
		}
	}
	env.Log.Info("scored sequences",
		zap.Int("input", len(recs)),
		zap.Int("solubility", len(sol)),
		zap.Int("liability", len(lia)),
		zap.Int("split_fallback", fallback))
	return SeqScores{Solubility: sol, Liability: lia}, nil
}

// MotifNames is the motif column order of the liability tables.
func MotifNames(env *appcore.Env) []string {
	return env.Config.LiabilityScorer().Table.Names()
}
