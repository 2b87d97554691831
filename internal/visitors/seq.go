// Package visitors adapts the scoring cores to pipeline.VisitFunc: one
// record in, (keep, out, err) back.
package visitors

import (
	"go.uber.org/zap"

	"abrank-core/fasta"
	"abrank-core/liability"
	"abrank-core/solubility"
)

// Solubility scores one sequence; sequences with no standard residue are
// dropped.
type Solubility struct {
	Model solubility.Model
	Log   *zap.Logger
}

func (v Solubility) Visit(r fasta.Record) (keep bool, out solubility.Result, err error) {
	res, ok := v.Model.Score(r.ID, r.Seq)
	if !ok {
		v.Log.Warn("skipping sequence with no standard residues", zap.String("id", r.ID))
		return false, res, nil
	}
	v.Log.Debug("solubility", zap.String("id", r.ID), zap.Float64("score", res.Score))
	return true, res, nil
}

// Liability scores the CDR motifs of one scFv. Empty sequences are dropped;
// a missing linker falls back to whole-sequence scoring.
type Liability struct {
	Scorer liability.Scorer
	Log    *zap.Logger
}

func (v Liability) Visit(r fasta.Record) (keep bool, out liability.Result, err error) {
	if r.Seq == "" {
		v.Log.Warn("skipping empty sequence", zap.String("id", r.ID))
		return false, out, nil
	}
	res := v.Scorer.Score(r.ID, r.Seq)
	if !res.SplitOK {
		v.Log.Warn("no linker found, scoring whole sequence", zap.String("id", r.ID), zap.Int("length", len(r.Seq)))
	}
	v.Log.Debug("liability", zap.String("id", r.ID), zap.Float64("risk", res.Risk))
	return true, res, nil
}
