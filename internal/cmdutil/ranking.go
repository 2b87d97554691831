package cmdutil

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"abrank-core/aggregate"
	"abrank-core/candidate"
	"abrank-core/fasta"
	"abrank-core/liability"
	"abrank-core/rank"
	"abrank-core/solubility"
	"abrank-core/structure"

	"abrank/internal/appcore"
	"abrank/internal/config"
	"abrank/internal/output"
	"abrank/internal/writers"
)

// Composite merges the three tables and ranks the candidates.
func Composite(env *appcore.Env, structs []structure.Summary, sol []solubility.Result, lia []liability.Result) (aggregate.Result, error) {
	res, err := env.Config.Aggregator().Run(structs, sol, lia)
	if err != nil {
		return res, err
	}
	env.Log.Info("ranked candidates",
		zap.Int("merged", res.Merged),
		zap.Int("passed_filters", len(res.Ranked)),
		zap.Int("selected", len(res.Selected)))
	if len(res.Ranked) == 0 {
		env.Log.Warn("no candidate passed the hard filters")
	}
	return res, nil
}

// WriteSelectedFASTA writes the source records of sel, in selection order,
// to path. Candidates without a source record are skipped.
func WriteSelectedFASTA(env *appcore.Env, path string, sel []aggregate.Candidate, source []fasta.Record) error {
	idx := candidate.NewIndex(source, func(r fasta.Record) string { return candidate.Canonical(r.ID) })
	out := make([]fasta.Record, 0, len(sel))
	for _, c := range sel {
		if r, ok := idx[c.ID]; ok {
			out = append(out, r)
		}
	}
	if err := writers.WriteFile(path, env.Stdout, func(w io.Writer) error {
		return fasta.Write(w, out, 0)
	}); err != nil {
		return err
	}
	env.Log.Info("wrote selected sequences", zap.String("path", path), zap.Int("records", len(out)), zap.Int("selected", len(sel)))
	return nil
}

// devScores maps the candidate table columns the final ranking can take
// its developability score from.
var devScores = map[string]func(aggregate.Candidate) float64{
	output.ColDCS:             func(c aggregate.Candidate) float64 { return c.DCS },
	output.ColStructScore:     func(c aggregate.Candidate) float64 { return c.StructScore },
	output.ColStabilityScore:  func(c aggregate.Candidate) float64 { return c.StabilityScore },
	output.ColSolubilityScore: func(c aggregate.Candidate) float64 { return c.Solubility.Score },
	output.ColMeanPLDDT:       func(c aggregate.Candidate) float64 { return c.Structure.Mean },
	output.ColFWPLDDT:         func(c aggregate.Candidate) float64 { return c.Structure.FW },
	output.ColCDRPLDDT:        func(c aggregate.Candidate) float64 { return c.Structure.CDR },
}

// CheckDevColumn reports whether col names a candidate score usable by the
// final ranking.
func CheckDevColumn(col string) error {
	if _, ok := devScores[col]; !ok {
		return fmt.Errorf("%w: final.dev_column %q is not a candidate score column", config.ErrInvalid, col)
	}
	return nil
}

// DevRows turns ranked candidates into the developability input of the
// final ranking, taking the score from column col.
func DevRows(cs []aggregate.Candidate, col string) ([]rank.DevRow, error) {
	score, ok := devScores[col]
	if !ok {
		return nil, CheckDevColumn(col)
	}
	out := make([]rank.DevRow, len(cs))
	for i, c := range cs {
		risk, sol := c.Liability.Risk, c.Solubility.Score
		out[i] = rank.DevRow{ID: c.ID, Score: score(c), LiabilityRisk: &risk, Solubility: &sol}
	}
	return out, nil
}

// Final joins the developability and docking tables and ranks the result.
func Final(env *appcore.Env, dev []rank.DevRow, dock []structure.DockingSummary) ([]rank.Row, error) {
	out, err := env.Config.Ranker().Rank(dev, dock)
	if err != nil {
		return nil, err
	}
	if out.Stripped {
		env.Log.Warn("no id overlap, joined after stripping _fv/_complex suffixes")
	}
	env.Log.Info("final ranking",
		zap.Int("joined", out.Joined),
		zap.Int("ranked", len(out.Rows)),
		zap.Float64("min_iptm", env.Config.Final.MinIPTM))
	return out.Rows, nil
}
