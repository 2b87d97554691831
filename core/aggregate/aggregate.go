// Package aggregate merges sequence and structure scores into candidates,
// applies developability filters, computes the composite score and picks a
// diverse shortlist.
package aggregate

import (
	"fmt"
	"sort"

	"abrank-core/candidate"
	"abrank-core/liability"
	"abrank-core/solubility"
	"abrank-core/structure"
)

// Candidate is one library member with every attached score.
type Candidate struct {
	ID         string
	Structure  structure.Summary
	Solubility solubility.Result
	Liability  liability.Result

	StructScore    float64
	StabilityScore float64
	DCS            float64
}

// Thresholds are the hard developability filters.
type Thresholds struct {
	MinMeanPLDDT  float64
	MinFWPLDDT    float64
	MinSolubility float64
	MaxNGlyco     int
}

func DefaultThresholds() Thresholds {
	return Thresholds{MinMeanPLDDT: 80, MinFWPLDDT: 88, MinSolubility: 0.45, MaxNGlyco: 0}
}

// Pass reports whether c clears every filter.
func (t Thresholds) Pass(c Candidate) bool {
	return c.Structure.Mean >= t.MinMeanPLDDT &&
		c.Structure.FW >= t.MinFWPLDDT &&
		c.Solubility.Score >= t.MinSolubility &&
		c.Liability.Counts[liability.MotifNGlyco] <= t.MaxNGlyco
}

// Weights of the structural sub-score and of the composite score.
type Weights struct {
	StructMean float64
	StructCDR  float64
	StructFW   float64

	Struct     float64
	Solubility float64
	Liability  float64
	Stability  float64
}

func DefaultWeights() Weights {
	return Weights{
		StructMean: 0.5, StructCDR: 0.3, StructFW: 0.2,
		Struct: 0.30, Solubility: 0.25, Liability: 0.25, Stability: 0.20,
	}
}

// Apply fills the derived scores of c. pLDDT values are scaled to [0,1].
func (w Weights) Apply(c Candidate) Candidate {
	mean := c.Structure.Mean / 100.0
	fw := c.Structure.FW / 100.0
	cdr := c.Structure.CDR / 100.0
	c.StructScore = w.StructMean*mean + w.StructCDR*cdr + w.StructFW*fw
	c.StabilityScore = fw
	c.DCS = 100.0 * (w.Struct*c.StructScore +
		w.Solubility*c.Solubility.Score +
		w.Liability*(1.0-c.Liability.Risk) +
		w.Stability*c.StabilityScore)
	return c
}

// Merge inner-joins the three score tables by canonical id, in structure
// table order. No shared id yields candidate.ErrEmptyJoin.
func Merge(structs []structure.Summary, sol []solubility.Result, lia []liability.Result) ([]Candidate, error) {
	solIdx := candidate.NewIndex(sol, func(r solubility.Result) string { return candidate.Canonical(r.ID) })
	liaIdx := candidate.NewIndex(lia, func(r liability.Result) string { return candidate.Canonical(r.ID) })

	withSol := candidate.Join(structs,
		func(s structure.Summary) string { return candidate.Canonical(s.ID) },
		solIdx,
		func(s structure.Summary, r solubility.Result) Candidate {
			return Candidate{ID: candidate.Canonical(s.ID), Structure: s, Solubility: r}
		})
	out := candidate.Join(withSol,
		func(c Candidate) string { return c.ID },
		liaIdx,
		func(c Candidate, r liability.Result) Candidate {
			c.Liability = r
			return c
		})
	if len(out) == 0 {
		return nil, fmt.Errorf("merge %d structure, %d solubility, %d liability rows: %w",
			len(structs), len(sol), len(lia), candidate.ErrEmptyJoin)
	}
	return out, nil
}

// SortByDCS orders candidates by descending DCS, ties by id.
func SortByDCS(cs []Candidate) {
	sort.SliceStable(cs, func(a, b int) bool {
		if cs[a].DCS != cs[b].DCS {
			return cs[a].DCS > cs[b].DCS
		}
		return cs[a].ID < cs[b].ID
	})
}

// Aggregator runs filter, scoring, ranking and diversity selection.
type Aggregator struct {
	Thresholds Thresholds
	Weights    Weights
	Diversity  Diversity
}

func New() Aggregator {
	return Aggregator{
		Thresholds: DefaultThresholds(),
		Weights:    DefaultWeights(),
		Diversity:  DefaultDiversity(),
	}
}

// Result of one aggregation pass.
type Result struct {
	Merged   int
	Ranked   []Candidate
	Selected []Candidate
}

// Run merges the inputs, keeps candidates passing the thresholds, scores
// and ranks them by DCS and selects the diverse shortlist.
func (a Aggregator) Run(structs []structure.Summary, sol []solubility.Result, lia []liability.Result) (Result, error) {
	merged, err := Merge(structs, sol, lia)
	if err != nil {
		return Result{}, err
	}
	ranked := make([]Candidate, 0, len(merged))
	for _, c := range merged {
		if !a.Thresholds.Pass(c) {
			continue
		}
		ranked = append(ranked, a.Weights.Apply(c))
	}
	SortByDCS(ranked)
	return Result{
		Merged:   len(merged),
		Ranked:   ranked,
		Selected: a.Diversity.Select(ranked),
	}, nil
}
