// Package rank merges developability scores with docking metrics and
// produces the final candidate ranking.
package rank

import (
	"fmt"
	"math"
	"sort"

	"abrank-core/candidate"
	"abrank-core/structure"
)

// DevRow is one candidate of the developability table.
type DevRow struct {
	ID            string
	Score         float64
	LiabilityRisk *float64
	Solubility    *float64
}

// Row is one line of the final ranking. Absent metrics are nil.
type Row struct {
	Rank             int
	CandidateID      string
	FinalScore       *float64
	Dev              float64
	IPTM             *float64
	MeanInterfacePAE *float64
	PLDDT            *float64
	PDBPath          string
	LiabilityRisk    *float64
	Solubility       *float64
}

// Weights of the final score: dev*Dev + iptm*IPTM - pae*PAE over
// min-max normalised columns.
type Weights struct {
	Dev  float64
	IPTM float64
	PAE  float64
}

func DefaultWeights() Weights { return Weights{Dev: 1.0, IPTM: 1.5, PAE: 0.5} }

// DefaultMinIPTM is the docking iptm filter; 0 disables it.
const DefaultMinIPTM = 0.2

type Ranker struct {
	MinIPTM float64
	Weights Weights
}

func New() Ranker { return Ranker{MinIPTM: DefaultMinIPTM, Weights: DefaultWeights()} }

// Outcome of a ranking pass.
type Outcome struct {
	Rows     []Row
	Joined   int
	Stripped bool // ids matched only after suffix stripping
}

type pair struct {
	dev  DevRow
	dock structure.DockingSummary
	id   string
}

func join(dev []DevRow, dock []structure.DockingSummary, key func(string) string) []pair {
	idx := candidate.NewIndex(dock, func(d structure.DockingSummary) string { return key(d.CandidateID) })
	return candidate.Join(dev, func(d DevRow) string { return key(d.ID) }, idx,
		func(l DevRow, r structure.DockingSummary) pair {
			return pair{dev: l, dock: r, id: key(l.ID)}
		})
}

// Rank joins dev and dock by canonical id, retrying once on ids with the
// _fv/_complex decorations stripped when nothing matches. Rows below
// MinIPTM (or without iptm while the filter is on) are dropped. Rows are
// sorted by descending final score, absent scores last, and given a dense
// 1-based rank: equal scores share a rank and the next distinct score
// takes the following one. Rows without a score share the last rank.
func (r Ranker) Rank(dev []DevRow, dock []structure.DockingSummary) (Outcome, error) {
	var out Outcome
	pairs := join(dev, dock, candidate.Canonical)
	if len(pairs) == 0 {
		pairs = join(dev, dock, candidate.StripSuffixes)
		out.Stripped = true
	}
	if len(pairs) == 0 {
		return Outcome{}, fmt.Errorf("join %d dev with %d docking rows: %w",
			len(dev), len(dock), candidate.ErrEmptyJoin)
	}
	out.Joined = len(pairs)

	kept := pairs[:0:0]
	for _, p := range pairs {
		if r.MinIPTM != 0 && (p.dock.IPTM == nil || *p.dock.IPTM < r.MinIPTM) {
			continue
		}
		kept = append(kept, p)
	}

	devCol := make([]float64, len(kept))
	iptmCol := make([]float64, len(kept))
	paeCol := make([]float64, len(kept))
	for i, p := range kept {
		devCol[i] = p.dev.Score
		iptmCol[i] = value(p.dock.IPTM)
		paeCol[i] = value(p.dock.MeanInterfacePAE)
	}
	devN, iptmN, paeN := MinMax(devCol), MinMax(iptmCol), MinMax(paeCol)

	rows := make([]Row, len(kept))
	for i, p := range kept {
		final := r.Weights.Dev*devN[i] + r.Weights.IPTM*iptmN[i] - r.Weights.PAE*paeN[i]
		rows[i] = Row{
			CandidateID:      p.id,
			FinalScore:       ptr(final),
			Dev:              p.dev.Score,
			IPTM:             p.dock.IPTM,
			MeanInterfacePAE: p.dock.MeanInterfacePAE,
			PLDDT:            p.dock.PLDDT,
			PDBPath:          p.dock.PDBPath,
			LiabilityRisk:    p.dev.LiabilityRisk,
			Solubility:       p.dev.Solubility,
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		fa, fb := rows[a].FinalScore, rows[b].FinalScore
		if fa == nil || fb == nil {
			return fa != nil && fb == nil
		}
		return *fa > *fb
	})
	for i := range rows {
		switch {
		case i == 0:
			rows[i].Rank = 1
		case sameScore(rows[i].FinalScore, rows[i-1].FinalScore):
			rows[i].Rank = rows[i-1].Rank
		default:
			rows[i].Rank = rows[i-1].Rank + 1
		}
	}
	out.Rows = rows
	return out, nil
}

// MinMax scales vals to [0,1]. NaN marks an absent value: it is ignored
// for the range and stays NaN. A column that is all absent or has a single
// distinct value maps to all zeros.
func MinMax(vals []float64) []float64 {
	out := make([]float64, len(vals))
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) || hi == lo {
		return out
	}
	for i, v := range vals {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

func sameScore(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// ptr returns nil for NaN.
func ptr(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
