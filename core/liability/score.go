package liability

import (
	"math"

	"abrank-core/region"
)

// DefaultTau is the density decay constant.
const DefaultTau = 12.0

// Risk converts weighted motif density into a [0,1] risk, rounded to 6 dp.
func Risk(c Counts, regionLen int, t Table, tau float64) float64 {
	weighted := 0.0
	for _, m := range t {
		weighted += m.Weight * float64(c[m.Name])
	}
	if regionLen < 1 {
		regionLen = 1
	}
	density := 100.0 * weighted / float64(regionLen)
	risk := 1.0 - math.Exp(-density/tau)
	risk = math.Max(0, math.Min(1, risk))
	return math.Round(risk*1e6) / 1e6
}

// Result is the per-sequence liability record.
type Result struct {
	ID        string
	SplitOK   bool
	LengthCDR int
	Risk      float64
	Counts    Counts
}

// Scorer applies a motif table to the CDRs of scFv sequences.
type Scorer struct {
	Scheme    region.Scheme
	Table     Table
	Tau       float64
	MinLinker int
}

// NewScorer returns a Scorer with the Kabat scheme and default weights.
func NewScorer() Scorer {
	return Scorer{
		Scheme:    region.Kabat(),
		Table:     DefaultTable(),
		Tau:       DefaultTau,
		MinLinker: region.DefaultMinLinker,
	}
}

// Score splits seq into VH/VL, extracts CDR residues and scores them. When
// no linker is found the whole sequence is scored and SplitOK is false.
func (s Scorer) Score(id, seq string) Result {
	sp, err := region.SplitChain(seq, s.MinLinker)
	if err != nil {
		c := CountMotifs(seq, s.Table)
		return Result{
			ID:        id,
			SplitOK:   false,
			LengthCDR: len(seq),
			Risk:      Risk(c, len(seq), s.Table, s.Tau),
			Counts:    c,
		}
	}

	vh := region.ExtractRegion(sp.Prefix, s.Scheme.HeavyIndices())
	vl := region.ExtractRegion(sp.Suffix, s.Scheme.LightIndices())
	c := CountMotifs(vh, s.Table)
	c.Add(CountMotifs(vl, s.Table))
	n := len(vh) + len(vl)
	return Result{
		ID:        id,
		SplitOK:   true,
		LengthCDR: n,
		Risk:      Risk(c, n, s.Table, s.Tau),
		Counts:    c,
	}
}
