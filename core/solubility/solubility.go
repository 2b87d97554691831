// Package solubility computes a sequence-only solubility proxy in [0,1].
package solubility

import "math"

// kyteDoolittle is indexed by residue byte; NaN marks non-standard codes.
var kyteDoolittle = func() [256]float64 {
	var t [256]float64
	for i := range t {
		t[i] = math.NaN()
	}
	for aa, v := range map[byte]float64{
		'A': 1.8, 'C': 2.5, 'D': -3.5, 'E': -3.5, 'F': 2.8,
		'G': -0.4, 'H': -3.2, 'I': 4.5, 'K': -3.9, 'L': 3.8,
		'M': 1.9, 'N': -3.5, 'P': -1.6, 'Q': -3.5, 'R': -4.5,
		'S': -0.8, 'T': -0.7, 'V': 4.2, 'W': -0.9, 'Y': -1.3,
	} {
		t[aa] = v
	}
	return t
}()

// Hydropathy returns the Kyte-Doolittle value of aa.
func Hydropathy(aa byte) (float64, bool) {
	v := kyteDoolittle[aa]
	return v, !math.IsNaN(v)
}

// Clean uppercases seq and keeps only the 20 standard residues.
func Clean(seq string) string {
	out := make([]byte, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if _, ok := Hydropathy(c); ok {
			out = append(out, c)
		}
	}
	return string(out)
}

// Penalty is one logistic term: sigmoid((feature-Center)*Slope).
type Penalty struct {
	Center float64
	Slope  float64
	Weight float64
}

func (p Penalty) Eval(x float64) float64 { return sigmoid((x - p.Center) * p.Slope) }

// Model fixes the four penalty terms.
type Model struct {
	Hydrophobicity Penalty
	Aromatic       Penalty
	ChargeDensity  Penalty
	HydrophobicFr  Penalty
}

// DefaultModel is the calibrated model.
func DefaultModel() Model {
	return Model{
		Hydrophobicity: Penalty{Center: 0.3, Slope: 2.0, Weight: 0.45},
		Aromatic:       Penalty{Center: 0.08, Slope: 25.0, Weight: 0.25},
		ChargeDensity:  Penalty{Center: 8.0, Slope: 0.8, Weight: 0.20},
		HydrophobicFr:  Penalty{Center: 0.45, Slope: 10.0, Weight: 0.10},
	}
}

// Result is the per-sequence solubility record.
type Result struct {
	ID                 string
	Length             int
	MeanHydrophobicity float64
	NetChargeProxy     float64
	FracAromatic       float64
	FracHydrophobic    float64
	Score              float64
}

// Score cleans seq and scores it with the default model. ok is false when
// no standard residue is left.
func Score(id, seq string) (Result, bool) {
	return DefaultModel().Score(id, seq)
}

func (m Model) Score(id, seq string) (Result, bool) {
	s := Clean(seq)
	if s == "" {
		return Result{ID: id}, false
	}
	n := float64(len(s))

	var sumKD float64
	var k, r, h, d, e, arom, hyd int
	for i := 0; i < len(s); i++ {
		c := s[i]
		sumKD += kyteDoolittle[c]
		switch c {
		case 'K':
			k++
		case 'R':
			r++
		case 'H':
			h++
		case 'D':
			d++
		case 'E':
			e++
		}
		switch c {
		case 'F', 'W', 'Y':
			arom++
		}
		switch c {
		case 'A', 'V', 'I', 'L', 'M', 'F', 'W', 'Y', 'C':
			hyd++
		}
	}

	res := Result{
		ID:                 id,
		Length:             len(s),
		MeanHydrophobicity: sumKD / n,
		NetChargeProxy:     (float64(k+r) + 0.1*float64(h)) - float64(d+e),
		FracAromatic:       float64(arom) / n,
		FracHydrophobic:    float64(hyd) / n,
	}
	chargeDensity := math.Abs(res.NetChargeProxy/n) * 100.0
	penalty := m.Hydrophobicity.Weight*m.Hydrophobicity.Eval(res.MeanHydrophobicity) +
		m.Aromatic.Weight*m.Aromatic.Eval(res.FracAromatic) +
		m.ChargeDensity.Weight*m.ChargeDensity.Eval(chargeDensity) +
		m.HydrophobicFr.Weight*m.HydrophobicFr.Eval(res.FracHydrophobic)
	res.Score = math.Max(0, math.Min(1, 1-penalty))
	return res, true
}

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }
