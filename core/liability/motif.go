// Package liability scores chemical-liability motifs in antibody CDRs.
package liability

import "strings"

// Kind selects how a motif is counted.
type Kind int

const (
	// Sequon counts overlapping N-X-[S/T] triplets with X != P.
	Sequon Kind = iota
	// Dipeptide counts leftmost non-overlapping occurrences of Pattern.
	Dipeptide
	// Residue counts single-residue occurrences of Pattern.
	Residue
)

// Motif names double as output column names.
const (
	MotifNGlyco     = "cdr_nglyco_NXS_T"
	MotifIsomerDG   = "cdr_isomer_DG"
	MotifDeamidNG   = "cdr_deamid_NG"
	MotifDeamidNS   = "cdr_deamid_NS"
	MotifDeamidNT   = "cdr_deamid_NT"
	MotifDeamidNN   = "cdr_deamid_NN"
	MotifCleavageDP = "cdr_cleavage_DP"
	MotifOxidM      = "cdr_oxid_M"
	MotifOxidW      = "cdr_oxid_W"
)

type Motif struct {
	Name    string
	Kind    Kind
	Pattern string
	Weight  float64
}

// Table is an ordered motif set. Order fixes output column order.
type Table []Motif

// DefaultTable returns the standard weights.
func DefaultTable() Table {
	return Table{
		{Name: MotifNGlyco, Kind: Sequon, Pattern: "NXS/T", Weight: 3.0},
		{Name: MotifIsomerDG, Kind: Dipeptide, Pattern: "DG", Weight: 1.5},
		{Name: MotifDeamidNG, Kind: Dipeptide, Pattern: "NG", Weight: 1.0},
		{Name: MotifDeamidNS, Kind: Dipeptide, Pattern: "NS", Weight: 1.0},
		{Name: MotifDeamidNT, Kind: Dipeptide, Pattern: "NT", Weight: 1.0},
		{Name: MotifDeamidNN, Kind: Dipeptide, Pattern: "NN", Weight: 1.0},
		{Name: MotifCleavageDP, Kind: Dipeptide, Pattern: "DP", Weight: 1.5},
		{Name: MotifOxidM, Kind: Residue, Pattern: "M", Weight: 0.5},
		{Name: MotifOxidW, Kind: Residue, Pattern: "W", Weight: 0.5},
	}
}

// Names lists motif names in table order.
func (t Table) Names() []string {
	out := make([]string, len(t))
	for i, m := range t {
		out[i] = m.Name
	}
	return out
}

// WithWeights returns a copy of t with weights overridden by name.
// Unknown names are ignored.
func (t Table) WithWeights(w map[string]float64) Table {
	out := make(Table, len(t))
	copy(out, t)
	for i := range out {
		if v, ok := w[out[i].Name]; ok {
			out[i].Weight = v
		}
	}
	return out
}

// Counts maps motif name to occurrence count.
type Counts map[string]int

// Add accumulates o into c.
func (c Counts) Add(o Counts) {
	for k, v := range o {
		c[k] += v
	}
}

// CountMotifs scans seq for every motif in t.
func CountMotifs(seq string, t Table) Counts {
	c := make(Counts, len(t))
	for _, m := range t {
		switch m.Kind {
		case Sequon:
			c[m.Name] = countSequons(seq)
		case Dipeptide, Residue:
			c[m.Name] = strings.Count(seq, m.Pattern)
		}
	}
	return c
}

func countSequons(seq string) int {
	n := 0
	for i := 0; i+2 < len(seq); i++ {
		if seq[i] == 'N' && seq[i+1] != 'P' && (seq[i+2] == 'S' || seq[i+2] == 'T') {
			n++
		}
	}
	return n
}
