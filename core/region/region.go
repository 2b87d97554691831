// Package region models antibody chain regions: CDR index sets per chain
// type and splitting of single-chain (VH-linker-VL) constructs.
package region

import "sort"

// Range is a half-open span [From, To) of 0-based residue positions.
type Range struct {
	From int `yaml:"from" json:"from" validate:"gte=0"`
	To   int `yaml:"to" json:"to" validate:"gtefield=From"`
}

// IndexSet is a sorted, de-duplicated set of 0-based positions.
type IndexSet []int

// NewIndexSet unions the given ranges into a sorted IndexSet.
func NewIndexSet(ranges ...Range) IndexSet {
	seen := make(map[int]struct{})
	for _, r := range ranges {
		for i := r.From; i < r.To; i++ {
			if i < 0 {
				continue
			}
			seen[i] = struct{}{}
		}
	}
	out := make(IndexSet, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// InBounds counts the positions valid for a chain of length n.
func (s IndexSet) InBounds(n int) int {
	c := 0
	for _, i := range s {
		if i >= 0 && i < n {
			c++
		}
	}
	return c
}

// ExtractRegion concatenates the residues of seq at idx, in index order.
// Positions outside [0, len(seq)) are skipped.
func ExtractRegion(seq string, idx IndexSet) string {
	out := make([]byte, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(seq) {
			continue
		}
		out = append(out, seq[i])
	}
	return string(out)
}

// Scheme holds the CDR loop definitions for both chain types.
type Scheme struct {
	Name  string
	Heavy [3]Range
	Light [3]Range
}

// Kabat is the default scheme (0-based, derived from Kabat numbering).
func Kabat() Scheme {
	return Scheme{
		Name: "kabat",
		Heavy: [3]Range{
			{From: 25, To: 35},  // H1
			{From: 49, To: 66},  // H2
			{From: 97, To: 111}, // H3
		},
		Light: [3]Range{
			{From: 22, To: 33}, // L1
			{From: 48, To: 55}, // L2
			{From: 87, To: 98}, // L3
		},
	}
}

func (s Scheme) HeavyIndices() IndexSet { return NewIndexSet(s.Heavy[:]...) }
func (s Scheme) LightIndices() IndexSet { return NewIndexSet(s.Light[:]...) }
