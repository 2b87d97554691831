package library

import (
	"fmt"

	"abrank-core/fasta"
	"abrank-core/region"
)

// MinDomainLen is the shortest VH or VL accepted from a split scFv.
const MinDomainLen = 90

// Domains is an scFv split into its variable domains.
type Domains struct {
	ID     string
	VH     string
	VL     string
	Linker string
}

// SplitDomains cuts an scFv at its linker and checks both domains reach
// MinDomainLen.
func SplitDomains(rec fasta.Record, minLinker int) (Domains, error) {
	sp, err := region.SplitChain(rec.Seq, minLinker)
	if err != nil {
		return Domains{}, fmt.Errorf("%s: %w", rec.ID, err)
	}
	if len(sp.Prefix) < MinDomainLen || len(sp.Suffix) < MinDomainLen {
		return Domains{}, fmt.Errorf("%s: suspicious domain lengths (VH=%d, VL=%d)", rec.ID, len(sp.Prefix), len(sp.Suffix))
	}
	return Domains{ID: rec.ID, VH: sp.Prefix, VL: sp.Suffix, Linker: sp.Linker}, nil
}

// MultimerRecords lays out one docking input: VH, VL and antigen as
// separate chains.
func MultimerRecords(d Domains, antigen string) []fasta.Record {
	return []fasta.Record{
		{ID: d.ID + "|VH", Seq: d.VH},
		{ID: d.ID + "|VL", Seq: d.VL},
		{ID: d.ID + "|Ag", Seq: antigen},
	}
}
