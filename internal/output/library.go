package output

import (
	"strings"

	"abrank-core/library"

	"abrank/pkg/api"
)

// VariantTable lists generated variants and their substitutions.
func VariantTable(vs []library.Variant) Table {
	t := Table{Columns: []string{ColID, ColLength, ColMutations}}
	for _, v := range vs {
		muts := make([]string, len(v.Mutations))
		for i, m := range v.Mutations {
			muts[i] = m.String()
		}
		n := len(v.ScFv())
		t.add(api.VariantV1{ID: v.FvID(), Mutations: muts, Length: n},
			v.FvID(), Int(n), strings.Join(muts, ";"))
	}
	return t
}

func DomainsTable(ds []library.Domains) Table {
	t := Table{Columns: DomainsColumns}
	for _, d := range ds {
		t.add(api.DomainsV1{ID: d.ID, VHSeq: d.VH, VLSeq: d.VL, Linker: d.Linker},
			d.ID, d.VH, d.VL, d.Linker)
	}
	return t
}
