// Package library generates seeded CDR-mutant scFv variant libraries and
// the companion complex and multimer FASTA records.
package library

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"abrank-core/fasta"
	"abrank-core/region"
)

// Reference tezepelumab variable domains and the TSLP antigen (UniProt Q969D9).
const (
	TezepelumabVH = "QMQLVESGGGVVQPGRSLRLSCAASGFTFRTYGMHWVRQAPGKGLEWVAVIWYDGSNKHY" +
		"ADSVKGRFTITRDNSKNTLNLQMNSLRAEDTAVYYCARAPQWELVHEAFDIWGQGTMVTVSS"
	TezepelumabVL = "SYVLTQPPSVSVAPGQTARITCGGNNLGSKSVHWYQQKPGQAPVLVVYDDSDRPSWIPER" +
		"FSGSNSGNTATLTISRGEAGDEADYYCQVWDSSSDHVVFGGGTKLTVL"
	TSLP = "MFPFALLYVLSVSFRKIFILQLVGLVLTYDFTNCDFEKIKAAYLSTISKDLITYMSGTKS" +
		"TEFNNTVSCSNRPHCLTEIQSLTFNPTAGCASLAKEMFAMKTKAALAIWCPGYSETQINA" +
		"TQAMKKRRKRKVTTNKCLEQVSQLQGLWRRFNRPLLKQQ"
)

// Linker is the (GGGGS)x3 scFv linker.
var Linker = strings.Repeat("GGGGS", 3)

// Alphabet holds the substitution residues. Cys is excluded.
const Alphabet = "ADEFGHIKLMNPQRSTVWY"

// Template is the parent antibody and its antigen.
type Template struct {
	Name    string
	VH      string
	VL      string
	Antigen string
}

// Tezepelumab is the default parent.
func Tezepelumab() Template {
	return Template{Name: "tezepelumab", VH: TezepelumabVH, VL: TezepelumabVL, Antigen: TSLP}
}

// Options drive Generate.
type Options struct {
	Template     Template
	Scheme       region.Scheme
	Count        int
	MutsPerChain int
	Seed         int64
}

func DefaultOptions() Options {
	return Options{
		Template:     Tezepelumab(),
		Scheme:       region.Kabat(),
		Count:        100,
		MutsPerChain: 6,
		Seed:         42,
	}
}

// Mutation is one substitution, Pos 0-based within its chain.
type Mutation struct {
	Chain string // "H" or "L"
	Pos   int
	From  byte
	To    byte
}

func (m Mutation) String() string {
	return fmt.Sprintf("%s:%c%d%c", m.Chain, m.From, m.Pos+1, m.To)
}

// Variant is one library member.
type Variant struct {
	Index     int
	Name      string
	VH        string
	VL        string
	Mutations []Mutation
}

// ScFv is VH + linker + VL.
func (v Variant) ScFv() string { return v.VH + Linker + v.VL }

func (v Variant) FvID() string      { return v.Name + "_fv" }
func (v Variant) ComplexID() string { return v.Name + "_complex" }

// VariantName formats the library id of the i-th variant.
func VariantName(base string, i int) string { return fmt.Sprintf("%s_var_%04d", base, i) }

// Mutate substitutes n distinct positions of seq drawn from positions. Each
// new residue differs from the original. Positions past the end of seq are
// never drawn.
func Mutate(rng *rand.Rand, seq string, positions region.IndexSet, n int, chain string) (string, []Mutation, error) {
	eligible := make([]int, 0, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(seq) {
			eligible = append(eligible, p)
		}
	}
	if n > len(eligible) {
		return "", nil, fmt.Errorf("mutate %s chain: %d substitutions requested, %d eligible positions", chain, n, len(eligible))
	}
	b := []byte(seq)
	perm := rng.Perm(len(eligible))
	muts := make([]Mutation, 0, n)
	for _, k := range perm[:n] {
		pos := eligible[k]
		orig := b[pos]
		allowed := strings.ReplaceAll(Alphabet, string(orig), "")
		b[pos] = allowed[rng.Intn(len(allowed))]
		muts = append(muts, Mutation{Chain: chain, Pos: pos, From: orig, To: b[pos]})
	}
	sort.Slice(muts, func(i, j int) bool { return muts[i].Pos < muts[j].Pos })
	return string(b), muts, nil
}

// Generate builds Count variants, numbered from 1. The same Seed yields the
// same library.
func Generate(o Options) ([]Variant, error) {
	if o.Count < 0 {
		return nil, fmt.Errorf("generate: negative count %d", o.Count)
	}
	rng := rand.New(rand.NewSource(o.Seed))
	hIdx, lIdx := o.Scheme.HeavyIndices(), o.Scheme.LightIndices()
	out := make([]Variant, 0, o.Count)
	for i := 1; i <= o.Count; i++ {
		vh, hm, err := Mutate(rng, o.Template.VH, hIdx, o.MutsPerChain, "H")
		if err != nil {
			return nil, err
		}
		vl, lm, err := Mutate(rng, o.Template.VL, lIdx, o.MutsPerChain, "L")
		if err != nil {
			return nil, err
		}
		out = append(out, Variant{
			Index:     i,
			Name:      VariantName(o.Template.Name, i),
			VH:        vh,
			VL:        vl,
			Mutations: append(hm, lm...),
		})
	}
	return out, nil
}

// FvRecords are the single-chain records used for monomer prediction.
func FvRecords(vs []Variant) []fasta.Record {
	out := make([]fasta.Record, len(vs))
	for i, v := range vs {
		out[i] = fasta.Record{ID: v.FvID(), Seq: v.ScFv()}
	}
	return out
}

// ComplexRecords pair each scFv with the antigen, chains separated by ':'.
func ComplexRecords(vs []Variant, antigen string) []fasta.Record {
	out := make([]fasta.Record, len(vs))
	for i, v := range vs {
		out[i] = fasta.Record{ID: v.ComplexID(), Seq: v.ScFv() + ":" + antigen}
	}
	return out
}
