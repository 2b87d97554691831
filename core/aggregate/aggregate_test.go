package aggregate

import (
	"errors"
	"fmt"
	"testing"

	"abrank-core/candidate"
	"abrank-core/liability"
	"abrank-core/solubility"
	"abrank-core/structure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(id string, mean, fw, cdr float64) structure.Summary {
	return structure.Summary{ID: id, Confidence: structure.Confidence{Mean: mean, FW: fw, CDR: cdr, Min: cdr, Max: mean}}
}

func TestMergeCanonicalInnerJoin(t *testing.T) {
	structs := []structure.Summary{
		summary("lib_var_0002_fv_scores_rank_001_x", 90, 90, 90),
		summary("lib_var_0001_fv", 85, 90, 80),
		summary("lib_var_0003_fv", 85, 90, 80),
	}
	sol := []solubility.Result{{ID: "lib_var_0001_fv", Score: 0.6}, {ID: "lib_var_0002_fv", Score: 0.7}}
	lia := []liability.Result{{ID: "lib_var_0001", Risk: 0.1}, {ID: "lib_var_0002_complex", Risk: 0.2}, {ID: "lib_var_0003_fv"}}

	cs, err := Merge(structs, sol, lia)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "lib_var_0002_fv", cs[0].ID)
	assert.Equal(t, 0.7, cs[0].Solubility.Score)
	assert.Equal(t, 0.2, cs[0].Liability.Risk)
	assert.Equal(t, "lib_var_0001_fv", cs[1].ID)
}

func TestMergeDigitBearingBaseName(t *testing.T) {
	structs := []structure.Summary{
		summary("mab_2024_var_0001_fv_scores_rank_001_x", 90, 90, 90),
		summary("mab_2024_var_0002_fv_scores_rank_001_x", 85, 90, 80),
	}
	sol := []solubility.Result{{ID: "mab_2024_var_0001_fv", Score: 0.6}, {ID: "mab_2024_var_0002_fv", Score: 0.7}}
	lia := []liability.Result{{ID: "mab_2024_var_0001_fv", Risk: 0.1}, {ID: "mab_2024_var_0002_complex", Risk: 0.2}}

	cs, err := Merge(structs, sol, lia)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "mab_2024_var_0001_fv", cs[0].ID)
	assert.Equal(t, 0.6, cs[0].Solubility.Score)
	assert.Equal(t, "mab_2024_var_0002_fv", cs[1].ID)
	assert.Equal(t, 0.2, cs[1].Liability.Risk)
}

func TestMergeEmpty(t *testing.T) {
	_, err := Merge([]structure.Summary{summary("a_0001_fv", 90, 90, 90)},
		[]solubility.Result{{ID: "b_0002_fv"}}, []liability.Result{{ID: "a_0001_fv"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, candidate.ErrEmptyJoin))
}

func TestThresholds(t *testing.T) {
	th := DefaultThresholds()
	ok := Candidate{
		Structure:  summary("x", 80, 88, 70),
		Solubility: solubility.Result{Score: 0.45},
		Liability:  liability.Result{Counts: liability.Counts{}},
	}
	assert.True(t, th.Pass(ok))

	low := ok
	low.Structure.Mean = 79.9
	assert.False(t, th.Pass(low))

	glyco := ok
	glyco.Liability.Counts = liability.Counts{liability.MotifNGlyco: 1}
	assert.False(t, th.Pass(glyco))

	fw := ok
	fw.Structure.FW = 87.99
	assert.False(t, th.Pass(fw))
}

func TestWeightsApply(t *testing.T) {
	c := DefaultWeights().Apply(Candidate{
		Structure:  summary("x", 90, 92, 80),
		Solubility: solubility.Result{Score: 0.6},
		Liability:  liability.Result{Risk: 0.2},
	})
	structScore := 0.5*0.90 + 0.3*0.80 + 0.2*0.92
	assert.InDelta(t, structScore, c.StructScore, 1e-12)
	assert.InDelta(t, 0.92, c.StabilityScore, 1e-12)
	want := 100 * (0.30*structScore + 0.25*0.6 + 0.25*0.8 + 0.20*0.92)
	assert.InDelta(t, want, c.DCS, 1e-9)
}

func TestRunFiltersAndSorts(t *testing.T) {
	structs := []structure.Summary{
		summary("l_0001_fv", 85, 90, 70),
		summary("l_0002_fv", 95, 95, 90),
		summary("l_0003_fv", 70, 95, 90),
	}
	var sol []solubility.Result
	var lia []liability.Result
	for _, s := range structs {
		sol = append(sol, solubility.Result{ID: s.ID, Score: 0.7})
		lia = append(lia, liability.Result{ID: s.ID, Counts: liability.Counts{}})
	}
	res, err := New().Run(structs, sol, lia)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Merged)
	require.Len(t, res.Ranked, 2)
	assert.Equal(t, "l_0002_fv", res.Ranked[0].ID)
	assert.Equal(t, "l_0001_fv", res.Ranked[1].ID)
	assert.Len(t, res.Selected, 2)
}

func TestSortByDCSTiesById(t *testing.T) {
	cs := []Candidate{{ID: "b", DCS: 1}, {ID: "a", DCS: 1}, {ID: "c", DCS: 2}}
	SortByDCS(cs)
	assert.Equal(t, []string{"c", "a", "b"}, []string{cs[0].ID, cs[1].ID, cs[2].ID})
}

func TestBinnerEdges(t *testing.T) {
	b := newBinner([]float64{0, 10}, 5)
	assert.Equal(t, 0, b.bin(0))
	assert.Equal(t, 0, b.bin(2))
	assert.Equal(t, 1, b.bin(2.5))
	assert.Equal(t, 4, b.bin(10))

	flat := newBinner([]float64{3, 3, 3}, 5)
	assert.Equal(t, 0, flat.bin(3))
}

func TestSelectCaps(t *testing.T) {
	var cs []Candidate
	for i := 0; i < 200; i++ {
		cs = append(cs, Candidate{
			ID:         fmt.Sprintf("l_%04d_fv", i),
			Solubility: solubility.Result{Score: float64(i%7) / 7},
			Liability:  liability.Result{Risk: float64(i%3) / 3},
			Structure:  summary("", 90, 90, float64(i%11)),
		})
	}
	d := DefaultDiversity()
	sel := d.Select(cs)
	assert.Len(t, sel, 20)

	buckets := d.Buckets(cs)
	byID := map[string]Bucket{}
	for i, c := range cs {
		byID[c.ID] = buckets[i]
	}
	per := map[Bucket]int{}
	for _, c := range sel {
		per[byID[c.ID]]++
		assert.LessOrEqual(t, per[byID[c.ID]], 2)
	}
}

func TestSelectBucketOrder(t *testing.T) {
	mk := func(id string, sol float64) Candidate {
		return Candidate{ID: id, Solubility: solubility.Result{Score: sol}, Structure: summary(id, 90, 90, 80)}
	}
	cs := []Candidate{mk("a", 1), mk("b", 0), mk("c", 1), mk("d", 1), mk("e", 0)}
	sel := Diversity{Bins: 5, PerBucket: 2, Total: 20}.Select(cs)
	var ids []string
	for _, c := range sel {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"a", "c", "b", "e"}, ids)
}
