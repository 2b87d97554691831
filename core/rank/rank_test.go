package rank

import (
	"errors"
	"math"
	"testing"

	"abrank-core/candidate"
	"abrank-core/structure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestMinMax(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, MinMax([]float64{2, 3, 4}))
	assert.Equal(t, []float64{0, 0, 0}, MinMax([]float64{7, 7, 7}))
	assert.Equal(t, []float64{0}, MinMax([]float64{7}))
	assert.Equal(t, []float64{0, 0}, MinMax([]float64{math.NaN(), math.NaN()}))

	got := MinMax([]float64{1, math.NaN(), 3})
	assert.Equal(t, 0.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 1.0, got[2])
}

func TestRankScoresAndOrder(t *testing.T) {
	dev := []DevRow{
		{ID: "l_0001_fv", Score: 70, Solubility: f(0.6)},
		{ID: "l_0002_fv", Score: 80},
		{ID: "l_0003_fv", Score: 90},
	}
	dock := []structure.DockingSummary{
		{CandidateID: "l_0001_complex", IPTM: f(0.8), MeanInterfacePAE: f(5), PDBPath: "a.pdb"},
		{CandidateID: "l_0002_complex", IPTM: f(0.4), MeanInterfacePAE: f(15)},
		{CandidateID: "l_0003_complex", IPTM: f(0.1), MeanInterfacePAE: f(10)},
	}
	out, err := New().Rank(dev, dock)
	require.NoError(t, err)
	assert.False(t, out.Stripped)
	assert.Equal(t, 3, out.Joined)
	require.Len(t, out.Rows, 2, "iptm filter drops l_0003")

	// dev 70/80 -> 0/1, iptm 0.8/0.4 -> 1/0, pae 5/15 -> 0/1
	assert.Equal(t, "l_0001_fv", out.Rows[0].CandidateID)
	assert.Equal(t, 1, out.Rows[0].Rank)
	assert.InDelta(t, 1.5, *out.Rows[0].FinalScore, 1e-12)
	assert.Equal(t, "a.pdb", out.Rows[0].PDBPath)
	assert.Equal(t, 0.6, *out.Rows[0].Solubility)
	assert.Equal(t, 2, out.Rows[1].Rank)
	assert.InDelta(t, 0.5, *out.Rows[1].FinalScore, 1e-12)
}

func TestRankMissingPAESortsLast(t *testing.T) {
	dev := []DevRow{{ID: "l_0001_fv", Score: 90}, {ID: "l_0002_fv", Score: 10}, {ID: "l_0003_fv", Score: 50}}
	dock := []structure.DockingSummary{
		{CandidateID: "l_0001_fv", IPTM: f(0.5)},
		{CandidateID: "l_0002_fv", IPTM: f(0.5), MeanInterfacePAE: f(6)},
		{CandidateID: "l_0003_fv", IPTM: f(0.5), MeanInterfacePAE: f(3)},
	}
	out, err := Ranker{Weights: DefaultWeights()}.Rank(dev, dock)
	require.NoError(t, err)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, "l_0003_fv", out.Rows[0].CandidateID)
	assert.Equal(t, "l_0002_fv", out.Rows[1].CandidateID)
	assert.Equal(t, "l_0001_fv", out.Rows[2].CandidateID)
	assert.Nil(t, out.Rows[2].FinalScore)
	assert.Equal(t, 3, out.Rows[2].Rank)
}

func TestRankDenseTies(t *testing.T) {
	dev := []DevRow{
		{ID: "l_0001_fv", Score: 50}, {ID: "l_0002_fv", Score: 50},
		{ID: "l_0003_fv", Score: 10}, {ID: "l_0004_fv", Score: 90},
		{ID: "l_0005_fv", Score: 30}, {ID: "l_0006_fv", Score: 20},
	}
	dock := []structure.DockingSummary{
		{CandidateID: "l_0001_fv", IPTM: f(0.5), MeanInterfacePAE: f(4)},
		{CandidateID: "l_0002_fv", IPTM: f(0.5), MeanInterfacePAE: f(4)},
		{CandidateID: "l_0003_fv", IPTM: f(0.5), MeanInterfacePAE: f(4)},
		{CandidateID: "l_0004_fv", IPTM: f(0.5), MeanInterfacePAE: f(4)},
		{CandidateID: "l_0005_fv", IPTM: f(0.5)},
		{CandidateID: "l_0006_fv", IPTM: f(0.5)},
	}
	out, err := Ranker{Weights: DefaultWeights()}.Rank(dev, dock)
	require.NoError(t, err)
	require.Len(t, out.Rows, 6)

	var ids []string
	var ranks []int
	for _, r := range out.Rows {
		ids = append(ids, r.CandidateID)
		ranks = append(ranks, r.Rank)
	}
	assert.Equal(t, []string{"l_0004_fv", "l_0001_fv", "l_0002_fv", "l_0003_fv", "l_0005_fv", "l_0006_fv"}, ids)
	assert.Equal(t, []int{1, 2, 2, 3, 4, 4}, ranks)
}

func TestRankStripRetry(t *testing.T) {
	dev := []DevRow{{ID: "parent_fv", Score: 1}}
	dock := []structure.DockingSummary{{CandidateID: "parent_complex", IPTM: f(0.9)}}
	out, err := New().Rank(dev, dock)
	require.NoError(t, err)
	assert.True(t, out.Stripped)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "parent", out.Rows[0].CandidateID)
	assert.Equal(t, 0.0, *out.Rows[0].FinalScore)
}

func TestRankEmptyJoin(t *testing.T) {
	_, err := New().Rank([]DevRow{{ID: "a"}}, []structure.DockingSummary{{CandidateID: "b"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, candidate.ErrEmptyJoin))
}

func TestRankIPTMFilterDisabled(t *testing.T) {
	dev := []DevRow{{ID: "a_0001_fv", Score: 1}, {ID: "a_0002_fv", Score: 2}}
	dock := []structure.DockingSummary{{CandidateID: "a_0001_fv"}, {CandidateID: "a_0002_fv", IPTM: f(0.01)}}
	out, err := Ranker{Weights: DefaultWeights()}.Rank(dev, dock)
	require.NoError(t, err)
	assert.Len(t, out.Rows, 2)
}
