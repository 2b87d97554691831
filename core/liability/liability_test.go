package liability

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abrank-core/region"
)

func TestCountMotifsDipeptidesNonOverlapping(t *testing.T) {
	c := CountMotifs("NNN", DefaultTable())
	assert.Equal(t, 1, c[MotifDeamidNN])

	c = CountMotifs("DGDGDPMW", DefaultTable())
	assert.Equal(t, 2, c[MotifIsomerDG])
	assert.Equal(t, 1, c[MotifCleavageDP])
	assert.Equal(t, 1, c[MotifOxidM])
	assert.Equal(t, 1, c[MotifOxidW])
}

func TestCountMotifsSequonOverlaps(t *testing.T) {
	// NNST: N-N-S and N-S-T are both sequons.
	c := CountMotifs("NNST", DefaultTable())
	assert.Equal(t, 2, c[MotifNGlyco])
	assert.Equal(t, 1, c[MotifDeamidNN])
	assert.Equal(t, 1, c[MotifDeamidNS])

	c = CountMotifs("NPS", DefaultTable())
	assert.Equal(t, 0, c[MotifNGlyco])
}

func TestRiskZeroWithoutMotifs(t *testing.T) {
	region := strings.Repeat("A", 110)
	c := CountMotifs(region, DefaultTable())
	assert.Equal(t, 0.0, Risk(c, len(region), DefaultTable(), DefaultTau))
}

func TestRiskSingleSequon(t *testing.T) {
	r := []byte(strings.Repeat("A", 110))
	copy(r[50:], "NAS")
	c := CountMotifs(string(r), DefaultTable())
	require.Equal(t, 1, c[MotifNGlyco])

	density := 100 * 3.0 / 110
	want := math.Round((1-math.Exp(-density/12.0))*1e6) / 1e6
	assert.Equal(t, want, Risk(c, 110, DefaultTable(), DefaultTau))
	assert.InDelta(t, 0.203297, want, 1e-6)
}

func TestRiskMonotonicInWeight(t *testing.T) {
	prev := -1.0
	for n := 0; n < 30; n++ {
		r := Risk(Counts{MotifOxidM: n}, 50, DefaultTable(), DefaultTau)
		assert.GreaterOrEqual(t, r, prev)
		assert.LessOrEqual(t, r, 1.0)
		prev = r
	}
}

func TestRiskEmptyRegionUsesUnitLength(t *testing.T) {
	assert.Equal(t, 0.0, Risk(Counts{}, 0, DefaultTable(), DefaultTau))
	assert.Greater(t, Risk(Counts{MotifOxidW: 1}, 0, DefaultTable(), DefaultTau), 0.9)
}

func TestWithWeightsCopies(t *testing.T) {
	base := DefaultTable()
	alt := base.WithWeights(map[string]float64{MotifOxidM: 2.0})
	assert.Equal(t, 0.5, base[7].Weight)
	assert.Equal(t, 2.0, alt[7].Weight)
}

func scfv(vh, vl string) string { return vh + strings.Repeat("GGGGS", 3) + vl }

func TestScorerUsesCDRsOnly(t *testing.T) {
	vh := []byte(strings.Repeat("A", 120))
	vl := []byte(strings.Repeat("A", 108))
	copy(vh[5:], "NAS")  // framework: ignored
	copy(vh[100:], "DP") // H3
	s := NewScorer()

	res := s.Score("v1", scfv(string(vh), string(vl)))
	require.True(t, res.SplitOK)
	assert.Equal(t, 41+29, res.LengthCDR)
	assert.Equal(t, 0, res.Counts[MotifNGlyco])
	assert.Equal(t, 1, res.Counts[MotifCleavageDP])
	assert.Equal(t, Risk(Counts{MotifCleavageDP: 1}, 70, s.Table, s.Tau), res.Risk)
}

func TestScorerFallsBackToWholeSequence(t *testing.T) {
	seq := strings.Repeat("A", 40) + "NAS" + strings.Repeat("A", 40)
	res := NewScorer().Score("v2", seq)
	assert.False(t, res.SplitOK)
	assert.Equal(t, len(seq), res.LengthCDR)
	assert.Equal(t, 1, res.Counts[MotifNGlyco])
	assert.Greater(t, res.Risk, 0.0)
}

func TestScorerAlternateScheme(t *testing.T) {
	s := NewScorer()
	s.Scheme = region.Scheme{
		Heavy: [3]region.Range{{From: 0, To: 3}},
		Light: [3]region.Range{{From: 0, To: 3}},
	}
	res := s.Score("v3", scfv("MWKAAAAAAAAAAAA", "DGAAAAAAAAA"))
	require.True(t, res.SplitOK)
	assert.Equal(t, 6, res.LengthCDR)
	assert.Equal(t, 1, res.Counts[MotifOxidM])
	assert.Equal(t, 1, res.Counts[MotifOxidW])
	assert.Equal(t, 1, res.Counts[MotifIsomerDG])
}
