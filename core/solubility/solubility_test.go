package solubility

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDropsNonStandard(t *testing.T) {
	assert.Equal(t, "ACDW", Clean("a-c*dXw B1"))
}

func TestScoreVeryHydrophilic(t *testing.T) {
	res, ok := Score("q", strings.Repeat("NQ", 40))
	require.True(t, ok)
	assert.Equal(t, -3.5, res.MeanHydrophobicity)
	assert.Zero(t, res.NetChargeProxy)
	assert.Greater(t, res.Score, 0.9)
}

func TestScoreFeatures(t *testing.T) {
	res, ok := Score("x", "KRHDEFWYAV")
	require.True(t, ok)
	assert.Equal(t, 10, res.Length)
	assert.InDelta(t, 2.0+0.1-2.0, res.NetChargeProxy, 1e-12)
	assert.InDelta(t, 0.3, res.FracAromatic, 1e-12)
	assert.InDelta(t, 0.5, res.FracHydrophobic, 1e-12)
}

func TestScoreMatchesFormula(t *testing.T) {
	seq := "EVQLVESGGGLVQPGGSLRLSCAASGFTFSSYAMS"
	res, ok := Score("h", seq)
	require.True(t, ok)

	sig := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	n := float64(res.Length)
	want := 1 - (0.45*sig((res.MeanHydrophobicity-0.3)*2.0) +
		0.25*sig((res.FracAromatic-0.08)*25.0) +
		0.20*sig((math.Abs(res.NetChargeProxy)/n*100-8.0)*0.8) +
		0.10*sig((res.FracHydrophobic-0.45)*10.0))
	assert.InDelta(t, want, res.Score, 1e-12)
}

func TestScoreHydrophobicIsPenalized(t *testing.T) {
	good, _ := Score("g", strings.Repeat("NQST", 20))
	bad, _ := Score("b", strings.Repeat("ILVF", 20))
	assert.Less(t, bad.Score, good.Score)
	assert.GreaterOrEqual(t, bad.Score, 0.0)
}

func TestScoreEmptyAfterClean(t *testing.T) {
	_, ok := Score("e", "XXBZ--")
	assert.False(t, ok)
}
