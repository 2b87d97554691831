package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"abrank-core/aggregate"
	"abrank-core/rank"
)

func f(v float64) *float64 { return &v }

func TestFinalTopN(t *testing.T) {
	rows := []rank.Row{
		{Rank: 1, CandidateID: "a_0001_fv", FinalScore: f(2.5), Dev: 80, IPTM: f(0.8), MeanInterfacePAE: f(6)},
		{Rank: 2, CandidateID: "a_0002_fv", FinalScore: f(1), Dev: 70, IPTM: f(0.4)},
		{Rank: 3, CandidateID: "a_0003_fv", Dev: 60},
	}
	var b bytes.Buffer
	Final(&b, rows, "DCS", Options{Top: 2, NoColor: true})
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "Top 2 candidates\n"))
	assert.Contains(t, out, "a_0001_fv")
	assert.Contains(t, out, "a_0002_fv")
	assert.NotContains(t, out, "a_0003_fv")
	assert.Contains(t, out, "NA")
	assert.NotContains(t, out, "\x1b[")
}

func TestFinalNothing(t *testing.T) {
	var b bytes.Buffer
	Final(&b, nil, "DCS", DefaultOptions)
	assert.Empty(t, b.String())
}

func TestCandidatesFunnel(t *testing.T) {
	res := aggregate.Result{
		Merged: 3,
		Ranked: []aggregate.Candidate{{ID: "x_0001_fv", DCS: 75}},
	}
	var b bytes.Buffer
	Candidates(&b, res, Options{Top: 5, NoColor: true})
	assert.Contains(t, b.String(), "merged 3, passed filters 1, selected 0")
	assert.Contains(t, b.String(), "x_0001_fv")
}
