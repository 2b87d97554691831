package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutFollowsStages(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("abrank"), []string{"--af2-dir", "af2", "lib.fasta"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib.fasta"}, o.SeqFiles)
	assert.Equal(t, filepath.Join("abrank_out", "candidates_ranked.csv"), o.Out)

	o, err = ParseArgs(NewFlagSet("abrank"), []string{"--af2-dir", "af2", "--dock-dir", "dock", "--format", "tsv", "--outdir", "r", "lib.fasta"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("r", "final_ranking.tsv"), o.Out)
	assert.Equal(t, filepath.Join("r", "solubility_proxy.tsv"), o.Path("solubility_proxy"))
}

func TestExplicitOutKept(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("abrank"), []string{"--af2-dir", "af2", "-o", "-", "-s", "lib.fasta"})
	require.NoError(t, err)
	assert.Equal(t, "-", o.Out)
}

func TestRequiredInputs(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("abrank"), []string{"--af2-dir", "af2"})
	assert.ErrorContains(t, err, "FASTA")

	_, err = ParseArgs(NewFlagSet("abrank"), []string{"lib.fasta"})
	assert.ErrorContains(t, err, "--af2-dir")
}
