package af2cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abrank/internal/config"
)

func TestDefaults(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("abrank-af2"), []string{"out/"})
	require.NoError(t, err)
	assert.Equal(t, ModeMonomer, o.Mode)
	assert.Equal(t, "af2_summary.csv", o.Out)
	assert.Equal(t, []string{"out/"}, o.Dirs)

	cfg := config.Default()
	o.Apply(&cfg)
	assert.Equal(t, 1, cfg.Structure.Rank)
}

func TestDockingOverrides(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("abrank-af2"), []string{"--mode", "Docking", "--rank", "3", "--target", "C", "d/"})
	require.NoError(t, err)
	assert.Equal(t, "docking_metrics.csv", o.Out)

	cfg := config.Default()
	o.Apply(&cfg)
	assert.Equal(t, 3, cfg.Structure.Rank)
	assert.Equal(t, "C", cfg.Structure.Target)
}

func TestRejects(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("x"), nil)
	assert.ErrorContains(t, err, "directory")
	_, err = ParseArgs(NewFlagSet("x"), []string{"--mode", "dimer", "d"})
	assert.ErrorContains(t, err, "--mode")
	_, err = ParseArgs(NewFlagSet("x"), []string{"--rank", "0", "d"})
	assert.ErrorContains(t, err, "--rank")
}
