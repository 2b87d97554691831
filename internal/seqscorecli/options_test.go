package seqscorecli

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abrank/internal/clibase"
	"abrank/internal/config"
)

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs(NewFlagSet("abrank-seqscore"), []string{"--tau", "8", "lib.fa", "-t", "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lib.fa"}, o.SeqFiles)
	assert.Equal(t, "solubility_proxy.csv", o.Out)
	assert.Equal(t, "liabilities_cdr.csv", o.Liability)

	cfg := config.Default()
	o.Common.Apply(o.Set(), &cfg)
	o.Apply(&cfg)
	assert.Equal(t, 8.0, cfg.Liability.Tau)
	assert.Equal(t, 2, cfg.Threads)
	assert.Equal(t, config.Default().Liability.MinLinker, cfg.Liability.MinLinker)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("x"), []string{"--quiet"})
	assert.ErrorContains(t, err, "sequence file")

	_, err = ParseArgs(NewFlagSet("x"), []string{"--tau", "0", "a.fa"})
	assert.ErrorContains(t, err, "--tau")

	_, err = ParseArgs(NewFlagSet("x"), []string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = ParseArgs(NewFlagSet("x"), []string{"--examples"})
	assert.True(t, errors.Is(err, clibase.ErrPrintedAndExitOK))
}
