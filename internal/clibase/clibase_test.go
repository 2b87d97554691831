package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abrank/internal/config"
)

func TestApplyOnlyVisited(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	Register(fs, &c, "out.csv")
	require.NoError(t, fs.Parse([]string{"-t", "3"}))

	cfg := config.Default()
	cfg.LogFile = "from-config.log"
	c.Apply(Visited(fs), &cfg)

	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, "from-config.log", cfg.LogFile)
	assert.Equal(t, "out.csv", c.Out)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&Common{Format: "tsv"}))
	assert.Error(t, Validate(&Common{Threads: -1}))
	assert.Error(t, Validate(&Common{Quiet: true, Verbose: true}))
	assert.ErrorContains(t, Validate(&Common{Format: "xml"}), "--format")
}

func TestUsageShowsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("abrank-x", flag.ContinueOnError)
	var c Common
	Register(fs, &c, "scores.csv")
	UsageCommon(fs, "abrank-x", "test tool", func(out io.Writer, _ func(string) string) {})
	var b bytes.Buffer
	fs.SetOutput(&b)
	fs.Usage()
	assert.True(t, strings.HasPrefix(b.String(), "abrank-x - test tool\n"))
	assert.Contains(t, b.String(), "[scores.csv]")
}

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b, "abrank-x", func(w io.Writer) { _, _ = w.Write([]byte("  abrank-x in.fa\n")) })
	assert.Contains(t, b.String(), "abrank-x - quickstart")
	assert.Contains(t, b.String(), "in.fa")
}
