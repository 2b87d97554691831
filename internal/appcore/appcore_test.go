package appcore

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abrank-core/candidate"
	"abrank-core/region"
	"abrank-core/structure"

	"abrank/internal/clibase"
	"abrank/internal/cliutil"
	"abrank/internal/config"
	"abrank/internal/output"
	"abrank/internal/tables"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{fmt.Errorf("write: %w", syscall.EPIPE), ExitOK},
		{fmt.Errorf("run: %w", context.Canceled), ExitCancelled},
		{fmt.Errorf("merge: %w", candidate.ErrEmptyJoin), ExitNoResults},
		{structure.ErrNoScores, ExitNoResults},
		{ErrNoResults, ExitNoResults},
		{fmt.Errorf("%w: x.fa", cliutil.ErrMissingInput), ExitUsage},
		{&os.PathError{Op: "open", Path: "x", Err: os.ErrNotExist}, ExitUsage},
		{fmt.Errorf("%w: bad", config.ErrInvalid), ExitUsage},
		{fmt.Errorf("x: %w", tables.ErrMissingColumn), ExitUsage},
		{&tables.CellError{Path: "a.csv", Line: 2, Column: 1, Name: "id", Err: errors.New("bad")}, ExitUsage},
		{&region.LinkerNotFoundError{Longest: 3, Min: 12}, ExitUsage},
		{errors.New("disk on fire"), ExitRuntime},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ExitCode(c.err), "%v", c.err)
	}
}

func TestFinishPrints(t *testing.T) {
	var b bytes.Buffer
	assert.Equal(t, ExitRuntime, Finish(&b, errors.New("boom")))
	assert.Equal(t, "error: boom\n", b.String())

	b.Reset()
	assert.Equal(t, ExitCancelled, Finish(&b, context.Canceled))
	assert.Empty(t, b.String())
}

func TestParseFailed(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Usage = func() { _, _ = fs.Output().Write([]byte("usage\n")) }
	var out, errw bytes.Buffer

	assert.Equal(t, ExitOK, ParseFailed(fs, flag.ErrHelp, &out, &errw))
	assert.Equal(t, "usage\n", out.String())

	out.Reset()
	assert.Equal(t, ExitUsage, ParseFailed(fs, errors.New("bad flag"), &out, &errw))
	assert.Equal(t, "bad flag\nusage\n", errw.String())

	assert.Equal(t, ExitOK, ParseFailed(fs, clibase.ErrPrintedAndExitOK, &out, &errw))
}

func TestSetupEmitArchive(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c := clibase.Common{Archive: filepath.Join(dir, "runs.db"), Quiet: true}
	var stdout, stderr bytes.Buffer
	env, err := Setup("abrank-test", c, map[string]bool{"archive": true}, func(cfg *config.Config) {
		cfg.Final.Top = 3
	}, &stdout, &stderr)
	require.NoError(t, err)
	defer env.Close()

	assert.Equal(t, 3, env.Config.Final.Top)
	require.NotNil(t, env.Archive)
	assert.NotEmpty(t, env.RunID)

	tab := output.Table{Columns: []string{"id"}, Rows: [][]string{{"a"}}}
	require.NoError(t, env.Emit("-", "tsv", "test", tab))
	assert.Equal(t, "id\na\n", stdout.String())

	got, err := env.Archive.LoadTable(env.RunID, "test")
	require.NoError(t, err)
	assert.Equal(t, tab.Rows, got.Rows)
}

func TestSetupRejectsInvalid(t *testing.T) {
	_, err := Setup("abrank-test", clibase.Common{}, nil, func(cfg *config.Config) {
		cfg.Diversity.Total = 0
	}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrInvalid)
}
