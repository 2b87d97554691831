package runscli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAndStageTogether(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("abrank-runs"), []string{"--archive", "a.db", "--run", "x"})
	assert.ErrorContains(t, err, "--stage")

	o, err := ParseArgs(NewFlagSet("abrank-runs"), []string{"--archive", "a.db"})
	require.NoError(t, err)
	assert.Equal(t, "-", o.Out)
	assert.True(t, o.Set()["archive"])
}
