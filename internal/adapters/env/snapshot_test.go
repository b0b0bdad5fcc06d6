package env_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fanout.dev/fanout/internal/adapters/env"
)

func TestSnapshot_SortedPairs(t *testing.T) {
	source := env.NewWithEnviron(t.TempDir(), func() []string {
		return []string{"ZED=1", "ALPHA=2", "MID=3"}
	})

	assert.Equal(t, []string{"ALPHA=2", "MID=3", "ZED=1"}, source.Snapshot())
}

func TestSnapshot_DotenvFillsOnlyUnsetKeys(t *testing.T) {
	root := t.TempDir()
	dotenv := "EXTRA_FLAG=from-dotenv\nPATH=/from-dotenv\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(dotenv), 0o600))

	source := env.NewWithEnviron(root, func() []string {
		return []string{"PATH=/usr/bin"}
	})

	snapshot := source.Snapshot()
	assert.Contains(t, snapshot, "EXTRA_FLAG=from-dotenv")
	assert.Contains(t, snapshot, "PATH=/usr/bin")
	assert.NotContains(t, snapshot, "PATH=/from-dotenv")
}

func TestSnapshot_NoDotenvFile(t *testing.T) {
	source := env.NewWithEnviron(t.TempDir(), func() []string {
		return []string{"ONLY=value"}
	})

	assert.Equal(t, []string{"ONLY=value"}, source.Snapshot())
}

func TestSnapshot_MalformedEntriesAreDropped(t *testing.T) {
	source := env.NewWithEnviron(t.TempDir(), func() []string {
		return []string{"GOOD=yes", "not-a-pair"}
	})

	assert.Equal(t, []string{"GOOD=yes"}, source.Snapshot())
}

func TestSnapshot_CallerOwnsSlice(t *testing.T) {
	source := env.NewWithEnviron(t.TempDir(), func() []string {
		return []string{"A=1", "B=2"}
	})

	first := source.Snapshot()
	first[0] = "A=tampered"

	assert.Equal(t, []string{"A=1", "B=2"}, source.Snapshot())
}
