package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheCmd_Use(t *testing.T) {
	assert.Equal(t, "cache", cacheCmd.Use)
}

func TestCacheCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, c := range cacheCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "stats")
	assert.Contains(t, names, "clear")
	assert.Contains(t, names, "path")
}

func TestCacheStatsCmd_CountsEnumerationTraffic(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	enumerate := new(bytes.Buffer)
	rootCmd.SetOut(enumerate)
	rootCmd.SetArgs([]string{"reactions", "p+7Li"})
	require.NoError(t, rootCmd.Execute())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Engine:  memory")
	assert.Contains(t, buf.String(), "Path:    :memory:")
	assert.Contains(t, buf.String(), "Entries: 1")
	assert.Contains(t, buf.String(), "Misses:  1")
	assert.Contains(t, buf.String(), "Puts:    1")
}

func TestCacheClearCmd_EmptiesTheCache(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	enumerate := new(bytes.Buffer)
	rootCmd.SetOut(enumerate)
	rootCmd.SetArgs([]string{"reactions", "p+7Li"})
	require.NoError(t, rootCmd.Execute())

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "clear"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Reaction cache cleared.")

	stats := new(bytes.Buffer)
	rootCmd.SetOut(stats)
	rootCmd.SetArgs([]string{"cache", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stats.String(), "Entries: 0")
}

func TestCachePathCmd_PrintsLocation(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "path"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", buf.String())
}

func TestCacheCmd_NotConfigured(t *testing.T) {
	oldCache := reactionCache
	oldWired := servicesWired
	reactionCache = nil
	servicesWired = true
	defer func() {
		reactionCache = oldCache
		servicesWired = oldWired
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"cache", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reaction cache not configured")
}
