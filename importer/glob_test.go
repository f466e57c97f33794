package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("# ttl\n"), 0644))
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.ttl", "a.ttl", "notes.md")

	files, err := ExpandPaths([]string{filepath.Join(dir, "*.ttl")})
	require.NoError(t, err)

	// Sorted and filtered to the pattern.
	assert.Equal(t, []string{
		filepath.Join(dir, "a.ttl"),
		filepath.Join(dir, "b.ttl"),
	}, files)
}

func TestExpandPathsRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "top.ttl", "sub/nested.ttl", "sub/deep/leaf.ttl")

	files, err := ExpandPaths([]string{filepath.Join(dir, "**", "*.ttl")})
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestExpandPathsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.ttl")

	files, err := ExpandPaths([]string{
		filepath.Join(dir, "a.ttl"),
		filepath.Join(dir, "*.ttl"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.ttl")}, files)
}

func TestExpandPathsNoMatch(t *testing.T) {
	dir := t.TempDir()

	_, err := ExpandPaths([]string{filepath.Join(dir, "*.ttl")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ontology files match")
}
