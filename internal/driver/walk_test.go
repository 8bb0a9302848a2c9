package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunDiscoversAndParsesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.scala", "object O { val x = 1 }")
	writeFile(t, dir, "bad.scala", "object O { val x = }")
	writeFile(t, dir, "ignored.txt", "not scala")

	results, err := Run(context.Background(), Options{Roots: []string{dir}, Extension: ".scala"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]Result{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}
	assert.True(t, byName["good.scala"].Passed)
	assert.False(t, byName["bad.scala"].Passed)
	require.NotNil(t, byName["bad.scala"].ParseErr)
}

func TestRunSkipsFailingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "failing/broken.scala", "object O {")

	results, err := Run(context.Background(), Options{Roots: []string{dir}, Extension: ".scala"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	assert.Equal(t, "failing/ path segment", results[0].SkipWhy)
}

func TestRunNegatesExpectationsUnderNegDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "neg/bad.scala", "object O {")

	results, err := Run(context.Background(), Options{Roots: []string{dir}, Extension: ".scala"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
	assert.Nil(t, results[0].ParseErr)
}

func TestRunResultsAreSortedByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.scala", "object Z { val x = 1 }")
	writeFile(t, dir, "a.scala", "object A { val x = 1 }")

	results, err := Run(context.Background(), Options{Roots: []string{dir}, Extension: ".scala"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Path < results[1].Path)
}

