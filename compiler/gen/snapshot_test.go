package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()

	g, d := newTestGenerator(t, dir, WithFeatures(FeatureSnapshot))
	d.calls = make(chan string, 16)
	require.NoError(t, g.Generate(context.Background()))
	assert.Len(t, d.calls, 6, "first run renders every entity")
	require.FileExists(t, filepath.Join(dir, SnapshotFile))

	recorded, err := readSnapshot(dir)
	require.NoError(t, err)
	assert.Len(t, recorded, 6)

	g, d = newTestGenerator(t, dir, WithFeatures(FeatureSnapshot))
	d.calls = make(chan string, 16)
	require.NoError(t, g.Generate(context.Background()))
	assert.Empty(t, d.calls, "unchanged entities are skipped")
	assert.Empty(t, g.Written())

	require.NoError(t, os.Remove(filepath.Join(dir, "genre_georm.go")))
	g, d = newTestGenerator(t, dir, WithFeatures(FeatureSnapshot))
	d.calls = make(chan string, 16)
	require.NoError(t, g.Generate(context.Background()))
	require.Len(t, d.calls, 1, "a missing file is regenerated")
	assert.Equal(t, "Genre", <-d.calls)

	g, d = newTestGenerator(t, dir, WithFeatures(FeatureSnapshot), WithHeader("Code generated by a test. DO NOT EDIT."))
	d.calls = make(chan string, 16)
	require.NoError(t, g.Generate(context.Background()))
	assert.Len(t, d.calls, 6, "a header change invalidates every digest")
}

func TestDigest(t *testing.T) {
	graph := libraryGraph(t)
	book, _ := graph.Type("Book")

	d1, err := digest(graph, book)
	require.NoError(t, err)
	d2, err := digest(graph, book)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)

	other, err := NewGraph(MustNewConfig(WithFeatures(FeatureFallbackUpsert)), librarySchemas()...)
	require.NoError(t, err)
	b, _ := other.Type("Book")
	d3, err := digest(other, b)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3, "features are part of the digest")
}

func TestReadSnapshot(t *testing.T) {
	dir := t.TempDir()
	recorded, err := readSnapshot(dir)
	require.NoError(t, err)
	assert.Empty(t, recorded)

	require.NoError(t, writeSnapshot(dir, map[string]string{"Book": "abc"}))
	recorded, err = readSnapshot(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Book": "abc"}, recorded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, SnapshotFile), []byte{0xc1}, 0o644))
	_, err = readSnapshot(dir)
	require.Error(t, err)
}
