package compiler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/georm/compiler/gen"
)

func TestGenerate(t *testing.T) {
	if testing.Short() {
		t.Skip("invokes the go command")
	}
	target := t.TempDir()
	written, err := Generate(context.Background(), []string{"./load/testdata/library"}, gen.WithTarget(target))
	require.NoError(t, err)
	require.Len(t, written, 6)
	for _, path := range written {
		assert.Equal(t, target, filepath.Dir(path))
	}
	assert.FileExists(t, filepath.Join(target, "book_georm.go"))
}

func TestLoadGraph(t *testing.T) {
	if testing.Short() {
		t.Skip("invokes the go command")
	}
	graph, err := LoadGraph(context.Background(), []string{"./load/testdata/library"})
	require.NoError(t, err)
	book, ok := graph.Type("Book")
	require.True(t, ok)
	assert.Equal(t, "books", book.Table)
	assert.Len(t, graph.Diagnostics, 0)
}

func TestLoadGraphErrors(t *testing.T) {
	_, err := LoadGraph(context.Background(), nil, gen.WithWorkers(-1))
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))
}
