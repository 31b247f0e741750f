package integration

import (
	"context"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/georm/compiler/gen"
	gensql "github.com/syssam/georm/compiler/gen/sql"
	"github.com/syssam/georm/compiler/load"
)

const pkgPath = "github.com/syssam/georm/internal/integration"

// codeTokens returns the tokens of a Go source file, leaving out comments
// and the separators whose presence depends on line layout.
func codeTokens(t *testing.T, path string) []string {
	t.Helper()
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	fset := token.NewFileSet()
	var s scanner.Scanner
	s.Init(fset.AddFile(path, -1, len(src)), src, nil, 0)

	var toks []string
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		switch {
		case tok == token.SEMICOLON && lit == "\n":
			continue
		case (tok == token.RBRACE || tok == token.RPAREN) && len(toks) > 0 && toks[len(toks)-1] == token.COMMA.String():
			toks = toks[:len(toks)-1]
		}
		if lit != "" && tok != token.SEMICOLON {
			toks = append(toks, lit)
		} else {
			toks = append(toks, tok.String())
		}
	}
	return toks
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	schemas, err := load.Dir(".", pkgPath)
	require.NoError(t, err)
	target := t.TempDir()
	graph, err := gen.NewGraph(gen.MustNewConfig(gen.WithTarget(target)), schemas...)
	require.NoError(t, err)
	assert.Empty(t, graph.Diagnostics)

	files, err := gensql.GenerateFiles(context.Background(), graph)
	require.NoError(t, err)

	committed, err := filepath.Glob("*" + load.GeneratedSuffix)
	require.NoError(t, err)
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	require.ElementsMatch(t, committed, names, "run go generate to add or remove generated files")

	for _, f := range files {
		name := filepath.Base(f)
		assert.Equal(t, codeTokens(t, name), codeTokens(t, f), "%s is stale: run go generate", name)
	}
}
