package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/georm/compiler/load"
)

// constDialect renders one constant per entity.
type constDialect struct {
	helper GeneratorHelper
	calls  chan string
	err    error
}

func (d *constDialect) Name() string { return "const" }

func (d *constDialect) GenEntity(t *Type) (*jen.File, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.calls != nil {
		d.calls <- t.Name
	}
	f := d.helper.NewFile(t)
	f.Const().Id(t.TableConst()).Op("=").Lit(t.Table)
	return f, nil
}

func newTestGenerator(t *testing.T, dir string, opts ...Option) (*JenniferGenerator, *constDialect) {
	t.Helper()
	schemas := librarySchemas()
	for _, s := range schemas {
		s.Dir = dir
	}
	graph, err := NewGraph(MustNewConfig(opts...), schemas...)
	require.NoError(t, err)
	g := NewJenniferGenerator(graph).WithWorkers(2)
	d := &constDialect{helper: g}
	g.WithDialect(d)
	return g, d
}

func TestJenniferGenerator(t *testing.T) {
	dir := t.TempDir()
	logger, buf := testLogger()
	g, _ := newTestGenerator(t, dir, WithLogger(logger))
	require.NoError(t, g.Generate(context.Background()))

	written := g.Written()
	require.Len(t, written, 6)
	assert.Equal(t, filepath.Join(dir, "author_georm.go"), written[0])

	data, err := os.ReadFile(filepath.Join(dir, "book_genre_georm.go"))
	require.NoError(t, err)
	src := string(data)
	assert.True(t, strings.HasPrefix(src, "// "+DefaultHeader+"\n"))
	assert.Contains(t, src, "package library")
	assert.Contains(t, src, `const BookGenreTable = "book_genres"`)
	assert.Contains(t, buf.String(), "georm: wrote file")
}

func TestJenniferGeneratorTarget(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	g, _ := newTestGenerator(t, src, WithTarget(out))
	require.NoError(t, g.Generate(context.Background()))
	assert.FileExists(t, filepath.Join(out, "review_georm.go"))
	assert.NoFileExists(t, filepath.Join(src, "review_georm.go"))
}

func TestJenniferGeneratorNoDialect(t *testing.T) {
	graph, err := NewGraph(MustNewConfig(), librarySchemas()...)
	require.NoError(t, err)
	err = NewJenniferGenerator(graph).Generate(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestJenniferGeneratorDialectError(t *testing.T) {
	dir := t.TempDir()
	g, d := newTestGenerator(t, dir)
	d.err = errors.New("unsupported type")
	err := g.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
	assert.ErrorIs(t, err, d.err)
	assert.NoFileExists(t, filepath.Join(dir, "book_georm.go"))
}

func TestJenniferGeneratorInvalidQuery(t *testing.T) {
	graph, err := NewGraph(MustNewConfig(), schema("Price", "prices",
		&load.Field{Name: "ID", Type: basic("int64"), ID: true},
		&load.Field{Name: "Amount", Column: "amount$1", Type: basic("int64")},
	))
	require.NoError(t, err)
	g := NewJenniferGenerator(graph)
	g.WithDialect(&constDialect{helper: g})
	err = g.Generate(context.Background())
	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "query", genErr.Phase)
	assert.Equal(t, "price_georm.go", genErr.File)
}

func TestJenniferGeneratorContextCanceled(t *testing.T) {
	g, _ := newTestGenerator(t, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := g.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestJenniferGeneratorPrune(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "magazine_georm.go")
	handwritten := filepath.Join(dir, "custom_georm.go")
	require.NoError(t, os.WriteFile(stale, []byte("// "+DefaultHeader+"\n\npackage library\n"), 0o644))
	require.NoError(t, os.WriteFile(handwritten, []byte("package library\n"), 0o644))

	g, _ := newTestGenerator(t, dir)
	require.NoError(t, g.Generate(context.Background()))
	assert.NoFileExists(t, stale)
	assert.FileExists(t, handwritten)
}

func TestJenniferGeneratorPruneBlockHeader(t *testing.T) {
	const header = "Code generated by georm.\nDO NOT EDIT."
	dir := t.TempDir()
	prev := jen.NewFile("library")
	prev.HeaderComment(header)
	prev.Const().Id("MagazineTable").Op("=").Lit("magazines")
	stale := filepath.Join(dir, "magazine_georm.go")
	require.NoError(t, os.WriteFile(stale, []byte(prev.GoString()), 0o644))

	g, _ := newTestGenerator(t, dir, WithHeader(header))
	require.NoError(t, g.Generate(context.Background()))
	assert.NoFileExists(t, stale)
}

func TestRenderedHeader(t *testing.T) {
	assert.Equal(t, "// "+DefaultHeader, renderedHeader(DefaultHeader))
	block := renderedHeader("first\nsecond")
	assert.True(t, strings.HasPrefix(block, "/*"), block)
	assert.Contains(t, block, "first\nsecond")
}

func TestGeneratorHelper(t *testing.T) {
	graph, err := NewGraph(MustNewConfig(WithFeatures(FeatureFallbackUpsert)), librarySchemas()...)
	require.NoError(t, err)
	g := NewJenniferGenerator(graph)

	assert.Same(t, graph, g.Graph())
	assert.Equal(t, "github.com/syssam/georm", g.GeormPkg())
	assert.Equal(t, "github.com/syssam/georm/dialect/sql", g.SQLPkg())
	assert.True(t, g.FeatureEnabled(FeatureFallbackUpsert.Name))

	render := func(c jen.Code) string {
		return jen.Var().Id("_").Add(c).GoString()
	}
	assert.Equal(t, "var _ *int32", render(g.GoType(ptr(basic("int32")))))
	assert.Equal(t, "var _ []byte", render(g.GoType(&load.TypeInfo{Kind: load.KindSlice, Elem: basic("byte")})))
	assert.Equal(t, "var _ [16]byte", render(g.GoType(&load.TypeInfo{Kind: load.KindArray, Len: "16", Elem: basic("byte")})))
	assert.Contains(t, render(g.GoType(named("github.com/google/uuid", "UUID"))), "uuid.UUID")
	assert.Equal(t, "var _ map[string]int64", render(g.GoType(&load.TypeInfo{Kind: load.KindMap, Key: basic("string"), Elem: basic("int64")})))
	nullInt := named("database/sql", "Null")
	nullInt.Args = []*load.TypeInfo{basic("int64")}
	assert.Contains(t, render(g.GoType(nullInt)), "sql.Null[int64]")

	bg, _ := graph.Type("BookGenre")
	assert.Contains(t, render(g.KeyType(bg)), "BookGenreID")
	book, _ := graph.Type("Book")
	assert.Equal(t, "var _ int32", render(g.KeyType(book)))
}
