package sql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/georm/compiler/gen"
	"github.com/syssam/georm/compiler/load"
)

// librarySource declares the entities shared by the tests of this package.
const librarySource = `package library

import "github.com/google/uuid"

//georm:table authors
//georm:one_to_one name=biography,entity=Biography,table=biographies,remote_id=author_id
//georm:one_to_many name=books,entity=Book,remote_id=author_id
type Author struct {
	ID   int32  ` + "`db:\"id\" georm:\"id\"`" + `
	Name string ` + "`db:\"name\"`" + `
}

//georm:table biographies
type Biography struct {
	ID       int32  ` + "`db:\"id\" georm:\"id\"`" + `
	AuthorID int32  ` + "`db:\"author_id\" georm:\"relation=author,entity=Author\"`" + `
	Content  string ` + "`db:\"content\"`" + `
}

//georm:table books
//georm:many_to_many name=genres,entity=Genre,link.table=book_genres,link.from=book_id,link.to=genre_id
type Book struct {
	Ident    int32  ` + "`db:\"ident\" georm:\"id\"`" + `
	Title    string ` + "`db:\"title\"`" + `
	AuthorID int32  ` + "`db:\"author_id\" georm:\"relation=author,entity=Author,table=authors\"`" + `
	EditorID *int32 ` + "`db:\"editor_id\" georm:\"relation=editor,entity=Author,nullable\"`" + `
}

//georm:table genres
type Genre struct {
	ID   int32  ` + "`db:\"id\" georm:\"id\"`" + `
	Name string ` + "`db:\"name\"`" + `
}

//georm:table book_genres
type BookGenre struct {
	BookID  int32 ` + "`db:\"book_id\" georm:\"id,relation=book,entity=Book,remote_id=ident\"`" + `
	GenreID int32 ` + "`db:\"genre_id\" georm:\"id\"`" + `
}

//georm:table reviews
type Review struct {
	ID     uuid.UUID ` + "`db:\"id\" georm:\"id,defaultable\"`" + `
	BookID int32     ` + "`db:\"book_id\" georm:\"relation=book,entity=Book,remote_id=ident\"`" + `
	Stars  int16     ` + "`db:\"stars\" georm:\"defaultable\"`" + `
	Body   string    ` + "`db:\"body\"`" + `
}
`

// newTestGenerator builds the library graph and a generator serving as the
// gen.GeneratorHelper of the dialect.
func newTestGenerator(t *testing.T, opts ...gen.Option) *gen.JenniferGenerator {
	t.Helper()
	schemas, err := load.ParseSource("library.go", librarySource)
	require.NoError(t, err)
	graph, err := gen.NewGraph(gen.MustNewConfig(opts...), schemas...)
	require.NoError(t, err)
	return gen.NewJenniferGenerator(graph)
}

// renderEntity renders the file of the named entity.
func renderEntity(t *testing.T, h *gen.JenniferGenerator, name string) string {
	t.Helper()
	typ, ok := h.Graph().Type(name)
	require.True(t, ok, "unknown entity %s", name)
	f, err := NewDialect(h).GenEntity(typ)
	require.NoError(t, err)
	return f.GoString()
}

// lines returns the trimmed, non-empty lines of code.
func lines(code string) []string {
	var out []string
	for _, l := range strings.Split(code, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
