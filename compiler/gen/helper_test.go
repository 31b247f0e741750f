package gen

import (
	"bytes"
	"log/slog"

	"github.com/syssam/georm/compiler/load"
)

const testPkg = "example.com/library"

func basic(name string) *load.TypeInfo {
	return &load.TypeInfo{Kind: load.KindBasic, Name: name}
}

func named(pkgPath, name string) *load.TypeInfo {
	return &load.TypeInfo{Kind: load.KindNamed, Name: name, PkgPath: pkgPath}
}

func ptr(elem *load.TypeInfo) *load.TypeInfo {
	return &load.TypeInfo{Kind: load.KindPointer, Elem: elem}
}

func schema(name, table string, fields ...*load.Field) *load.Schema {
	return &load.Schema{
		Name:    name,
		Table:   table,
		PkgName: "library",
		PkgPath: testPkg,
		Fields:  fields,
	}
}

// librarySchemas mirrors compiler/load/testdata/library.
func librarySchemas() []*load.Schema {
	author := schema("Author", "authors",
		&load.Field{Name: "ID", Column: "id", Type: basic("int32"), ID: true},
		&load.Field{Name: "Name", Column: "name", Type: basic("string")},
	)
	author.Relations = []*load.Relation{
		{Kind: load.OneToMany, Name: "books", Entity: "Book", RemoteID: "author_id"},
		{Kind: load.OneToOne, Name: "biography", Entity: "Biography", Table: "biographies", RemoteID: "author_id"},
	}
	biography := schema("Biography", "biographies",
		&load.Field{Name: "ID", Column: "id", Type: basic("int32"), ID: true},
		&load.Field{Name: "Content", Column: "content", Type: basic("string")},
		&load.Field{Name: "AuthorID", Column: "author_id", Type: basic("int32"),
			Relation: &load.Relation{Kind: load.OneToOne, Name: "author", Entity: "Author", RemoteID: "id"}},
	)
	book := schema("Book", "books",
		&load.Field{Name: "Ident", Column: "ident", Type: basic("int32"), ID: true},
		&load.Field{Name: "Title", Type: basic("string")},
		&load.Field{Name: "AuthorID", Column: "author_id", Type: basic("int32"),
			Relation: &load.Relation{Kind: load.OneToOne, Name: "author", Entity: "Author", Table: "authors", RemoteID: "id"}},
		&load.Field{Name: "EditorID", Column: "editor_id", Type: ptr(basic("int32")),
			Relation: &load.Relation{Kind: load.OneToOne, Name: "editor", Entity: "Author", RemoteID: "id", Nullable: true}},
	)
	book.Relations = []*load.Relation{
		{Kind: load.OneToMany, Name: "reviews", Entity: "Review", RemoteID: "book_id"},
		{Kind: load.ManyToMany, Name: "genres", Entity: "Genre", RemoteID: "id",
			Link: &load.Link{Table: "book_genres", From: "book_id", To: "genre_id"}},
	}
	genre := schema("Genre", "genres",
		&load.Field{Name: "ID", Column: "id", Type: basic("int32"), ID: true},
		&load.Field{Name: "Name", Column: "name", Type: basic("string")},
	)
	bookGenre := schema("BookGenre", "book_genres",
		&load.Field{Name: "BookID", Column: "book_id", Type: basic("int32"), ID: true,
			Relation: &load.Relation{Kind: load.OneToOne, Name: "book", Entity: "Book", RemoteID: "ident"}},
		&load.Field{Name: "GenreID", Column: "genre_id", Type: basic("int32"), ID: true},
	)
	review := schema("Review", "reviews",
		&load.Field{Name: "ID", Column: "id", Type: named("github.com/google/uuid", "UUID"), ID: true, Defaultable: true},
		&load.Field{Name: "BookID", Column: "book_id", Type: basic("int32"),
			Relation: &load.Relation{Kind: load.OneToOne, Name: "book", Entity: "Book", RemoteID: "ident"}},
		&load.Field{Name: "Rating", Column: "rating", Type: basic("int16"), Defaultable: true},
		&load.Field{Name: "Body", Column: "body", Type: named("database/sql", "NullString")},
	)
	return []*load.Schema{author, biography, book, genre, bookGenre, review}
}

// testLogger returns a logger writing text records into the returned
// buffer.
func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
