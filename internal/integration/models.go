// Package integration declares a small library schema and commits the code
// georm generates for it, so the generated operations can be exercised
// against sqlmock and, with the integration build tag, a Postgres server.
package integration

import (
	"time"

	"github.com/google/uuid"
)

//go:generate go run github.com/syssam/georm/cmd/georm .

// Author writes books. Both the key and the biography have database
// defaults.
//
//georm:table authors
//georm:one_to_one name=biography,entity=Biography,remote_id=author_id
//georm:one_to_many name=books,entity=Book,remote_id=author_id
type Author struct {
	ID   int32  `db:"id" georm:"id,defaultable"`
	Name string `db:"name"`
	Bio  string `db:"bio" georm:"defaultable"`
}

//georm:table biographies
type Biography struct {
	ID       int32  `db:"id" georm:"id"`
	AuthorID int32  `db:"author_id" georm:"relation=author,entity=Author"`
	Content  string `db:"content"`
}

// Book has a required author and an optional editor.
//
//georm:table books
//georm:many_to_many name=genres,entity=Genre,link.table=book_genres,link.from=book_id,link.to=genre_id
type Book struct {
	Ident    int32  `db:"ident" georm:"id"`
	Title    string `db:"title"`
	AuthorID int32  `db:"author_id" georm:"relation=author,entity=Author"`
	EditorID *int32 `db:"editor_id" georm:"relation=editor,entity=Author,nullable"`
}

//georm:table genres
//georm:many_to_many name=books,entity=Book,remote_id=ident,link.table=book_genres,link.from=genre_id,link.to=book_id
type Genre struct {
	ID   int32  `db:"id" georm:"id"`
	Name string `db:"name"`
}

// BookGenre links books and genres.
//
//georm:table book_genres
type BookGenre struct {
	BookID  int32 `db:"book_id" georm:"id"`
	GenreID int32 `db:"genre_id" georm:"id"`
}

//georm:table reviews
type Review struct {
	ID        uuid.UUID `db:"id" georm:"id,defaultable"`
	BookID    int32     `db:"book_id" georm:"relation=book,entity=Book,remote_id=ident"`
	Stars     int16     `db:"stars" georm:"defaultable"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at" georm:"defaultable"`
}
