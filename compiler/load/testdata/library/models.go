package library

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Author writes books.
//
//georm:table authors
//georm:one_to_one name=biography,entity=Biography,remote_id=author_id
//georm:one_to_many name=books,entity=Book,remote_id=author_id
type Author struct {
	ID        int32          `db:"id" georm:"id"`
	Name      string         `db:"name"`
	Bio       sql.NullString `db:"bio"`
	BirthDate *time.Time     `db:"birth_date"`
	Internal  string         `georm:"-"`
}

// Biography is the life story of an author.
//
//georm:table biographies
type Biography struct {
	ID       int32  `db:"id" georm:"id"`
	Content  string `db:"content"`
	AuthorID int32  `db:"author_id" georm:"relation=author,entity=Author"`
}

// Book has one author and many genres.
//
//georm:table books
//georm:many_to_many name=genres,entity=Genre,link.table=book_genres,link.from=book_id,link.to=genre_id
type Book struct {
	Ident    int32  `db:"ident" georm:"id"`
	Title    string `db:"title"`
	AuthorID int32  `db:"author_id" georm:"relation=author,entity=Author,table=authors"`
}

//georm:table genres
type Genre struct {
	ID   int32 `db:"id" georm:"id"`
	Name string
}

// BookGenre is the link between books and genres.
//
//georm:table book_genres
type BookGenre struct {
	BookID  int32 `db:"book_id" georm:"id"`
	GenreID int32 `db:"genre_id" georm:"id"`
}

//georm:table reviews
type Review struct {
	ID        uuid.UUID      `db:"id" georm:"id,defaultable"`
	BookID    int32          `db:"book_id" georm:"relation=book,entity=Book,remote_id=ident"`
	EditorID  *int32         `db:"editor_id" georm:"relation=editor,entity=Author,nullable"`
	Stars     int16          `db:"stars" georm:"defaultable"`
	Review    string         `db:"review"`
	CreatedAt time.Time      `db:"created_at" georm:"defaultable"`
	Tags      pq.StringArray `db:"tags"`
}

// Draft is not an entity.
type Draft struct {
	Body string
}
