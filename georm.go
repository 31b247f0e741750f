// Package georm holds the runtime contract implemented by generated entity
// code: the Entity and Defaultable interfaces and the error types every
// generated operation reports through.
//
// Entities are plain Go structs annotated with doc-comment directives and
// struct tags:
//
//	//georm:table books
//	//georm:many_to_many name=genres,entity=Genre,link.table=book_genres,link.from=book_id,link.to=genre_id
//	type Book struct {
//	    Ident    int32  `db:"ident" georm:"id"`
//	    Title    string `db:"title"`
//	    AuthorID int32  `db:"author_id" georm:"relation=author,entity=Author"`
//	}
//
// Running cmd/georm over the package writes book_georm.go next to it with
// FindAllBooks, FindBook, DeleteBookByID and the Create, Update,
// CreateOrUpdate, Delete, GetID, GetAuthor and GetGenres methods.
package georm

import (
	"context"

	"github.com/syssam/georm/dialect"
)

// Entity is implemented by every generated entity *T whose key type is ID.
type Entity[T any, ID any] interface {
	// GetID returns the value of the key. For composite keys this is the
	// generated <Name>ID struct.
	GetID() ID
	// Create inserts the entity and returns the stored row.
	Create(ctx context.Context, db dialect.ExecQuerier) (*T, error)
	// Update updates every non-key column of the row matching the key and
	// returns the stored row.
	Update(ctx context.Context, db dialect.ExecQuerier) (*T, error)
	// CreateOrUpdate inserts the entity, or updates it when a row with the
	// same key already exists.
	CreateOrUpdate(ctx context.Context, db dialect.ExecQuerier) (*T, error)
	// Delete removes the row matching the key and reports the number of
	// rows removed.
	Delete(ctx context.Context, db dialect.ExecQuerier) (int64, error)
}

// Defaultable is implemented by the generated <Name>Default companion of an
// entity with database-defaultable fields.
type Defaultable[T any] interface {
	// Create inserts a row, leaving unset defaultable columns to their
	// database defaults, and returns the stored entity.
	Create(ctx context.Context, db dialect.ExecQuerier) (*T, error)
}

// FindFunc looks up an entity by key. A nil entity with a nil error means
// no row matched.
type FindFunc[T any, ID any] func(ctx context.Context, db dialect.ExecQuerier, id ID) (*T, error)

// CheckThenAct implements CreateOrUpdate for backends without native upsert
// support: it looks the entity up by key, then updates it if found or
// creates it otherwise. The lookup and the write are separate statements,
// so concurrent writers can interleave between them; run it inside a
// transaction when that matters.
func CheckThenAct[T any, ID any](ctx context.Context, db dialect.ExecQuerier, e Entity[T, ID], find FindFunc[T, ID]) (*T, error) {
	found, err := find(ctx, db, e.GetID())
	if err != nil {
		return nil, err
	}
	if found != nil {
		return e.Update(ctx, db)
	}
	return e.Create(ctx, db)
}
