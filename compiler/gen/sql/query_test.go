package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenFind(t *testing.T) {
	tests := []struct {
		entity string
		want   []string
	}{
		{
			entity: "Book",
			want: []string{
				"// FindAllBooks returns every row of BookTable.",
				"func FindAllBooks(ctx context.Context, db sql.ExecQuerier) ([]*Book, error) {",
				`nodes, err := sql.QueryAll[Book](ctx, db, "SELECT * FROM books")`,
				`return nil, georm.NewQueryError("Book", "find_all", err)`,
				"return nodes, nil",
				"func FindBook(ctx context.Context, db sql.ExecQuerier, id int32) (*Book, error) {",
				`node, err := sql.QueryOptional[Book](ctx, db, "Book", "SELECT * FROM books WHERE ident = $1", id)`,
				`return nil, georm.NewQueryError("Book", "find", err)`,
				"return node, nil",
			},
		},
		{
			entity: "BookGenre",
			want: []string{
				"func FindAllBookGenres(ctx context.Context, db sql.ExecQuerier) ([]*BookGenre, error) {",
				"func FindBookGenre(ctx context.Context, db sql.ExecQuerier, id BookGenreID) (*BookGenre, error) {",
				`node, err := sql.QueryOptional[BookGenre](ctx, db, "BookGenre", "SELECT * FROM book_genres WHERE book_id = $1 AND genre_id = $2", id.BookID, id.GenreID)`,
			},
		},
		{
			entity: "Review",
			want: []string{
				"func FindReview(ctx context.Context, db sql.ExecQuerier, id uuid.UUID) (*Review, error) {",
			},
		},
	}
	h := newTestGenerator(t)
	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			got := lines(renderEntity(t, h, tt.entity))
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}
