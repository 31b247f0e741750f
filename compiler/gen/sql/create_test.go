package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenCreate(t *testing.T) {
	got := lines(renderEntity(t, newTestGenerator(t), "Book"))
	assert.Contains(t, got, "func (b *Book) Create(ctx context.Context, db sql.ExecQuerier) (*Book, error) {")
	assert.Contains(t, got, `node, err := sql.QueryOne[Book](ctx, db, "Book", "INSERT INTO books (ident, title, author_id, editor_id) VALUES ($1, $2, $3, $4) RETURNING *", b.Ident, b.Title, b.AuthorID, b.EditorID)`)
	assert.Contains(t, got, `return nil, georm.NewMutationError("Book", "create", err)`)
}

func TestGenDefault(t *testing.T) {
	code := renderEntity(t, newTestGenerator(t), "Review")
	got := lines(code)

	assert.Contains(t, got, "type ReviewDefault struct {")
	assert.Regexp(t, `ID\s+\*uuid\.UUID\s+`+"`db:\"id\"`", code)
	assert.Regexp(t, `BookID\s+int32\s+`+"`db:\"book_id\"`", code)
	assert.Regexp(t, `Stars\s+\*int16\s+`+"`db:\"stars\"`", code)
	assert.Contains(t, got, "var _ georm.Defaultable[Review] = (*ReviewDefault)(nil)")

	for _, want := range []string{
		"func (rd *ReviewDefault) Create(ctx context.Context, db sql.ExecQuerier) (*Review, error) {",
		"insert := sql.Insert(ReviewTable)",
		"if rd.ID != nil {",
		`insert.Set("id", *rd.ID)`,
		`insert.Set("book_id", rd.BookID)`,
		"if rd.Stars != nil {",
		`insert.Set("stars", *rd.Stars)`,
		`insert.Set("body", rd.Body)`,
		"query, args := insert.Query()",
		`node, err := sql.QueryOne[Review](ctx, db, "Review", query, args...)`,
		`return nil, georm.NewMutationError("Review", "create", err)`,
	} {
		assert.Contains(t, got, want)
	}
}

func TestGenDefault_NoDefaultableFields(t *testing.T) {
	code := renderEntity(t, newTestGenerator(t), "Book")
	assert.NotContains(t, code, "BookDefault")
	assert.NotContains(t, code, "Defaultable")
}
