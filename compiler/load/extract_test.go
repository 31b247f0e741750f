package load

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	src := `package models

import (
	"database/sql"
	pgtype "github.com/jackc/pgx/v5/pgtype"
)

//georm:table users
type User struct {
	ID, Shard int64 ` + "`georm:\"id\"`" + `
	Email    string
	Nick     sql.NullString
	Balance  pgtype.Numeric
	Checksum [16]byte
	_        int
	internal bool
}

type (
	//georm:table posts
	Post struct {
		ID int ` + "`georm:\"id\"`" + `
	}
	Other struct{ ID int }
)
`
	schemas, err := ParseSource("models.go", src)
	require.NoError(t, err)
	require.Len(t, schemas, 2)

	user := schemas[0]
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, "users", user.Table)
	assert.Equal(t, "models", user.PkgPath)
	require.Len(t, user.Fields, 7)
	assert.Equal(t, []string{"ID", "Shard"}, []string{user.IDs()[0].Name, user.IDs()[1].Name})
	assert.Equal(t, "database/sql.NullString", user.Fields[3].Type.String())
	assert.Equal(t, "github.com/jackc/pgx/v5/pgtype.Numeric", user.Fields[4].Type.String())
	assert.Equal(t, "[16]byte", user.Fields[5].Type.String())
	assert.Equal(t, "internal", user.Fields[6].Name)
	assert.Contains(t, user.Fields[0].Pos, "models.go:10:")

	assert.Equal(t, "Post", schemas[1].Name)
	assert.Equal(t, "posts", schemas[1].Table)
}

func TestParseSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "MissingTable",
			src: `//georm:one_to_many name=posts,entity=Post,remote_id=user_id
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: "missing georm:table directive",
		},
		{
			name: "DuplicateTable",
			src: `//georm:table users
//georm:table people
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: "duplicate georm:table directive",
		},
		{
			name: "TableArity",
			src: `//georm:table users people
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: "expects exactly one table name",
		},
		{
			name: "UnknownDirective",
			src: `//georm:table users
//georm:index email
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: "unknown directive georm:index",
		},
		{
			name: "TagsWithoutTable",
			src:  "type User struct{ ID int `georm:\"id\"` }",
			want: "georm struct tags without a georm:table directive",
		},
		{
			name: "NoID",
			src: `//georm:table users
type User struct{ ID int }`,
			want: `no field is marked georm:"id"`,
		},
		{
			name: "UnknownFieldOption",
			src: `//georm:table users
type User struct{ ID int ` + "`georm:\"id,primary\"`" + ` }`,
			want: `unknown option "primary"`,
		},
		{
			name: "DuplicateFieldOption",
			src: `//georm:table users
type User struct{ ID int ` + "`georm:\"id,id\"`" + ` }`,
			want: `duplicate option "id"`,
		},
		{
			name: "SecondRelation",
			src: `//georm:table users
type User struct {
	ID int ` + "`georm:\"id\"`" + `
	TeamID int ` + "`georm:\"relation=team,entity=Team,relation=squad\"`" + `
}`,
			want: `duplicate option "relation"`,
		},
		{
			name: "RelationOptionWithoutRelation",
			src: `//georm:table users
type User struct {
	ID int ` + "`georm:\"id\"`" + `
	TeamID *int ` + "`georm:\"nullable\"`" + `
}`,
			want: `option "nullable" requires relation=<name>`,
		},
		{
			name: "RelationWithoutEntity",
			src: `//georm:table users
type User struct {
	ID int ` + "`georm:\"id\"`" + `
	TeamID int ` + "`georm:\"relation=team\"`" + `
}`,
			want: `missing required option "entity"`,
		},
		{
			name: "DefaultablePointer",
			src: `//georm:table users
type User struct{ ID *int ` + "`georm:\"id,defaultable\"`" + ` }`,
			want: "defaultable field must not have an optional type, got *int",
		},
		{
			name: "DefaultableNull",
			src: `//georm:table users
type User struct {
	ID int ` + "`georm:\"id\"`" + `
	Nick sql.NullString ` + "`georm:\"defaultable\"`" + `
}`,
			want: "defaultable field must not have an optional type",
		},
		{
			name: "OneToManyMissingRemoteID",
			src: `//georm:table users
//georm:one_to_many name=posts,entity=Post
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: `georm:one_to_many: missing required option "remote_id"`,
		},
		{
			name: "ManyToManyMissingLink",
			src: `//georm:table users
//georm:many_to_many name=groups,entity=Group,link.table=memberships,link.from=user_id
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: `missing required option "link.to"`,
		},
		{
			name: "DuplicateRelation",
			src: `//georm:table users
//georm:one_to_many name=posts,entity=Post,remote_id=user_id
//georm:one_to_many name=posts,entity=Post,remote_id=editor_id
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: `duplicate relation "posts"`,
		},
		{
			name: "InvalidTable",
			src: `//georm:table users;drop
type User struct{ ID int ` + "`georm:\"id\"`" + ` }`,
			want: "invalid SQL identifier",
		},
		{
			name: "UnsupportedType",
			src: `//georm:table users
type User struct {
	ID int ` + "`georm:\"id\"`" + `
	Events chan int
}`,
			want: "unsupported field type chan int",
		},
		{
			name: "Embedded",
			src: `//georm:table users
type User struct {
	Base ` + "`georm:\"id\"`" + `
}`,
			want: "embedded fields are not supported",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package models\n\nimport \"database/sql\"\n\nvar _ sql.NullString\n\n" + tt.src + "\n"
			_, err := ParseSource("models.go", src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.True(t, IsDeclError(err))
			assert.True(t, errors.Is(err, ErrInvalidDecl))
		})
	}
}

func TestParseSourceFieldTypes(t *testing.T) {
	src := `package models

import "database/sql"

//georm:table things
type Thing struct {
	ID    int64             ` + "`georm:\"id\"`" + `
	Meta  map[string]string ` + "`db:\"meta\"`" + `
	Score sql.Null[int64]   ` + "`db:\"score\"`" + `
}
`
	schemas, err := ParseSource("models.go", src)
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	fields := schemas[0].Fields
	assert.Equal(t, "map[string]string", fields[1].Type.String())
	assert.Equal(t, &TypeInfo{
		Kind:    KindNamed,
		Name:    "Null",
		PkgPath: "database/sql",
		Args:    []*TypeInfo{{Kind: KindBasic, Name: "int64"}},
	}, fields[2].Type)

	_, err = ParseSource("models.go", `package models

import "database/sql"

//georm:table things
type Thing struct {
	ID    int64           `+"`"+`georm:"id"`+"`"+`
	Score sql.Null[int64] `+"`"+`georm:"defaultable"`+"`"+`
}
`)
	assert.ErrorContains(t, err, "defaultable field must not have an optional type, got database/sql.Null[int64]")
}

func TestParseSourceCollectsErrors(t *testing.T) {
	src := `package models

//georm:table users
type User struct{ ID int }

//georm:table posts
type Post struct{ ID int ` + "`georm:\"id\"`" + ` }

//georm:table tags
type Tag struct{ Name string }
`
	schemas, err := ParseSource("models.go", src)
	require.Error(t, err)
	require.Len(t, schemas, 1)
	assert.Equal(t, "Post", schemas[0].Name)
	assert.Contains(t, err.Error(), "User")
	assert.Contains(t, err.Error(), "Tag")
}

func TestParseSourceSkipsGenerated(t *testing.T) {
	src := "package models\n\n//georm:table users\ntype User struct{ ID int }\n"
	schemas, err := ParseSource("user"+GeneratedSuffix, src)
	require.NoError(t, err)
	assert.Empty(t, schemas)
}

func TestDeclError(t *testing.T) {
	err := &DeclError{Pos: "models.go:3:1", Entity: "Book", Field: "Title", Msg: "boom"}
	assert.Equal(t, "load: models.go:3:1: Book.Title: boom", err.Error())
	err = &DeclError{Entity: "Book", Msg: "boom"}
	assert.Equal(t, "load: Book: boom", err.Error())
	assert.ErrorIs(t, err, ErrInvalidDecl)
	assert.False(t, IsDeclError(errors.New("boom")))
}
