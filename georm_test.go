package georm_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/georm"
	"github.com/syssam/georm/dialect"
)

// note is a hand-written entity recording which operations ran.
type note struct {
	ID   int
	Body string
	ops  *[]string
}

func (n *note) GetID() int { return n.ID }

func (n *note) Create(context.Context, dialect.ExecQuerier) (*note, error) {
	*n.ops = append(*n.ops, "create")
	return n, nil
}

func (n *note) Update(context.Context, dialect.ExecQuerier) (*note, error) {
	*n.ops = append(*n.ops, "update")
	return n, nil
}

func (n *note) CreateOrUpdate(ctx context.Context, db dialect.ExecQuerier) (*note, error) {
	return georm.CheckThenAct(ctx, db, n, findNote)
}

func (n *note) Delete(context.Context, dialect.ExecQuerier) (int64, error) { return 1, nil }

var _ georm.Entity[note, int] = (*note)(nil)

var stored = map[int]*note{}

func findNote(_ context.Context, _ dialect.ExecQuerier, id int) (*note, error) {
	if id < 0 {
		return nil, errors.New("lookup failed")
	}
	return stored[id], nil
}

func TestCheckThenAct(t *testing.T) {
	var db *sql.DB // never dereferenced by the fake operations
	ctx := context.Background()
	stored = map[int]*note{1: {ID: 1, Body: "existing"}}

	t.Run("Create", func(t *testing.T) {
		var ops []string
		n := &note{ID: 2, Body: "new", ops: &ops}
		got, err := n.CreateOrUpdate(ctx, db)
		require.NoError(t, err)
		assert.Same(t, n, got)
		assert.Equal(t, []string{"create"}, ops)
	})

	t.Run("Update", func(t *testing.T) {
		var ops []string
		n := &note{ID: 1, Body: "changed", ops: &ops}
		_, err := n.CreateOrUpdate(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, []string{"update"}, ops)
	})

	t.Run("LookupError", func(t *testing.T) {
		var ops []string
		n := &note{ID: -1, ops: &ops}
		_, err := n.CreateOrUpdate(ctx, db)
		require.EqualError(t, err, "lookup failed")
		assert.Empty(t, ops)
	})
}
