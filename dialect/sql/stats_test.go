package sql

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsDB(t *testing.T) {
	db, mock := newMock(t)
	var slow []string
	stats := NewStatsDB(db,
		WithSlowThreshold(0),
		WithSlowQueryHook(func(_ context.Context, query string, _ []any, _ time.Duration) {
			slow = append(slow, query)
		}),
	)

	mock.ExpectQuery("SELECT * FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nick"}))
	mock.ExpectExec("DELETE FROM accounts WHERE id = $1").WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM accounts WHERE id = $1").WithArgs(2).
		WillReturnError(errors.New("boom"))

	ctx := context.Background()
	_, err := QueryAll[account](ctx, stats, "SELECT * FROM accounts")
	require.NoError(t, err)
	_, err = Exec(ctx, stats, "DELETE FROM accounts WHERE id = $1", 1)
	require.NoError(t, err)
	_, err = Exec(ctx, stats, "DELETE FROM accounts WHERE id = $1", 2)
	require.Error(t, err)

	s := stats.QueryStats().Stats()
	assert.Equal(t, int64(1), s.TotalQueries)
	assert.Equal(t, int64(2), s.TotalExecs)
	assert.Equal(t, int64(1), s.Errors)
	assert.Equal(t, int64(3), s.SlowQueries)
	assert.Len(t, slow, 3)
	assert.Contains(t, s.String(), "queries=1 execs=2")
	require.NoError(t, mock.ExpectationsWereMet())

	stats.QueryStats().Reset()
	assert.Zero(t, stats.QueryStats().Stats().TotalQueries)
	assert.Zero(t, stats.QueryStats().Stats().AvgQueryDuration())
}

func TestStatsDBThreshold(t *testing.T) {
	db, _ := newMock(t)
	stats := NewStatsDB(db)
	assert.Equal(t, 100*time.Millisecond, stats.SlowThreshold())
	stats.SetSlowThreshold(time.Second)
	assert.Equal(t, time.Second, stats.SlowThreshold())
	assert.Equal(t, time.Second, stats.On(db).SlowThreshold())
}

func TestStatsDBOnSharesStats(t *testing.T) {
	db, mock := newMock(t)
	stats := NewStatsDB(db)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	n, err := Exec(context.Background(), stats.On(tx), "DELETE FROM accounts")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, tx.Commit())
	assert.Equal(t, int64(1), stats.QueryStats().Stats().TotalExecs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlowQueryLog(t *testing.T) {
	db, mock := newMock(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	stats := NewStatsDB(db, WithSlowThreshold(0), WithSlowQueryLog(logger))
	mock.ExpectExec("DELETE FROM accounts").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := Exec(context.Background(), stats, "DELETE FROM accounts")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "slow query detected")
	assert.Contains(t, buf.String(), "DELETE FROM accounts")
}

func TestDebugDB(t *testing.T) {
	db, mock := newMock(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	debug := NewDebugDB(db, logger)
	mock.ExpectQuery("SELECT * FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nick"}))

	_, err := QueryAll[account](context.Background(), debug, "SELECT * FROM accounts")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SELECT * FROM accounts")
}
