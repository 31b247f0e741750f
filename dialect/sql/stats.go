package sql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// QueryStats holds query execution statistics.
type QueryStats struct {
	// TotalQueries is the total number of queries executed.
	TotalQueries atomic.Int64
	// TotalExecs is the total number of exec statements executed.
	TotalExecs atomic.Int64
	// TotalDuration is the total time spent executing queries.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowQueries is the count of queries exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the count of query errors.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// Reset resets all statistics to zero.
func (s *QueryStats) Reset() {
	s.TotalQueries.Store(0)
	s.TotalExecs.Store(0)
	s.TotalDuration.Store(0)
	s.SlowQueries.Store(0)
	s.Errors.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of query statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// AvgQueryDuration returns the average query duration.
func (s StatsSnapshot) AvgQueryDuration() time.Duration {
	total := s.TotalQueries + s.TotalExecs
	if total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(total)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"queries=%d execs=%d duration=%s avg=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.AvgQueryDuration(),
		s.SlowQueries, s.Errors,
	)
}

// SlowQueryHook is a function called when a slow statement is detected.
type SlowQueryHook func(ctx context.Context, query string, args []any, duration time.Duration)

// StatsDB wraps an ExecQuerier with statement statistics collection.
// It satisfies ExecQuerier itself, so generated operations accept it
// wherever they accept a *sql.DB.
type StatsDB struct {
	ExecQuerier
	stats         *QueryStats
	slowThreshold time.Duration
	slowHook      SlowQueryHook
	mu            *sync.RWMutex
}

// StatsOption configures the StatsDB.
type StatsOption func(*StatsDB)

// WithSlowThreshold sets the threshold for slow statement detection.
// Statements taking longer than this duration are counted as slow.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDB) {
		s.slowThreshold = d
	}
}

// WithSlowQueryHook sets a callback function for slow statements.
func WithSlowQueryHook(hook SlowQueryHook) StatsOption {
	return func(s *StatsDB) {
		s.slowHook = hook
	}
}

// WithSlowQueryLog logs slow statements to the given logger, or to the
// default logger when l is nil.
func WithSlowQueryLog(l ...*slog.Logger) StatsOption {
	logger := slog.Default()
	if len(l) > 0 && l[0] != nil {
		logger = l[0]
	}
	return WithSlowQueryHook(func(ctx context.Context, query string, args []any, duration time.Duration) {
		logger.WarnContext(ctx, "slow query detected", "duration", duration, "query", query, "args", args)
	})
}

// NewStatsDB wraps db with statistics collection.
//
// Example:
//
//	db, _ := sql.Open("postgres", dsn)
//	stats := sql.NewStatsDB(db,
//	    sql.WithSlowThreshold(200*time.Millisecond),
//	    sql.WithSlowQueryLog(),
//	)
//	books, err := models.FindAllBooks(ctx, stats)
//
//	// Later, check statistics:
//	fmt.Println(stats.QueryStats().Stats())
func NewStatsDB(db ExecQuerier, opts ...StatsOption) *StatsDB {
	s := &StatsDB{
		ExecQuerier:   db,
		stats:         &QueryStats{},
		slowThreshold: 100 * time.Millisecond,
		mu:            &sync.RWMutex{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// On returns a StatsDB running statements on ex, typically a *sql.Tx, and
// recording them into the same statistics.
func (d *StatsDB) On(ex ExecQuerier) *StatsDB {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return &StatsDB{
		ExecQuerier:   ex,
		stats:         d.stats,
		slowThreshold: d.slowThreshold,
		slowHook:      d.slowHook,
		mu:            d.mu,
	}
}

// QueryStats returns the underlying QueryStats for reading statistics.
func (d *StatsDB) QueryStats() *QueryStats {
	return d.stats
}

// SlowThreshold returns the current slow statement threshold.
func (d *StatsDB) SlowThreshold() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.slowThreshold
}

// SetSlowThreshold updates the slow statement threshold.
func (d *StatsDB) SetSlowThreshold(threshold time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slowThreshold = threshold
}

// QueryContext executes a query and records statistics.
func (d *StatsDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.ExecQuerier.QueryContext(ctx, query, args...)
	d.record(ctx, query, args, start, err, true)
	return rows, err
}

// ExecContext executes a statement and records statistics.
func (d *StatsDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.ExecQuerier.ExecContext(ctx, query, args...)
	d.record(ctx, query, args, start, err, false)
	return res, err
}

func (d *StatsDB) record(ctx context.Context, query string, args []any, start time.Time, err error, isQuery bool) {
	duration := time.Since(start)
	if isQuery {
		d.stats.TotalQueries.Add(1)
	} else {
		d.stats.TotalExecs.Add(1)
	}
	d.stats.TotalDuration.Add(int64(duration))

	if err != nil {
		d.stats.Errors.Add(1)
	}

	d.mu.RLock()
	threshold := d.slowThreshold
	hook := d.slowHook
	d.mu.RUnlock()

	if duration > threshold {
		d.stats.SlowQueries.Add(1)
		if hook != nil {
			hook(ctx, query, args, duration)
		}
	}
}

// DebugDB wraps an ExecQuerier and logs every statement at debug level.
type DebugDB struct {
	ExecQuerier
	logger *slog.Logger
}

// NewDebugDB wraps db with statement logging. A nil logger uses the
// default logger.
func NewDebugDB(db ExecQuerier, logger *slog.Logger) *DebugDB {
	if logger == nil {
		logger = slog.Default()
	}
	return &DebugDB{ExecQuerier: db, logger: logger}
}

// QueryContext logs and executes a query.
func (d *DebugDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	d.logger.DebugContext(ctx, "query", "query", query, "args", args)
	return d.ExecQuerier.QueryContext(ctx, query, args...)
}

// ExecContext logs and executes a statement.
func (d *DebugDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	d.logger.DebugContext(ctx, "exec", "query", query, "args", args)
	return d.ExecQuerier.ExecContext(ctx, query, args...)
}

// Ensure interfaces are implemented.
var (
	_ ExecQuerier = (*StatsDB)(nil)
	_ ExecQuerier = (*DebugDB)(nil)
)

// OpenWithStats opens a database connection with statistics collection enabled.
func OpenWithStats(driverName, source string, opts ...StatsOption) (*StatsDB, *sql.DB, error) {
	db, err := Open(driverName, source)
	if err != nil {
		return nil, nil, err
	}
	return NewStatsDB(db, opts...), db, nil
}
