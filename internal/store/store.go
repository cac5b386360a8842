// Package store keeps the run history of finished typing tests in an
// in-memory SQLite database that lives as long as the process.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/keytest/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// DefaultLimit bounds ListResults when the filter sets no limit.
const DefaultLimit = 100

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var resultColumns = []string{
	"id", "finished_at", "duration", "vocab", "wpm", "accuracy", "errors",
	"words_typed", "correct_chars", "total_chars", "elapsed_ms", "time_remaining", "ended_early",
}

// Store wraps SQLite access for run history.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenMemory opens a private in-memory database and applies migrations.
// Nothing is written to disk.
func OpenMemory(log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db, log: log.Named("store")}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			finished_at INTEGER NOT NULL,
			duration INTEGER NOT NULL,
			vocab TEXT NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			words_typed INTEGER NOT NULL,
			correct_chars INTEGER NOT NULL,
			total_chars INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			time_remaining INTEGER NOT NULL,
			ended_early INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results(finished_at, seq);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertResult stores a finished test. A missing ID or FinishedAt is filled
// in, and the stored record is returned.
func (s *Store) InsertResult(ctx context.Context, r model.TestResult) (model.TestResult, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	query, args, err := sqlBuilder.Insert("results").
		Columns(resultColumns...).
		Values(
			r.ID,
			r.FinishedAt.UnixNano(),
			r.Duration,
			r.Vocab,
			r.WPM,
			r.Accuracy,
			r.Errors,
			r.WordsTyped,
			r.CorrectChars,
			r.TotalChars,
			r.ElapsedMs,
			r.TimeRemaining,
			r.EndedEarly,
		).ToSql()
	if err != nil {
		return model.TestResult{}, err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Error("insert result", zap.String("id", r.ID), zap.Error(err))
		return model.TestResult{}, err
	}
	s.log.Debug("result stored", zap.String("id", r.ID), zap.Int("wpm", r.WPM), zap.Int("accuracy", r.Accuracy))
	return r, nil
}

// ListResults returns results matching filter, oldest first. When the filter
// holds a limit, the most recent results within it are returned. Results
// finished at the same instant keep insertion order.
func (s *Store) ListResults(ctx context.Context, filter model.HistoryFilter) ([]model.TestResult, error) {
	inner := sqlBuilder.Select(append([]string{"seq"}, resultColumns...)...).From("results")
	if filter.Vocab != "" {
		inner = inner.Where(squirrel.Eq{"vocab": filter.Vocab})
	}
	if filter.Duration > 0 {
		inner = inner.Where(squirrel.Eq{"duration": filter.Duration})
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	inner = inner.OrderBy("finished_at DESC", "seq DESC").Limit(uint64(limit))

	query, args, err := sqlBuilder.Select(resultColumns...).
		FromSelect(inner, "recent").
		OrderBy("finished_at ASC", "seq ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error("list results", zap.Error(err))
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []model.TestResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of stored results.
func (s *Store) Count(ctx context.Context) (int, error) {
	query, args, err := sqlBuilder.Select("COUNT(*)").From("results").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (model.TestResult, error) {
	var r model.TestResult
	var finishedAt int64
	if err := row.Scan(
		&r.ID,
		&finishedAt,
		&r.Duration,
		&r.Vocab,
		&r.WPM,
		&r.Accuracy,
		&r.Errors,
		&r.WordsTyped,
		&r.CorrectChars,
		&r.TotalChars,
		&r.ElapsedMs,
		&r.TimeRemaining,
		&r.EndedEarly,
	); err != nil {
		return model.TestResult{}, err
	}
	r.FinishedAt = time.Unix(0, finishedAt).UTC()
	return r, nil
}
