// Package sqlite keeps farm records in a single SQLite file. Each record is
// stored as a JSON document keyed by its id.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mamadbah2/organiks/internal/domain/models"
	"github.com/mamadbah2/organiks/internal/repository"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteRepository owns the database handle shared by every table store.
type SQLiteRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteRepository opens (or creates) the database at path and applies the
// schema.
func NewSQLiteRepository(ctx context.Context, path string, logger *zap.Logger) (*SQLiteRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	logger.Info("sqlite database ready", zap.String("path", path))
	return &SQLiteRepository{db: db, logger: logger}, nil
}

// Repository returns the record stores and id allocator backed by this database.
func (r *SQLiteRepository) Repository() *repository.Repository {
	return &repository.Repository{
		Poultry: NewTableStore[models.PoultryRecord](r.db, "poultry_records"),
		Eggs:    NewTableStore[models.EggRecord](r.db, "egg_records"),
		Prices:  NewTableStore[models.EggPrice](r.db, "egg_prices"),
		Orders:  NewTableStore[models.EggOrder](r.db, "egg_orders"),
		IDs:     NewCounter(r.db, "record_id"),
	}
}

// SaveDailyReport stores the report, replacing any earlier report for the same day.
func (r *SQLiteRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	doc, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode daily report: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO daily_reports (date, doc, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET doc = excluded.doc, created_at = excluded.created_at`,
		report.Date.Format("2006-01-02"), string(doc), report.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert daily report: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// TableStore implements repository.Store over one table of JSON documents.
type TableStore[R models.Record] struct {
	db    *sql.DB
	table string
}

// NewTableStore binds a store to a table created by the schema.
func NewTableStore[R models.Record](db *sql.DB, table string) *TableStore[R] {
	return &TableStore[R]{db: db, table: table}
}

func (s *TableStore[R]) Put(ctx context.Context, r R) error {
	id, err := rowID(r.RecordID())
	if err != nil {
		return err
	}
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", s.table, err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET doc = excluded.doc`, s.table)
	if _, err := s.db.ExecContext(ctx, query, id, string(doc)); err != nil {
		return fmt.Errorf("upsert %s row: %w", s.table, err)
	}
	return nil
}

func (s *TableStore[R]) Get(ctx context.Context, id uint64) (R, bool, error) {
	var zero R
	key, err := rowID(id)
	if err != nil {
		return zero, false, nil
	}

	var doc string
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT doc FROM %s WHERE id = ?`, s.table), key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("select %s row: %w", s.table, err)
	}
	return s.decode(doc)
}

func (s *TableStore[R]) Remove(ctx context.Context, id uint64) (R, bool, error) {
	var zero R
	key, err := rowID(id)
	if err != nil {
		return zero, false, nil
	}

	var doc string
	err = s.db.QueryRowContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = ? RETURNING doc`, s.table), key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("delete %s row: %w", s.table, err)
	}
	return s.decode(doc)
}

// Scan returns every row in ascending id order.
func (s *TableStore[R]) Scan(ctx context.Context) ([]R, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY id ASC`, s.table))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []R
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("read %s row: %w", s.table, err)
		}
		r, _, err := s.decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table, err)
	}
	return out, nil
}

func (s *TableStore[R]) decode(doc string) (R, bool, error) {
	var r R
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return r, false, fmt.Errorf("decode %s row: %w", s.table, err)
	}
	return r, true, nil
}

// Counter allocates ids from a row in the counters table.
type Counter struct {
	db   *sql.DB
	name string
}

func NewCounter(db *sql.DB, name string) *Counter {
	return &Counter{db: db, name: name}
}

// NextID returns the next id. The update is skipped at the int64 maximum,
// which yields no row and reports exhaustion.
func (c *Counter) NextID(ctx context.Context) (uint64, error) {
	var seq int64
	err := c.db.QueryRowContext(ctx,
		`INSERT INTO counters (name, seq) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET seq = seq + 1 WHERE seq < 9223372036854775807
		 RETURNING seq`, c.name).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrIDSpaceExhausted
	}
	if err != nil {
		return 0, fmt.Errorf("increment %s counter: %w", c.name, err)
	}
	return uint64(seq), nil
}

// rowID maps a record id onto SQLite's signed 64-bit rowid.
func rowID(id uint64) (int64, error) {
	if id > math.MaxInt64 {
		return 0, repository.ErrIDSpaceExhausted
	}
	return int64(id), nil
}
