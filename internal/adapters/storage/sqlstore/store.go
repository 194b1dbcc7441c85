// Package sqlstore implements [ports.DealStore] on database/sql, with SQLite
// (mattn/go-sqlite3) for single-node deployments and PostgreSQL (pgx) for
// shared ones. The schema is embedded and migrated on Open.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// Compile-time interface check.
var _ ports.DealStore = (*Store)(nil)

// querier is the subset of *sql.DB and *sql.Tx used by the read helpers.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is a SQL-backed deal store.
type Store struct {
	db      *sql.DB
	dialect dialect
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for createdAt and updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// DefaultSQLitePath is where the database lives when database.path is empty.
func DefaultSQLitePath() string {
	return filepath.Join(xdg.DataHome, "deal-pipeline", "pipeline.db")
}

// Open connects to the configured engine, verifies the connection, and
// applies pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts ...Option) (*Store, error) {
	var (
		db  *sql.DB
		d   dialect
		err error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		d = sqliteDialect
		db, err = openSQLite(cfg)
	case config.DriverPostgres:
		d = postgresDialect
		db, err = openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := applyMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	s := &Store{
		db:      db,
		dialect: d,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func openSQLite(cfg config.DatabaseConfig) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultSQLitePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	// IMMEDIATE transactions take the write lock at BEGIN, so every write
	// transaction is serialized against the others from its first read.
	dsn := "file:" + path + "?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate&_foreign_keys=on"
	db, err := sql.Open(sqliteDialect.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// A single connection avoids "database is locked" between pooled conns.
	db.SetMaxOpenConns(1)
	return db, nil
}

func openPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(postgresDialect.driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return db, nil
}

// Driver returns the configured engine name.
func (s *Store) Driver() string {
	return s.dialect.name
}

// Get implements ports.DealStore.
func (s *Store) Get(ctx context.Context, id string) (*deal.Deal, error) {
	return getDeal(ctx, s.db, s.dialect, id)
}

// List implements ports.DealStore. Stage and priority narrow the query; the
// free-text needle is matched in Go so that case folding is identical on
// every engine.
func (s *Store) List(ctx context.Context, filter deal.Filter) ([]deal.Deal, error) {
	var (
		where []string
		args  []any
	)
	if filter.Stage != nil {
		where = append(where, "stage = ?")
		args = append(args, string(*filter.Stage))
	}
	if filter.Priority != nil {
		where = append(where, "priority = ?")
		args = append(args, string(*filter.Priority))
	}

	query := "SELECT " + dealColumns + " FROM deals"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
	if err != nil {
		return nil, classify("list deals", err)
	}
	deals, err := scanDeals(rows)
	if err != nil {
		return nil, classify("list deals", err)
	}

	return filter.Apply(deals), nil
}

// Transact implements ports.DealStore.
func (s *Store) Transact(ctx context.Context, fn func(tx ports.DealTx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = sqlTx.Rollback()
		}
	}()

	if err := fn(&tx{tx: sqlTx, store: s}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return classify("commit tx", err)
	}
	committed = true
	return nil
}

// Ping implements ports.DealStore with a round trip query.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return classify("ping", err)
	}
	return nil
}

// Close implements ports.DealStore.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) stamp() time.Time {
	// Postgres keeps microseconds; truncating up front makes the values
	// handed back from Insert identical to what a later read returns.
	return s.now().UTC().Truncate(time.Microsecond)
}

func getDeal(ctx context.Context, q querier, d dialect, id string) (*deal.Deal, error) {
	row := q.QueryRowContext(ctx, d.rebind("SELECT "+dealColumns+" FROM deals WHERE id = ?"), id)
	found, err := scanDeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deal %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, classify("get deal", err)
	}
	return found, nil
}

// classify wraps a driver error in the matching domain sentinel.
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s: %w", domain.ErrConflict, op, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch {
		case liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey,
			liteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
			liteErr.Code == sqlite3.ErrBusy,
			liteErr.Code == sqlite3.ErrLocked:
			return fmt.Errorf("%w: %s: %w", domain.ErrConflict, op, err)
		}
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}
