// Package manifest records every exported game in a SQLite database so later
// tooling can query what was split, for whom, and with what outcome.
package manifest

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/smitusov/pgnsplit/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Export is one row of the manifest: a single game written to disk.
type Export struct {
	ID          int64
	Seq         int
	Filename    string
	White       string
	Black       string
	PlayedAs    string // "white", "black" or "" when no alias matched
	Opponent    string
	Date        string
	Result      string
	ECO         string
	OpeningName string
	Plies       int
	CreatedAt   time.Time
}

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	Opponent string
	PlayedAs string
	Result   string
}

// Store wraps the manifest database.
type Store struct {
	*sql.DB
	log *logger.Logger
}

// Open opens (creating if needed) the manifest database at path and applies
// pending migrations.
func Open(path string) (*Store, error) {
	log := logger.Default().WithPrefix("manifest")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Debug("opening manifest database: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open manifest database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // SQLite best practice for single writer

	s := &Store{DB: sqlDB, log: log}
	if err := s.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		sqlDB.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	if _, err := s.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`); err != nil {
		return err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}

	for _, entry := range entries {
		version := entry.Name()
		applied, err := s.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			s.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return err
		}
		s.log.Debug("applying migration: %s", version)
		if _, err := s.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", version, err)
		}
		if _, err := s.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var v string
	err := s.QueryRowContext(ctx, `SELECT version FROM schema_migrations WHERE version = ?`, version).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// InsertExports writes all rows within a single transaction. Rows from an
// earlier run of the same input are replaced by seq, keeping re-runs
// idempotent.
func (s *Store) InsertExports(ctx context.Context, exports []Export) error {
	log := logger.FromContext(ctx).WithPrefix("manifest")
	if len(exports) == 0 {
		return nil
	}
	log.Debug("inserting %d export rows", len(exports))

	return tx(ctx, s, func(t *sql.Tx) error {
		stmt, err := t.PrepareContext(ctx, `
INSERT INTO exports (
    seq, filename, white, black, played_as, opponent, date, result, eco, opening_name, plies
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		if _, err := t.ExecContext(ctx, `DELETE FROM exports`); err != nil {
			return err
		}
		for _, e := range exports {
			_, err := stmt.ExecContext(ctx, e.Seq, e.Filename, e.White, e.Black, e.PlayedAs, e.Opponent, e.Date, e.Result, e.ECO, e.OpeningName, e.Plies)
			if err != nil {
				return fmt.Errorf("insert export seq=%d: %w", e.Seq, err)
			}
		}
		return nil
	})
}

// List returns exports matching the filter, ordered by sequence number.
func (s *Store) List(ctx context.Context, filter Filter) ([]Export, error) {
	log := logger.FromContext(ctx).WithPrefix("manifest")

	query := sqlBuilder.Select(
		"id", "seq", "filename", "white", "black", "played_as",
		"opponent", "date", "result", "eco", "opening_name", "plies", "created_at",
	).From("exports")

	if filter.Opponent != "" {
		query = query.Where(squirrel.Eq{"opponent": filter.Opponent})
	}
	if filter.PlayedAs != "" {
		query = query.Where(squirrel.Eq{"played_as": filter.PlayedAs})
	}
	if filter.Result != "" {
		query = query.Where(squirrel.Eq{"result": filter.Result})
	}
	query = query.OrderBy("seq ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list exports: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []Export
	for rows.Next() {
		var e Export
		if err := rows.Scan(&e.ID, &e.Seq, &e.Filename, &e.White, &e.Black, &e.PlayedAs, &e.Opponent, &e.Date, &e.Result, &e.ECO, &e.OpeningName, &e.Plies, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of manifest rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM exports`).Scan(&n)
	return n, err
}

func tx(ctx context.Context, s *Store, fn func(*sql.Tx) error) error {
	t, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		_ = t.Rollback()
		return err
	}
	return t.Commit()
}
