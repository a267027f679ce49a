// Package history stores install attempts in a SQLite database.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed schema.sql
var schemaSQL string

// timeLayout has a fixed width so that started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store implements ports.InstallHistory. The database is opened on first use.
type Store struct {
	path string

	once    sync.Once
	db      *sql.DB
	openErr error
}

// NewStore creates a Store backed by the database at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// DefaultPath returns the history database location under the XDG state directory.
func DefaultPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "formula", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "formula", "history.db")
	}
	return filepath.Join(home, ".local", "state", "formula", "history.db")
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*sql.DB, error) {
	s.once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
			s.openErr = zerr.With(errors.Join(domain.ErrHistoryOpenFailed, err), "path", s.path)
			return
		}

		db, err := sql.Open("sqlite3", s.path)
		if err != nil {
			s.openErr = zerr.With(errors.Join(domain.ErrHistoryOpenFailed, err), "path", s.path)
			return
		}
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)

		for _, stmt := range []string{"PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 5000", schemaSQL} {
			if _, err := db.Exec(stmt); err != nil {
				_ = db.Close()
				s.openErr = zerr.With(errors.Join(domain.ErrHistoryOpenFailed, err), "path", s.path)
				return
			}
		}
		s.db = db
	})
	return s.db, s.openErr
}

// Append stores a record.
func (s *Store) Append(ctx context.Context, rec domain.InstallRecord) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO installs
		(id, formula, mode, version, prefix, command, digest, outcome, exit_code, error, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Formula,
		string(rec.Mode),
		rec.Version,
		rec.Prefix,
		rec.Command,
		rec.Digest,
		string(rec.Outcome),
		int(rec.ExitCode),
		rec.Error,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrHistoryWriteFailed, err), "id", rec.ID)
	}
	return nil
}

// Recent returns up to limit records, newest first. A non-positive limit returns all records.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.InstallRecord, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, formula, mode, version, prefix, command, digest, outcome, exit_code, error, started_at, duration_ms
		FROM installs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Join(domain.ErrHistoryReadFailed, err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.InstallRecord
	for rows.Next() {
		var (
			rec       domain.InstallRecord
			mode      string
			outcome   string
			exitCode  int
			startedAt string
			duration  int64
		)
		if err := rows.Scan(
			&rec.ID, &rec.Formula, &mode, &rec.Version, &rec.Prefix, &rec.Command,
			&rec.Digest, &outcome, &exitCode, &rec.Error, &startedAt, &duration,
		); err != nil {
			return nil, errors.Join(domain.ErrHistoryReadFailed, err)
		}

		rec.Mode = domain.Mode(mode)
		rec.Outcome = domain.InstallOutcome(outcome)
		rec.ExitCode = domain.ExitStatus(exitCode)
		rec.Duration = time.Duration(duration) * time.Millisecond
		if rec.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrHistoryReadFailed, err), "id", rec.ID)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(domain.ErrHistoryReadFailed, err)
	}
	return records, nil
}

// Close closes the database if it was opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
