package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
	"github.com/custodia-labs/lexfreq-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	input_dir   TEXT NOT NULL,
	output_dir  TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	processed   TEXT NOT NULL,
	skipped     TEXT NOT NULL,
	artifacts   INTEGER NOT NULL,
	bigrams     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// RunStore is a SQLite-backed implementation of driven.RunStore.
type RunStore struct {
	db   *sql.DB
	path string
}

// NewRunStore creates a run store at the specified data directory.
// If dataDir is empty, defaults to ~/.lexfreq/data/runs.db.
func NewRunStore(dataDir string) (*RunStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lexfreq", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runs.db")

	// WAL mode so a concurrent `lexfreq runs` never blocks a run.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &RunStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *RunStore) Path() string {
	return s.path
}

// Save stores a completed run report.
func (s *RunStore) Save(ctx context.Context, report *domain.RunReport) error {
	if report == nil || report.ID == "" {
		return domain.ErrInvalidInput
	}

	processed, err := json.Marshal(report.Processed)
	if err != nil {
		return fmt.Errorf("encoding processed files: %w", err)
	}
	skipped, err := json.Marshal(report.Skipped)
	if err != nil {
		return fmt.Errorf("encoding skipped files: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs
			(id, input_dir, output_dir, started_at, finished_at, processed, skipped, artifacts, bigrams)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		report.InputDir,
		report.OutputDir,
		report.StartedAt.UTC().Format(time.RFC3339Nano),
		report.FinishedAt.UTC().Format(time.RFC3339Nano),
		string(processed),
		string(skipped),
		report.Artifacts,
		boolToInt(report.Bigrams),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *RunStore) List(ctx context.Context, limit int) ([]domain.RunReport, error) {
	query := `
		SELECT id, input_dir, output_dir, started_at, finished_at, processed, skipped, artifacts, bigrams
		FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var reports []domain.RunReport
	for rows.Next() {
		report, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return reports, nil
}

// Get retrieves a run by ID.
func (s *RunStore) Get(ctx context.Context, id string) (*domain.RunReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, input_dir, output_dir, started_at, finished_at, processed, skipped, artifacts, bigrams
		FROM runs WHERE id = ?`, id)

	report, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.RunReport, error) {
	var report domain.RunReport
	var startedAt, finished, processed, skipped string
	var bigrams int
	err := row.Scan(
		&report.ID,
		&report.InputDir,
		&report.OutputDir,
		&startedAt,
		&finished,
		&processed,
		&skipped,
		&report.Artifacts,
		&bigrams,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if report.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if report.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}
	if err := json.Unmarshal([]byte(processed), &report.Processed); err != nil {
		return nil, fmt.Errorf("decoding processed files: %w", err)
	}
	if err := json.Unmarshal([]byte(skipped), &report.Skipped); err != nil {
		return nil, fmt.Errorf("decoding skipped files: %w", err)
	}
	report.Bigrams = bigrams != 0

	return &report, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
