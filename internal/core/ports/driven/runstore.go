package driven

import (
	"context"

	"github.com/custodia-labs/lexfreq-cli/internal/core/domain"
)

// RunStore persists run reports for later inspection.
type RunStore interface {
	// Save stores a completed run report.
	Save(ctx context.Context, report *domain.RunReport) error

	// List returns the most recent runs, newest first. limit <= 0
	// returns all runs.
	List(ctx context.Context, limit int) ([]domain.RunReport, error)

	// Get retrieves a run by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.RunReport, error)

	// Close releases the underlying storage.
	Close() error
}
