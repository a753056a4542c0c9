package ports

import (
	"context"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// HistoryReader reads past clone runs
type HistoryReader interface {
	// ListRuns returns runs newest first. An empty assignment lists all runs.
	ListRuns(ctx context.Context, assignment string, limit int) ([]domain.HistoryRun, error)
}

// HistoryWriter records clone runs
type HistoryWriter interface {
	AddRun(ctx context.Context, run domain.HistoryRun) error
}

// HistoryRepository is the composite interface
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
	Close() error
}
