package ports

import (
	"context"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// RepoCloner clones student forks into per-assignment directories
type RepoCloner interface {
	// Clone clones the submission and returns the target directory.
	// Status is skipped when the directory exists and overwrite is off.
	Clone(ctx context.Context, req domain.CloneRequest) (string, domain.CloneStatus, error)
	// RemoveAssignment deletes the directory holding an assignment's clones
	RemoveAssignment(assignment string) error
}
