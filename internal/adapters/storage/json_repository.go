package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katiemcmillin/homework-cloner/internal/config"
	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
)

// JSONCompletionRepository stores the completion record in a single JSON file.
// Saves replace the whole file through a rename so a reader never sees a
// partially written record.
type JSONCompletionRepository struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.CompletionRepository = (*JSONCompletionRepository)(nil)

// NewJSONCompletionRepository creates a repository backed by the file at path
func NewJSONCompletionRepository(path string) *JSONCompletionRepository {
	return &JSONCompletionRepository{path: config.ExpandPath(path)}
}

// Path returns the location of the record file
func (r *JSONCompletionRepository) Path() string {
	return r.path
}

// Load implements CompletionRepository.Load
func (r *JSONCompletionRepository) Load(ctx context.Context) (*domain.CompletionRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, r.path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	var record domain.CompletionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logging.Logger.Error("Completion record failed to parse", "path", r.path, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedRecord, r.path, err)
	}

	normalize(&record)

	if err := record.Validate(); err != nil {
		logging.Logger.Error("Completion record failed validation", "path", r.path, "error", err)
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	logging.Logger.Debug("Completion record loaded",
		"path", r.path,
		"assignments", len(record.Assignments),
		"students", len(record.Students))
	return &record, nil
}

// Save implements CompletionRepository.Save
func (r *JSONCompletionRepository) Save(ctx context.Context, record *domain.CompletionRecord) error {
	normalize(record)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal completion record: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write completion record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush completion record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close completion record: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}

	logging.Logger.Debug("Completion record saved", "path", r.path)
	return nil
}

// normalize replaces nil lists so the file always has [] rather than null
func normalize(record *domain.CompletionRecord) {
	if record.Assignments == nil {
		record.Assignments = []string{}
	}
	if record.Students == nil {
		record.Students = []domain.StudentRecord{}
	}
	for i := range record.Students {
		if record.Students[i].Completed == nil {
			record.Students[i].Completed = []string{}
		}
	}
}
