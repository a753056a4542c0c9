package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
)

// CompletionService applies completion record operations with a
// load, mutate, save cycle against the repository
type CompletionService struct {
	cloner     ports.RepoCloner
	repo       ports.CompletionRepository
	roster     []domain.Student
	thresholds domain.Thresholds
}

// NewCompletionService creates a new CompletionService
func NewCompletionService(
	repo ports.CompletionRepository,
	cloner ports.RepoCloner,
	roster []domain.Student,
	thresholds domain.Thresholds,
) *CompletionService {
	return &CompletionService{
		cloner:     cloner,
		repo:       repo,
		roster:     roster,
		thresholds: thresholds,
	}
}

// load returns the stored record, or a fresh one built from the roster when
// none exists yet. created reports the second case.
func (s *CompletionService) load(ctx context.Context) (record *domain.CompletionRecord, created bool, err error) {
	record, err = s.repo.Load(ctx)
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, false, err
	}

	logging.Logger.Info("No completion record found, creating one", "students", len(s.roster))
	return domain.NewCompletionRecord(s.roster), true, nil
}

func (s *CompletionService) save(ctx context.Context, record *domain.CompletionRecord) error {
	if err := s.repo.Save(ctx, record); err != nil {
		logging.Logger.Error("Failed to save completion record", "error", err)
		return fmt.Errorf("failed to save completion record: %w", err)
	}
	return nil
}

// Ensure creates the completion record if it does not exist yet
func (s *CompletionService) Ensure(ctx context.Context) (*domain.CompletionRecord, error) {
	record, created, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if created {
		if err := s.save(ctx, record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// List returns the tracked assignments in the order they were first tracked
func (s *CompletionService) List(ctx context.Context) ([]string, error) {
	record, err := s.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return record.List(), nil
}

// IsTracked reports whether the assignment is in the completion record
func (s *CompletionService) IsTracked(ctx context.Context, assignment string) (bool, error) {
	record, err := s.Ensure(ctx)
	if err != nil {
		return false, err
	}
	return record.IsTracked(assignment), nil
}

// RecordSubmissions tracks the assignment and credits every student with a
// submission. Returns the names of students newly marked complete.
func (s *CompletionService) RecordSubmissions(ctx context.Context, assignment string, submissions []domain.Submission) ([]string, error) {
	record, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	marked := record.RecordCompletions(assignment, submissions)
	logging.Logger.Info("Completions recorded",
		"assignment", assignment,
		"submissions", len(submissions),
		"newly_marked", len(marked))

	if err := s.save(ctx, record); err != nil {
		return nil, err
	}
	return marked, nil
}

// Forget stops tracking the assignment, removes it from every student and
// deletes its clone directory. Returns domain.ErrAssignmentNotTracked, with
// nothing changed, when the assignment is unknown.
func (s *CompletionService) Forget(ctx context.Context, assignment string) error {
	record, created, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := record.Forget(assignment); err != nil {
		logging.Logger.Info("Forget requested for untracked assignment", "assignment", assignment)
		if created {
			if saveErr := s.save(ctx, record); saveErr != nil {
				return saveErr
			}
		}
		return err
	}

	if err := s.save(ctx, record); err != nil {
		return err
	}
	logging.Logger.Info("Assignment forgotten", "assignment", assignment)

	if err := s.cloner.RemoveAssignment(assignment); err != nil {
		return fmt.Errorf("assignment forgotten but its clones could not be removed: %w", err)
	}
	return nil
}

// Sync reconciles the record's students with the configured roster
func (s *CompletionService) Sync(ctx context.Context) (domain.SyncResult, error) {
	record, created, err := s.load(ctx)
	if err != nil {
		return domain.SyncResult{}, err
	}

	result := record.Sync(s.roster)
	logging.Logger.Info("Roster synced",
		"added", len(result.Added),
		"removed", len(result.Removed),
		"username_changes", len(result.UsernameChanges))

	if result.Changed() || created {
		if err := s.save(ctx, record); err != nil {
			return result, err
		}
	}
	return result, nil
}

// MarkComplete marks one assignment complete for the named student. When the
// student is unknown the assignment is still tracked and saved, and
// domain.ErrStudentNotFound is returned.
func (s *CompletionService) MarkComplete(ctx context.Context, studentName, assignment string) (domain.MarkResult, error) {
	record, created, err := s.load(ctx)
	if err != nil {
		return domain.MarkResult{}, err
	}

	result, markErr := record.MarkComplete(studentName, assignment)
	if markErr != nil {
		logging.Logger.Info("Student not in completion record", "student", studentName, "assignment", assignment)
	}

	if result.Changed() || created {
		if err := s.save(ctx, record); err != nil {
			return result, err
		}
	}
	return result, markErr
}

// MarkAllComplete marks the assignment complete for every student
func (s *CompletionService) MarkAllComplete(ctx context.Context, assignment string) (domain.MarkResult, error) {
	record, created, err := s.load(ctx)
	if err != nil {
		return domain.MarkResult{}, err
	}

	result := record.MarkAllComplete(assignment)
	logging.Logger.Info("Assignment marked complete for all",
		"assignment", assignment,
		"marked", len(result.Marked))

	if result.Changed() || created {
		if err := s.save(ctx, record); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Check computes the completion report with the configured thresholds
func (s *CompletionService) Check(ctx context.Context) (*CompletionCheck, error) {
	record, err := s.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	return &CompletionCheck{
		Assignments: record.List(),
		Reports:     record.CompletionReport(s.thresholds),
	}, nil
}
