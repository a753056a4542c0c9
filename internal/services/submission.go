package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
)

// SubmissionService fetches, matches and clones assignment submissions
type SubmissionService struct {
	cloner      ports.RepoCloner
	completion  *CompletionService
	concurrency int
	fetcher     ports.PullRequestFetcher
	history     ports.HistoryWriter
	newID       func() string
	now         func() time.Time
	orgs        []string
	roster      []domain.Student
}

// NewSubmissionService creates a new SubmissionService. history may be nil,
// in which case runs are not recorded.
func NewSubmissionService(
	fetcher ports.PullRequestFetcher,
	cloner ports.RepoCloner,
	completion *CompletionService,
	history ports.HistoryWriter,
	orgs []string,
	roster []domain.Student,
	concurrency int,
) *SubmissionService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &SubmissionService{
		cloner:      cloner,
		completion:  completion,
		concurrency: concurrency,
		fetcher:     fetcher,
		history:     history,
		newID:       func() string { return uuid.New().String() },
		now:         time.Now,
		orgs:        orgs,
		roster:      roster,
	}
}

// CloneAssignment runs the full workflow for one assignment: fetch pull
// requests from every organization, match them to the roster, clone each
// submission, record completions and report who is missing.
func (s *SubmissionService) CloneAssignment(ctx context.Context, params CloneParams) (*domain.SubmissionReport, error) {
	startedAt := s.now()
	logging.Logger.Info("Cloning assignment",
		"assignment", params.Assignment,
		"orgs", len(s.orgs),
		"overwrite", params.Overwrite,
		"no_track", params.NoTrack)

	results, err := s.fetchAll(ctx, params.Assignment)
	if err != nil {
		return nil, err
	}

	if domain.AllNotFound(results) {
		logging.Logger.Warn("Assignment repository not found in any organization", "assignment", params.Assignment)
		return nil, fmt.Errorf("%w: %q", domain.ErrAssignmentNotFound, params.Assignment)
	}

	report := &domain.SubmissionReport{
		Assignment: params.Assignment,
		RosterSize: len(s.roster),
	}
	for _, r := range results {
		if r.Failed() {
			report.FailedOrgs = append(report.FailedOrgs, r)
		}
	}

	report.Submissions = domain.MatchSubmissions(domain.ConcatPullRequests(results), s.roster)
	report.Missing = domain.MissingSubmissions(s.roster, report.Submissions)
	logging.Logger.Info("Submissions matched",
		"assignment", params.Assignment,
		"submissions", len(report.Submissions),
		"missing", len(report.Missing))

	report.Outcomes = s.cloneAll(ctx, params, report.Submissions)

	if !params.NoTrack {
		if _, err := s.completion.RecordSubmissions(ctx, params.Assignment, report.Submissions); err != nil {
			return report, err
		}
		report.Tracked = true
	}

	s.recordHistory(ctx, startedAt, report)
	return report, nil
}

// fetchAll lists pull requests for every organization concurrently. Results
// keep the order of the organization list. Per-organization failures are
// recorded in the result, only context cancellation aborts.
func (s *SubmissionService) fetchAll(ctx context.Context, repo string) ([]domain.FetchResult, error) {
	results := make([]domain.FetchResult, len(s.orgs))

	g, gctx := errgroup.WithContext(ctx)
	for i, org := range s.orgs {
		g.Go(func() error {
			prs, err := s.fetcher.ListPullRequests(gctx, org, repo)
			result := domain.FetchResult{Org: org, PullRequests: prs}
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrRepoNotFound):
				result.NotFound = true
			default:
				logging.Logger.Warn("Failed to fetch pull requests", "org", org, "repo", repo, "error", err)
				result.Err = err
			}
			results[i] = result
			return nil
		})
	}

	// Goroutines never return an error, so Wait only reports completion
	g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// cloneAll clones every submission with at most s.concurrency clones at once.
// A failed clone is recorded in its outcome and never stops the others.
func (s *SubmissionService) cloneAll(ctx context.Context, params CloneParams, submissions []domain.Submission) []domain.CloneOutcome {
	outcomes := make([]domain.CloneOutcome, len(submissions))

	var mu sync.Mutex
	done := 0

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, sub := range submissions {
		g.Go(func() error {
			dir, status, err := s.cloner.Clone(ctx, domain.CloneRequest{
				Assignment: params.Assignment,
				Overwrite:  params.Overwrite,
				Submission: sub,
			})
			if err != nil {
				status = domain.CloneStatusFailed
			}
			outcome := domain.CloneOutcome{
				Dir:        dir,
				Err:        err,
				Status:     status,
				Submission: sub,
			}
			outcomes[i] = outcome

			mu.Lock()
			done++
			if params.Progress != nil {
				params.Progress(done, len(submissions), outcome)
			}
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return outcomes
}

func (s *SubmissionService) recordHistory(ctx context.Context, startedAt time.Time, report *domain.SubmissionReport) {
	if s.history == nil {
		return
	}
	run := domain.NewHistoryRun(s.newID(), startedAt, report)
	if err := s.history.AddRun(ctx, run); err != nil {
		logging.Logger.Warn("Failed to record clone history", "assignment", report.Assignment, "error", err)
	}
}

// UpdateAll clones every tracked assignment again, one assignment at a time.
// A failing assignment does not stop the others; all failures are returned
// joined.
func (s *SubmissionService) UpdateAll(ctx context.Context, overwrite bool, progress func(UpdateProgress)) error {
	assignments, err := s.completion.List(ctx)
	if err != nil {
		return err
	}
	logging.Logger.Info("Updating all tracked assignments", "count", len(assignments))

	var errs []error
	for i, assignment := range assignments {
		if err := ctx.Err(); err != nil {
			return err
		}

		report, err := s.CloneAssignment(ctx, CloneParams{
			Assignment: assignment,
			Overwrite:  overwrite,
		})
		if err != nil {
			logging.Logger.Error("Failed to update assignment", "assignment", assignment, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", assignment, err))
		}

		if progress != nil {
			progress(UpdateProgress{
				Assignment: assignment,
				Done:       i + 1,
				Err:        err,
				Report:     report,
				Total:      len(assignments),
			})
		}
	}
	return errors.Join(errs...)
}
