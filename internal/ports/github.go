package ports

import (
	"context"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// PullRequestFetcher lists the pull requests opened against org/repo.
// Returns domain.ErrRepoNotFound when the organization has no such repository.
type PullRequestFetcher interface {
	ListPullRequests(ctx context.Context, org, repo string) ([]domain.PullRequest, error)
}
