package domain

import "fmt"

// PullRequest is the part of a GitHub pull request needed to credit a submission
type PullRequest struct {
	AuthorLogin      string // login of the user who opened the PR
	BaseOrgLogin     string // owner of the repository the PR targets
	HeadRepoFullName string // "owner/repo" of the fork the PR comes from
}

// Validate reports whether every field needed for matching and cloning is present
func (p PullRequest) Validate() error {
	if p.AuthorLogin == "" {
		return fmt.Errorf("pull request has no author login")
	}
	if p.HeadRepoFullName == "" {
		return fmt.Errorf("pull request from %s has no head repository", p.AuthorLogin)
	}
	if p.BaseOrgLogin == "" {
		return fmt.Errorf("pull request from %s has no base owner", p.AuthorLogin)
	}
	return nil
}

// FetchResult is the outcome of listing pull requests for one organization
type FetchResult struct {
	Err          error // network or API failure, nil on success
	NotFound     bool  // the organization has no repository with the requested name
	Org          string
	PullRequests []PullRequest
}

// Failed reports whether the organization contributed nothing because of an error
func (f FetchResult) Failed() bool {
	return f.NotFound || f.Err != nil
}

// AllNotFound reports whether every organization answered "not found".
// An empty result set is not considered "all not found".
func AllNotFound(results []FetchResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if !r.NotFound {
			return false
		}
	}
	return true
}

// ConcatPullRequests joins per-organization results in the order given
func ConcatPullRequests(results []FetchResult) []PullRequest {
	var prs []PullRequest
	for _, r := range results {
		prs = append(prs, r.PullRequests...)
	}
	return prs
}
