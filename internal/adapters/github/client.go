package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
	"github.com/katiemcmillin/homework-cloner/internal/logging"
	"github.com/katiemcmillin/homework-cloner/internal/ports"
)

const (
	publicAPIHost = "api.github.com"
	perPage       = 100
)

// Client lists assignment pull requests through the GitHub REST API
type Client struct {
	client *github.Client
}

// Verify interface compliance at compile time
var _ ports.PullRequestFetcher = (*Client)(nil)

// NewClient creates a client for the API host. An empty host or api.github.com
// targets github.com, anything else is treated as a GitHub Enterprise server.
func NewClient(token, host string) (*Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		logging.Logger.Warn("No GitHub token configured, using unauthenticated requests")
	}

	client := github.NewClient(httpClient)
	if host != "" && host != publicAPIHost {
		baseURL := enterpriseBaseURL(host)
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub host %q: %w", host, err)
		}
	}

	return &Client{client: client}, nil
}

func enterpriseBaseURL(host string) string {
	host = strings.TrimSuffix(host, "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	return host + "/api/v3/"
}

// ListPullRequests implements PullRequestFetcher.ListPullRequests.
// Open and merged pull requests are returned. Ones closed without merging are
// skipped, as are entries missing the author, head repository or base owner.
func (c *Client) ListPullRequests(ctx context.Context, org, repo string) ([]domain.PullRequest, error) {
	logging.Logger.Debug("Listing pull requests", "org", org, "repo", repo)

	opts := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var result []domain.PullRequest
	dropped, unmerged := 0, 0
	for {
		prs, resp, err := c.client.PullRequests.List(ctx, org, repo, opts)
		if err != nil {
			if isNotFound(err) {
				logging.Logger.Info("Repository not found", "org", org, "repo", repo)
				return nil, fmt.Errorf("%w: %s/%s", domain.ErrRepoNotFound, org, repo)
			}
			return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", org, repo, err)
		}

		for _, pr := range prs {
			if closedUnmerged(pr) {
				logging.Logger.Debug("Skipping pull request closed without merge",
					"org", org,
					"repo", repo,
					"number", pr.GetNumber(),
					"author", pr.GetUser().GetLogin())
				unmerged++
				continue
			}
			converted := convertPullRequest(pr)
			if err := converted.Validate(); err != nil {
				logging.Logger.Warn("Dropping malformed pull request",
					"org", org,
					"repo", repo,
					"number", pr.GetNumber(),
					"error", err)
				dropped++
				continue
			}
			result = append(result, converted)
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.Logger.Info("Pull requests listed",
		"org", org,
		"repo", repo,
		"count", len(result),
		"dropped", dropped,
		"closed_unmerged", unmerged)
	return result, nil
}

func convertPullRequest(pr *github.PullRequest) domain.PullRequest {
	return domain.PullRequest{
		AuthorLogin:      pr.GetUser().GetLogin(),
		BaseOrgLogin:     pr.GetBase().GetRepo().GetOwner().GetLogin(),
		HeadRepoFullName: pr.GetHead().GetRepo().GetFullName(),
	}
}

func closedUnmerged(pr *github.PullRequest) bool {
	return pr.GetState() == "closed" && pr.MergedAt == nil
}

func isNotFound(err error) bool {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode == http.StatusNotFound
	}
	return false
}
