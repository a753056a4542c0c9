package services

import (
	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

var testRoster = []domain.Student{
	{Name: "Ann-Lee", Username: "annlee"},
	{Name: "Bo-Kim", Username: "bokim"},
	{Name: "Cy-Ott", Username: "cyott"},
}

func pr(author, org, repo string) domain.PullRequest {
	return domain.PullRequest{
		AuthorLogin:      author,
		BaseOrgLogin:     org,
		HeadRepoFullName: author + "/" + repo,
	}
}
