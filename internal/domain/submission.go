package domain

// Submission is the pull request accepted as a student's work for an assignment
type Submission struct {
	OrgName  string // organization the PR was opened against
	RepoPath string // "owner/repo" of the student's fork
	Student  Student
}

// MatchSubmissions reduces pull requests to at most one submission per roster
// student. Pull requests are considered in the order given, so when a student
// opened PRs in several organizations the one fetched first wins. Authors not
// on the roster are dropped.
func MatchSubmissions(pullRequests []PullRequest, roster []Student) []Submission {
	byUsername := make(map[string]Student, len(roster))
	for _, s := range roster {
		byUsername[s.Username] = s
	}

	accepted := make(map[string]bool)
	var submissions []Submission

	for _, pr := range pullRequests {
		login := pr.AuthorLogin
		if accepted[login] {
			continue
		}

		student, ok := byUsername[login]
		if !ok {
			continue
		}

		accepted[login] = true
		submissions = append(submissions, Submission{
			OrgName:  pr.BaseOrgLogin,
			RepoPath: pr.HeadRepoFullName,
			Student:  student,
		})
	}

	return submissions
}

// MissingSubmissions returns roster students with no submission, in roster order
func MissingSubmissions(roster []Student, submissions []Submission) []Student {
	submitted := make(map[string]bool, len(submissions))
	for _, s := range submissions {
		submitted[s.Student.Username] = true
	}

	var missing []Student
	for _, s := range roster {
		if !submitted[s.Username] {
			missing = append(missing, s)
		}
	}
	return missing
}

// CloneStatus is the result of cloning one submission
type CloneStatus string

const (
	CloneStatusCloned  CloneStatus = "cloned"
	CloneStatusFailed  CloneStatus = "failed"
	CloneStatusSkipped CloneStatus = "skipped"
)

// CloneOutcome records what happened to one submission's clone
type CloneOutcome struct {
	Dir        string
	Err        error
	Status     CloneStatus
	Submission Submission
}

// SubmissionReport summarizes one clone run for an assignment
type SubmissionReport struct {
	Assignment  string
	FailedOrgs  []FetchResult
	Missing     []Student
	Outcomes    []CloneOutcome
	RosterSize  int
	Submissions []Submission
	Tracked     bool
}

// CloneFailures returns outcomes whose clone failed. These students did submit
// and are not part of Missing.
func (r *SubmissionReport) CloneFailures() []CloneOutcome {
	var failed []CloneOutcome
	for _, o := range r.Outcomes {
		if o.Status == CloneStatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// CountStatus returns how many outcomes have the given status
func (r *SubmissionReport) CountStatus(status CloneStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
