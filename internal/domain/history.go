package domain

import "time"

// HistoryRun is one recorded clone run for an assignment
type HistoryRun struct {
	Assignment string
	Cloned     int
	Failed     int
	FailedOrgs []string
	ID         string
	Results    []HistoryResult
	RosterSize int
	Skipped    int
	StartedAt  time.Time
	Submitted  int
	Tracked    bool
}

// HistoryResult is the recorded outcome for one student in a run
type HistoryResult struct {
	Error    string
	OrgName  string
	RepoPath string
	Status   CloneStatus
	Student  string
}

// NewHistoryRun summarizes a submission report for the history ledger
func NewHistoryRun(id string, startedAt time.Time, report *SubmissionReport) HistoryRun {
	run := HistoryRun{
		Assignment: report.Assignment,
		Cloned:     report.CountStatus(CloneStatusCloned),
		Failed:     report.CountStatus(CloneStatusFailed),
		ID:         id,
		RosterSize: report.RosterSize,
		Skipped:    report.CountStatus(CloneStatusSkipped),
		StartedAt:  startedAt,
		Submitted:  len(report.Submissions),
		Tracked:    report.Tracked,
	}

	for _, f := range report.FailedOrgs {
		run.FailedOrgs = append(run.FailedOrgs, f.Org)
	}

	for _, o := range report.Outcomes {
		result := HistoryResult{
			OrgName:  o.Submission.OrgName,
			RepoPath: o.Submission.RepoPath,
			Status:   o.Status,
			Student:  o.Submission.Student.Name,
		}
		if o.Err != nil {
			result.Error = o.Err.Error()
		}
		run.Results = append(run.Results, result)
	}
	return run
}
