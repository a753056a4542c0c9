package services

import "github.com/katiemcmillin/homework-cloner/internal/domain"

// CloneParams contains parameters for cloning an assignment
type CloneParams struct {
	Assignment string
	NoTrack    bool // clone and report without touching the completion record
	Overwrite  bool
	// Progress, when set, is called once per finished clone. Calls never overlap.
	Progress func(done, total int, outcome domain.CloneOutcome)
}

// CompletionCheck is the completion report for every student in the record
type CompletionCheck struct {
	Assignments []string
	Reports     []domain.StudentReport
}

// UpdateProgress describes one finished assignment during UpdateAll
type UpdateProgress struct {
	Assignment string
	Done       int
	Err        error
	Report     *domain.SubmissionReport
	Total      int
}

// PercentDone returns how far through the update run we are
func (p UpdateProgress) PercentDone() int {
	if p.Total == 0 {
		return 100
	}
	return p.Done * 100 / p.Total
}
