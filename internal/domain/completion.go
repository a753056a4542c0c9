package domain

import (
	"fmt"
	"math"
	"slices"
)

// StudentRecord is a student's entry in the completion record
type StudentRecord struct {
	Completed []string `json:"completed"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
}

// HasCompleted reports whether the assignment is marked complete for the student
func (s *StudentRecord) HasCompleted(assignment string) bool {
	return slices.Contains(s.Completed, assignment)
}

// CompletionRecord tracks which assignments exist and which students completed them.
// Every entry of a student's Completed list must appear in Assignments.
type CompletionRecord struct {
	Assignments []string        `json:"assignments"`
	Students    []StudentRecord `json:"students"`
}

// NewCompletionRecord creates an empty record for the roster
func NewCompletionRecord(roster []Student) *CompletionRecord {
	students := make([]StudentRecord, 0, len(roster))
	for _, s := range roster {
		students = append(students, StudentRecord{
			Completed: []string{},
			Name:      s.Name,
			Username:  s.Username,
		})
	}
	return &CompletionRecord{
		Assignments: []string{},
		Students:    students,
	}
}

// Validate checks the record invariants after loading
func (r *CompletionRecord) Validate() error {
	tracked := make(map[string]bool, len(r.Assignments))
	for _, a := range r.Assignments {
		if tracked[a] {
			return fmt.Errorf("%w: assignment %q listed twice", ErrMalformedRecord, a)
		}
		tracked[a] = true
	}

	names := make(map[string]bool, len(r.Students))
	for _, s := range r.Students {
		if s.Name == "" {
			return fmt.Errorf("%w: student with username %q has no name", ErrMalformedRecord, s.Username)
		}
		if names[s.Name] {
			return fmt.Errorf("%w: student %q listed twice", ErrMalformedRecord, s.Name)
		}
		names[s.Name] = true

		for _, a := range s.Completed {
			if !tracked[a] {
				return fmt.Errorf("%w: %s completed untracked assignment %q", ErrMalformedRecord, s.Name, a)
			}
		}
	}
	return nil
}

// List returns the tracked assignments in first-tracked order
func (r *CompletionRecord) List() []string {
	return slices.Clone(r.Assignments)
}

// IsTracked reports whether the assignment is tracked
func (r *CompletionRecord) IsTracked(assignment string) bool {
	return slices.Contains(r.Assignments, assignment)
}

// TrackAssignment appends the assignment if absent. Returns true if it was added.
func (r *CompletionRecord) TrackAssignment(assignment string) bool {
	if r.IsTracked(assignment) {
		return false
	}
	r.Assignments = append(r.Assignments, assignment)
	return true
}

// RecordCompletions tracks the assignment and marks it complete for every
// student with a submission. Returns the names of students newly marked.
func (r *CompletionRecord) RecordCompletions(assignment string, submissions []Submission) []string {
	r.TrackAssignment(assignment)

	submitted := make(map[string]bool, len(submissions))
	for _, s := range submissions {
		submitted[s.Student.Username] = true
	}

	var marked []string
	for i := range r.Students {
		student := &r.Students[i]
		if !submitted[student.Username] || student.HasCompleted(assignment) {
			continue
		}
		student.Completed = append(student.Completed, assignment)
		marked = append(marked, student.Name)
	}
	return marked
}

// Forget removes the assignment and every completion of it
func (r *CompletionRecord) Forget(assignment string) error {
	if !r.IsTracked(assignment) {
		return fmt.Errorf("%w: %s", ErrAssignmentNotTracked, assignment)
	}

	r.Assignments = slices.DeleteFunc(r.Assignments, func(a string) bool { return a == assignment })
	for i := range r.Students {
		r.Students[i].Completed = slices.DeleteFunc(r.Students[i].Completed, func(a string) bool { return a == assignment })
	}
	return nil
}

// UsernameChange records a username overwritten by Sync
type UsernameChange struct {
	Name        string
	NewUsername string
	OldUsername string
}

// SyncResult describes what Sync changed
type SyncResult struct {
	Added           []string
	Removed         []string
	UsernameChanges []UsernameChange
}

// Changed reports whether Sync modified the record
func (s SyncResult) Changed() bool {
	return len(s.Added) > 0 || len(s.Removed) > 0 || len(s.UsernameChanges) > 0
}

// Sync reconciles the record with the live roster, matching students by name.
// New students are added with no completions, students gone from the roster are
// removed with their history, and changed usernames are overwritten.
func (r *CompletionRecord) Sync(roster []Student) SyncResult {
	var result SyncResult

	inRoster := make(map[string]Student, len(roster))
	for _, s := range roster {
		inRoster[s.Name] = s
	}

	kept := r.Students[:0]
	for _, s := range r.Students {
		if _, ok := inRoster[s.Name]; !ok {
			result.Removed = append(result.Removed, s.Name)
			continue
		}
		kept = append(kept, s)
	}
	r.Students = kept

	inRecord := make(map[string]int, len(r.Students))
	for i, s := range r.Students {
		inRecord[s.Name] = i
	}

	for _, s := range roster {
		idx, ok := inRecord[s.Name]
		if !ok {
			r.Students = append(r.Students, StudentRecord{
				Completed: []string{},
				Name:      s.Name,
				Username:  s.Username,
			})
			inRecord[s.Name] = len(r.Students) - 1
			result.Added = append(result.Added, s.Name)
			continue
		}

		existing := &r.Students[idx]
		if existing.Username != s.Username {
			result.UsernameChanges = append(result.UsernameChanges, UsernameChange{
				Name:        s.Name,
				NewUsername: s.Username,
				OldUsername: existing.Username,
			})
			existing.Username = s.Username
		}
	}

	return result
}

// MarkResult describes what MarkComplete or MarkAllComplete changed
type MarkResult struct {
	AlreadyComplete []string
	Marked          []string
	Tracked         bool // the assignment was newly tracked
}

// Changed reports whether the record was modified
func (m MarkResult) Changed() bool {
	return m.Tracked || len(m.Marked) > 0
}

// MarkComplete marks one assignment complete for the student with the exact name.
// The assignment is tracked even when the student is unknown, in which case
// ErrStudentNotFound is returned alongside the partial result.
func (r *CompletionRecord) MarkComplete(studentName, assignment string) (MarkResult, error) {
	result := MarkResult{Tracked: r.TrackAssignment(assignment)}

	idx := slices.IndexFunc(r.Students, func(s StudentRecord) bool { return s.Name == studentName })
	if idx < 0 {
		return result, fmt.Errorf("%w: %q", ErrStudentNotFound, studentName)
	}

	student := &r.Students[idx]
	if student.HasCompleted(assignment) {
		result.AlreadyComplete = append(result.AlreadyComplete, student.Name)
		return result, nil
	}

	student.Completed = append(student.Completed, assignment)
	result.Marked = append(result.Marked, student.Name)
	return result, nil
}

// MarkAllComplete tracks the assignment and marks it complete for every student
func (r *CompletionRecord) MarkAllComplete(assignment string) MarkResult {
	result := MarkResult{Tracked: r.TrackAssignment(assignment)}

	for i := range r.Students {
		student := &r.Students[i]
		if student.HasCompleted(assignment) {
			result.AlreadyComplete = append(result.AlreadyComplete, student.Name)
			continue
		}
		student.Completed = append(student.Completed, assignment)
		result.Marked = append(result.Marked, student.Name)
	}
	return result
}

// CompletionLevel classifies a student's completion rate
type CompletionLevel string

const (
	LevelCritical CompletionLevel = "critical"
	LevelHealthy  CompletionLevel = "healthy"
	LevelWarning  CompletionLevel = "warning"
)

// Thresholds are the percentage boundaries used to classify completion.
// Below Red is critical, Red through Yellow inclusive is a warning, above
// Yellow is healthy.
type Thresholds struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
}

// DefaultThresholds matches the boundaries the course has always used
var DefaultThresholds = Thresholds{Red: 80, Yellow: 85}

// Validate checks the thresholds are percentages in ascending order
func (t Thresholds) Validate() error {
	if t.Red < 0 || t.Red > 100 || t.Yellow < 0 || t.Yellow > 100 {
		return fmt.Errorf("thresholds must be between 0 and 100 (red=%d, yellow=%d)", t.Red, t.Yellow)
	}
	if t.Red > t.Yellow {
		return fmt.Errorf("red threshold %d is above yellow threshold %d", t.Red, t.Yellow)
	}
	return nil
}

// Classify returns the completion level for a percentage
func (t Thresholds) Classify(percent int) CompletionLevel {
	switch {
	case percent < t.Red:
		return LevelCritical
	case percent <= t.Yellow:
		return LevelWarning
	default:
		return LevelHealthy
	}
}

// StudentReport is one student's line in the completion report
type StudentReport struct {
	Level              CompletionLevel
	MissingAssignments []string
	Name               string
	PercentComplete    int
}

// PercentComplete returns the rounded completion percentage. It is 0 when no
// assignments are tracked, never 100 while something is missing and never 0
// while something is complete.
func PercentComplete(total, missing int) int {
	if total <= 0 {
		return 0
	}
	done := total - missing
	percent := int(math.Round(float64(done) * 100 / float64(total)))
	switch {
	case missing > 0 && percent >= 100:
		return 99
	case done > 0 && percent <= 0:
		return 1
	}
	return percent
}

// CompletionReport computes each student's missing assignments and completion rate
func (r *CompletionRecord) CompletionReport(thresholds Thresholds) []StudentReport {
	reports := make([]StudentReport, 0, len(r.Students))
	for i := range r.Students {
		student := &r.Students[i]

		missing := []string{}
		for _, a := range r.Assignments {
			if !student.HasCompleted(a) {
				missing = append(missing, a)
			}
		}

		percent := PercentComplete(len(r.Assignments), len(missing))
		reports = append(reports, StudentReport{
			Level:              thresholds.Classify(percent),
			MissingAssignments: missing,
			Name:               student.Name,
			PercentComplete:    percent,
		})
	}
	return reports
}
