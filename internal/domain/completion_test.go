package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T) *CompletionRecord {
	t.Helper()
	return NewCompletionRecord(testRoster)
}

func TestNewCompletionRecord(t *testing.T) {
	record := newTestRecord(t)

	assert.Empty(t, record.Assignments)
	require.Len(t, record.Students, 3)
	for i, s := range record.Students {
		assert.Equal(t, testRoster[i].Name, s.Name)
		assert.Equal(t, testRoster[i].Username, s.Username)
		assert.NotNil(t, s.Completed)
		assert.Empty(t, s.Completed)
	}
	require.NoError(t, record.Validate())
}

func TestTrackAssignment_Idempotent(t *testing.T) {
	record := newTestRecord(t)

	assert.True(t, record.TrackAssignment("hw1"))
	assert.True(t, record.TrackAssignment("hw2"))
	assert.False(t, record.TrackAssignment("hw1"))

	assert.Equal(t, []string{"hw1", "hw2"}, record.List())
}

func TestList_ReturnsCopy(t *testing.T) {
	record := newTestRecord(t)
	record.TrackAssignment("hw1")

	list := record.List()
	list[0] = "changed"

	assert.Equal(t, []string{"hw1"}, record.Assignments)
}

func TestRecordCompletions_Idempotent(t *testing.T) {
	subs := MatchSubmissions([]PullRequest{pr("annlee", "A"), pr("cyott", "B")}, testRoster)

	once := newTestRecord(t)
	marked := once.RecordCompletions("hw1", subs)
	assert.Equal(t, []string{"Ann-Lee", "Cy-Ott"}, marked)

	twice := newTestRecord(t)
	twice.RecordCompletions("hw1", subs)
	again := twice.RecordCompletions("hw1", subs)

	assert.Empty(t, again, "second application marks nobody")
	assert.Equal(t, once, twice)
	require.NoError(t, twice.Validate())
}

func TestRecordCompletions_TracksAssignment(t *testing.T) {
	record := newTestRecord(t)

	record.RecordCompletions("hw1", nil)

	assert.True(t, record.IsTracked("hw1"))
	for _, s := range record.Students {
		assert.Empty(t, s.Completed)
	}
}

func TestForget_Cascades(t *testing.T) {
	record := newTestRecord(t)
	record.RecordCompletions("hw1", MatchSubmissions([]PullRequest{pr("annlee", "A"), pr("bokim", "A")}, testRoster))
	record.RecordCompletions("hw2", MatchSubmissions([]PullRequest{pr("annlee", "A")}, testRoster))
	record.MarkAllComplete("hw3")

	require.NoError(t, record.Forget("hw1"))

	assert.Equal(t, []string{"hw2", "hw3"}, record.Assignments)
	for _, s := range record.Students {
		assert.NotContains(t, s.Completed, "hw1", s.Name)
	}
	assert.Equal(t, []string{"hw2", "hw3"}, record.Students[0].Completed)
	require.NoError(t, record.Validate())
}

func TestForget_NotTracked(t *testing.T) {
	record := newTestRecord(t)
	record.MarkAllComplete("hw2")
	before := *record
	beforeStudents := fmt.Sprint(record.Students)

	err := record.Forget("hw1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssignmentNotTracked))
	assert.Equal(t, before.Assignments, record.Assignments)
	assert.Equal(t, beforeStudents, fmt.Sprint(record.Students))
}

func TestSync_AddsRemovesAndRenames(t *testing.T) {
	record := newTestRecord(t)
	record.MarkAllComplete("hw1")

	roster := []Student{
		{Name: "Ann-Lee", Username: "ann-lee-new"},
		{Name: "Cy-Ott", Username: "cyott"},
		{Name: "Di-Ray", Username: "diray"},
	}

	result := record.Sync(roster)

	assert.Equal(t, []string{"Di-Ray"}, result.Added)
	assert.Equal(t, []string{"Bo-Kim"}, result.Removed)
	require.Len(t, result.UsernameChanges, 1)
	assert.Equal(t, UsernameChange{Name: "Ann-Lee", NewUsername: "ann-lee-new", OldUsername: "annlee"}, result.UsernameChanges[0])
	assert.True(t, result.Changed())

	require.Len(t, record.Students, 3)
	assert.Equal(t, "Ann-Lee", record.Students[0].Name)
	assert.Equal(t, "ann-lee-new", record.Students[0].Username)
	assert.Equal(t, []string{"hw1"}, record.Students[0].Completed, "history kept across username change")
	assert.Equal(t, []string{"hw1"}, record.Students[1].Completed)
	assert.Equal(t, "Di-Ray", record.Students[2].Name)
	assert.Empty(t, record.Students[2].Completed)
}

func TestSync_NoChanges(t *testing.T) {
	record := newTestRecord(t)

	result := record.Sync(testRoster)

	assert.False(t, result.Changed())
	assert.Len(t, record.Students, 3)
}

func TestMarkComplete(t *testing.T) {
	record := newTestRecord(t)

	result, err := record.MarkComplete("Bo-Kim", "hw1")
	require.NoError(t, err)
	assert.True(t, result.Tracked)
	assert.Equal(t, []string{"Bo-Kim"}, result.Marked)

	result, err = record.MarkComplete("Bo-Kim", "hw1")
	require.NoError(t, err)
	assert.False(t, result.Changed())
	assert.Equal(t, []string{"Bo-Kim"}, result.AlreadyComplete)
}

func TestMarkComplete_StudentNotFoundStillTracks(t *testing.T) {
	record := newTestRecord(t)

	result, err := record.MarkComplete("Nobody", "hw1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.True(t, result.Tracked)
	assert.True(t, record.IsTracked("hw1"))
	for _, s := range record.Students {
		assert.Empty(t, s.Completed)
	}
}

func TestMarkComplete_ExactNameMatch(t *testing.T) {
	record := newTestRecord(t)

	_, err := record.MarkComplete("ann-lee", "hw1")

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestMarkAllComplete(t *testing.T) {
	record := newTestRecord(t)
	_, err := record.MarkComplete("Ann-Lee", "hw1")
	require.NoError(t, err)

	result := record.MarkAllComplete("hw1")

	assert.False(t, result.Tracked)
	assert.Equal(t, []string{"Bo-Kim", "Cy-Ott"}, result.Marked)
	assert.Equal(t, []string{"Ann-Lee"}, result.AlreadyComplete)
	for _, s := range record.Students {
		assert.Equal(t, []string{"hw1"}, s.Completed)
	}
}

func TestCompletionReport_CriticalScenario(t *testing.T) {
	record := newTestRecord(t)
	for _, a := range []string{"hw1", "hw2", "hw3", "hw4"} {
		record.TrackAssignment(a)
	}
	for _, a := range []string{"hw1", "hw2", "hw4"} {
		_, err := record.MarkComplete("Ann-Lee", a)
		require.NoError(t, err)
	}

	reports := record.CompletionReport(Thresholds{Red: 80, Yellow: 85})

	require.Len(t, reports, 3)
	ann := reports[0]
	assert.Equal(t, "Ann-Lee", ann.Name)
	assert.Equal(t, []string{"hw3"}, ann.MissingAssignments)
	assert.Equal(t, 75, ann.PercentComplete)
	assert.Equal(t, LevelCritical, ann.Level)
}

func TestCompletionReport_NoAssignments(t *testing.T) {
	record := newTestRecord(t)

	reports := record.CompletionReport(DefaultThresholds)

	for _, r := range reports {
		assert.Equal(t, 0, r.PercentComplete)
		assert.Empty(t, r.MissingAssignments)
	}
}

func TestCompletionReport_PercentBounds(t *testing.T) {
	for total := 1; total <= 250; total++ {
		for _, missing := range []int{0, 1, total / 2, total - 1, total} {
			if missing < 0 || missing > total {
				continue
			}
			percent := PercentComplete(total, missing)
			assert.GreaterOrEqual(t, percent, 0)
			assert.LessOrEqual(t, percent, 100)
			assert.Equal(t, missing == 0, percent == 100, "total=%d missing=%d", total, missing)
			assert.Equal(t, missing == total, percent == 0, "total=%d missing=%d", total, missing)
		}
	}
}

func TestPercentComplete_Rounding(t *testing.T) {
	assert.Equal(t, 67, PercentComplete(3, 1))
	assert.Equal(t, 33, PercentComplete(3, 2))
	assert.Equal(t, 50, PercentComplete(2, 1))
	assert.Equal(t, 99, PercentComplete(200, 1), "never rounds up to 100 while something is missing")
	assert.Equal(t, 1, PercentComplete(300, 299), "never rounds down to 0 while something is complete")
}

func TestThresholds_Classify(t *testing.T) {
	th := Thresholds{Red: 80, Yellow: 85}
	tests := []struct {
		percent  int
		expected CompletionLevel
	}{
		{0, LevelCritical},
		{79, LevelCritical},
		{80, LevelWarning},
		{85, LevelWarning},
		{86, LevelHealthy},
		{100, LevelHealthy},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.percent), func(t *testing.T) {
			assert.Equal(t, tt.expected, th.Classify(tt.percent))
		})
	}
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, DefaultThresholds.Validate())
	assert.NoError(t, Thresholds{Red: 50, Yellow: 50}.Validate())
	assert.Error(t, Thresholds{Red: 90, Yellow: 80}.Validate())
	assert.Error(t, Thresholds{Red: -1, Yellow: 80}.Validate())
	assert.Error(t, Thresholds{Red: 80, Yellow: 101}.Validate())
}

func TestValidate_RejectsDanglingCompletion(t *testing.T) {
	record := &CompletionRecord{
		Assignments: []string{"hw1"},
		Students: []StudentRecord{
			{Name: "Ann-Lee", Username: "annlee", Completed: []string{"hw1", "hw9"}},
		},
	}

	err := record.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "hw9")
}

func TestValidate_RejectsDuplicates(t *testing.T) {
	dupAssignment := &CompletionRecord{Assignments: []string{"hw1", "hw1"}}
	assert.ErrorIs(t, dupAssignment.Validate(), ErrMalformedRecord)

	dupStudent := &CompletionRecord{Students: []StudentRecord{{Name: "A"}, {Name: "A"}}}
	assert.ErrorIs(t, dupStudent.Validate(), ErrMalformedRecord)
}
