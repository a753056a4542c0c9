package storage

import (
	"strings"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// runModelToDomain converts a CloneRunModel and its results to domain.HistoryRun
func runModelToDomain(m CloneRunModel, results []CloneResultModel) domain.HistoryRun {
	run := domain.HistoryRun{
		Assignment: m.Assignment,
		Cloned:     m.Cloned,
		Failed:     m.Failed,
		FailedOrgs: splitOrgs(m.FailedOrgs),
		ID:         m.ID,
		RosterSize: m.RosterSize,
		Skipped:    m.Skipped,
		StartedAt:  m.StartedAt,
		Submitted:  m.Submitted,
		Tracked:    m.Tracked,
	}
	for _, r := range results {
		run.Results = append(run.Results, domain.HistoryResult{
			Error:    r.Error,
			OrgName:  r.OrgName,
			RepoPath: r.RepoPath,
			Status:   domain.CloneStatus(r.Status),
			Student:  r.Student,
		})
	}
	return run
}

// domainToRunModel converts a domain.HistoryRun to CloneRunModel and CloneResultModels
func domainToRunModel(run domain.HistoryRun) (CloneRunModel, []CloneResultModel) {
	m := CloneRunModel{
		Assignment: run.Assignment,
		Cloned:     run.Cloned,
		Failed:     run.Failed,
		FailedOrgs: strings.Join(run.FailedOrgs, ","),
		ID:         run.ID,
		RosterSize: run.RosterSize,
		Skipped:    run.Skipped,
		StartedAt:  run.StartedAt,
		Submitted:  run.Submitted,
		Tracked:    run.Tracked,
	}

	results := make([]CloneResultModel, 0, len(run.Results))
	for i, r := range run.Results {
		results = append(results, CloneResultModel{
			Error:    r.Error,
			OrgName:  r.OrgName,
			Position: i,
			RepoPath: r.RepoPath,
			RunID:    run.ID,
			Status:   string(r.Status),
			Student:  r.Student,
		})
	}
	return m, results
}

func splitOrgs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
