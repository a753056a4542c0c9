package storage

import "time"

// CloneRunModel is the GORM model for the clone_runs table
type CloneRunModel struct {
	Assignment string    `gorm:"not null;index:idx_assignment"`
	Cloned     int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	Failed     int       `gorm:"not null;default:0"`
	FailedOrgs string    `gorm:"not null;default:''"` // comma-separated
	ID         string    `gorm:"primaryKey"`
	RosterSize int       `gorm:"not null;default:0"`
	Skipped    int       `gorm:"not null;default:0"`
	StartedAt  time.Time `gorm:"not null;index:idx_started_at"`
	Submitted  int       `gorm:"not null;default:0"`
	Tracked    bool      `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (CloneRunModel) TableName() string { return "clone_runs" }

// CloneResultModel is the GORM model for the clone_results table
type CloneResultModel struct {
	Error    string `gorm:"not null;default:''"`
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	OrgName  string `gorm:"not null;default:''"`
	Position int    `gorm:"not null;default:0"`
	RepoPath string `gorm:"not null;default:''"`
	RunID    string `gorm:"not null;index:idx_run_id"`
	Status   string `gorm:"not null;check:status IN ('cloned','skipped','failed')"`
	Student  string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CloneResultModel) TableName() string { return "clone_results" }
