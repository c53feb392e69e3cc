package models

import "time"

// MigrationRun is the audit record of one legacy-store migration attempt.
// Stats holds the per-category counts and the per-record error list as JSON.
type MigrationRun struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Stats      JSON      `json:"stats"`
	ErrorCount int       `gorm:"not null;default:0" json:"errorCount"`
}

// TableName overrides the table name for MigrationRun
func (MigrationRun) TableName() string {
	return "migration_runs"
}
