package model

import "time"

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
)

// StudentProgress is the per-(student, concept) attempt record. One row per
// pair, created lazily on the first checkpoint attempt and mutated in place
// on every subsequent one.
type StudentProgress struct {
	BaseModel
	StudentID       uint           `gorm:"not null;uniqueIndex:idx_student_concept,priority:1" json:"studentId"`
	ConceptID       uint           `gorm:"not null;uniqueIndex:idx_student_concept,priority:2" json:"conceptId"`
	Status          ProgressStatus `gorm:"type:enum('not_started','in_progress','completed');default:'not_started'" json:"status"`
	Attempts        int            `gorm:"default:0" json:"attempts"`
	LastAttemptedAt time.Time      `json:"lastAttemptedAt"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}
