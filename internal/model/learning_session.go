package model

import "time"

// LearningSession brackets one study sitting on a concept.
type LearningSession struct {
	BaseModel
	StudentID uint       `gorm:"index;not null" json:"studentId"`
	ConceptID uint       `gorm:"index;not null" json:"conceptId"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}
