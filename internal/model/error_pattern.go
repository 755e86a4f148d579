package model

// ErrorPattern is a catalogued wrong-answer signature for a checkpoint.
// TriggerValue may be numeric-looking or plain text; Confidence ranks
// competing matches (higher = more specific).
type ErrorPattern struct {
	BaseModel
	CheckpointID     uint    `gorm:"index;not null" json:"checkpointId"`
	TriggerValue     string  `gorm:"size:255;not null" json:"triggerValue"`
	TriggerTolerance float64 `gorm:"default:0.01" json:"triggerTolerance"`
	Confidence       float64 `gorm:"default:0.5" json:"confidence"`
	Description      string  `gorm:"type:text" json:"description"`
	Remediation      string  `gorm:"type:text" json:"remediation"`
}

func (ErrorPattern) TableName() string {
	return "error_patterns"
}
