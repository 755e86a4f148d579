package model

// Checkpoint is a single-answer assessment item tied to a concept. The
// correct answer is stored as text; numeric-looking answers are compared
// within Tolerance.
type Checkpoint struct {
	BaseModel
	ConceptID     uint    `gorm:"index;not null" json:"conceptId"`
	Concept       Concept `gorm:"foreignKey:ConceptID" json:"-"`
	Question      string  `gorm:"type:text;not null" json:"question"`
	CorrectAnswer string  `gorm:"size:255;not null" json:"-"`
	Tolerance     float64 `gorm:"default:0.01" json:"tolerance"`
	Order         int     `gorm:"default:0" json:"order"`
}

func (Checkpoint) TableName() string {
	return "checkpoints"
}
