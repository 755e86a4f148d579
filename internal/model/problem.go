package model

// Problem is a multi-step problem belonging to a concept. Students work
// through its steps in order, picking one option per step.
type Problem struct {
	BaseModel
	ConceptID   uint   `gorm:"index;not null" json:"conceptId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Steps       []Step `gorm:"foreignKey:ProblemID" json:"steps,omitempty"`
}

func (Problem) TableName() string {
	return "problems"
}

// Step is one stage of a multi-step problem. StepDescription doubles as the
// first-attempt hint; Explanation is revealed only on a correct answer.
type Step struct {
	BaseModel
	ProblemID       uint         `gorm:"index;not null" json:"problemId"`
	Order           int          `gorm:"default:0" json:"order"`
	StepDescription string       `gorm:"type:text" json:"stepDescription"`
	CorrectAnswer   string       `gorm:"type:text" json:"-"`
	Explanation     string       `gorm:"type:text" json:"-"`
	Options         []StepOption `gorm:"foreignKey:StepID" json:"options,omitempty"`
}

func (Step) TableName() string {
	return "steps"
}

type StepOption struct {
	BaseModel
	StepID     uint   `gorm:"index;not null" json:"stepId"`
	OptionText string `gorm:"type:text;not null" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
	Order      int    `gorm:"default:0" json:"order"`
}

func (StepOption) TableName() string {
	return "step_options"
}
