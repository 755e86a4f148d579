package model

// Concept is a topic being taught. Checkpoints, problems, resources and
// simulations all hang off a concept.
type Concept struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
}

func (Concept) TableName() string {
	return "concepts"
}
