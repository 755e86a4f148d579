package model

import "encoding/json"

// Simulation holds the renderer config for an interactive concept demo.
// The backend only stores and serves the config; rendering happens client
// side.
type Simulation struct {
	BaseModel
	ConceptID uint            `gorm:"index;not null" json:"conceptId"`
	Title     string          `gorm:"size:255;not null" json:"title"`
	Config    json.RawMessage `gorm:"type:json" json:"config"`
}

func (Simulation) TableName() string {
	return "simulations"
}
