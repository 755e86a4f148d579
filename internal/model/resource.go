package model

type ResourceType string

const (
	ResourceVideo    ResourceType = "video"
	ResourceDocument ResourceType = "document"
	ResourceLink     ResourceType = "link"
)

// Resource is a learning material attached to a concept.
type Resource struct {
	BaseModel
	ConceptID uint         `gorm:"index;not null" json:"conceptId"`
	Title     string       `gorm:"size:255;not null" json:"title"`
	Type      ResourceType `gorm:"type:enum('video','document','link');default:'link'" json:"type"`
	URL       string       `gorm:"size:512" json:"url"`
	Duration  float64      `gorm:"default:0" json:"duration"` // seconds, videos only
	Size      int64        `gorm:"default:0" json:"size"`
}

func (Resource) TableName() string {
	return "resources"
}
