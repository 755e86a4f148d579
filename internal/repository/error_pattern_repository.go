package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type ErrorPatternRepository struct {
	DB *gorm.DB
}

func NewErrorPatternRepository(db *gorm.DB) *ErrorPatternRepository {
	return &ErrorPatternRepository{DB: db}
}

// ListByCheckpoint returns patterns ordered by id so that confidence ties
// resolve the same way on every call.
func (r *ErrorPatternRepository) ListByCheckpoint(checkpointID uint) ([]model.ErrorPattern, error) {
	var patterns []model.ErrorPattern
	err := r.DB.Where("checkpoint_id = ?", checkpointID).
		Order("id ASC").
		Find(&patterns).Error
	return patterns, err
}

func (r *ErrorPatternRepository) FindByID(id uint) (*model.ErrorPattern, error) {
	var pattern model.ErrorPattern
	err := r.DB.First(&pattern, id).Error
	return &pattern, err
}

func (r *ErrorPatternRepository) Create(pattern *model.ErrorPattern) error {
	return r.DB.Create(pattern).Error
}

func (r *ErrorPatternRepository) Update(pattern *model.ErrorPattern) error {
	return r.DB.Save(pattern).Error
}

func (r *ErrorPatternRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ErrorPattern{}, id).Error
}
