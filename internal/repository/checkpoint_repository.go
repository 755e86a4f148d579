package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type CheckpointRepository struct {
	DB *gorm.DB
}

func NewCheckpointRepository(db *gorm.DB) *CheckpointRepository {
	return &CheckpointRepository{DB: db}
}

func (r *CheckpointRepository) FindByID(id uint) (*model.Checkpoint, error) {
	var checkpoint model.Checkpoint
	err := r.DB.Preload("Concept").First(&checkpoint, id).Error
	return &checkpoint, err
}

func (r *CheckpointRepository) ListByConcept(conceptID uint) ([]model.Checkpoint, error) {
	var checkpoints []model.Checkpoint
	err := r.DB.Where("concept_id = ?", conceptID).
		Order("`order` ASC, id ASC").
		Find(&checkpoints).Error
	return checkpoints, err
}

func (r *CheckpointRepository) Create(checkpoint *model.Checkpoint) error {
	return r.DB.Create(checkpoint).Error
}

func (r *CheckpointRepository) Update(checkpoint *model.Checkpoint) error {
	return r.DB.Save(checkpoint).Error
}

func (r *CheckpointRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Checkpoint{}, id).Error
}
