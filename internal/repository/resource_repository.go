package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) FindByID(id uint) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.First(&resource, id).Error
	return &resource, err
}

func (r *ResourceRepository) ListByConcept(conceptID uint) ([]model.Resource, error) {
	var resources []model.Resource
	err := r.DB.Where("concept_id = ?", conceptID).
		Order("id ASC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Resource{}, id).Error
}
