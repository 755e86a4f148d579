package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type ConceptRepository struct {
	DB *gorm.DB
}

func NewConceptRepository(db *gorm.DB) *ConceptRepository {
	return &ConceptRepository{DB: db}
}

func (r *ConceptRepository) FindByID(id uint) (*model.Concept, error) {
	var concept model.Concept
	err := r.DB.First(&concept, id).Error
	return &concept, err
}

func (r *ConceptRepository) List() ([]model.Concept, error) {
	var concepts []model.Concept
	err := r.DB.Order("`order` ASC, id ASC").Find(&concepts).Error
	return concepts, err
}

func (r *ConceptRepository) Create(concept *model.Concept) error {
	return r.DB.Create(concept).Error
}

func (r *ConceptRepository) Update(concept *model.Concept) error {
	return r.DB.Save(concept).Error
}

func (r *ConceptRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Concept{}, id).Error
}
