package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type SimulationRepository struct {
	DB *gorm.DB
}

func NewSimulationRepository(db *gorm.DB) *SimulationRepository {
	return &SimulationRepository{DB: db}
}

func (r *SimulationRepository) FindByID(id uint) (*model.Simulation, error) {
	var simulation model.Simulation
	err := r.DB.First(&simulation, id).Error
	return &simulation, err
}

func (r *SimulationRepository) ListByConcept(conceptID uint) ([]model.Simulation, error) {
	var simulations []model.Simulation
	err := r.DB.Where("concept_id = ?", conceptID).
		Order("id ASC").
		Find(&simulations).Error
	return simulations, err
}

func (r *SimulationRepository) Create(simulation *model.Simulation) error {
	return r.DB.Create(simulation).Error
}

func (r *SimulationRepository) Update(simulation *model.Simulation) error {
	return r.DB.Save(simulation).Error
}
