package service

import (
	"encoding/json"
	"errors"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"

	"gorm.io/gorm"
)

type SimulationService struct {
	Repo        *repository.SimulationRepository
	ConceptRepo *repository.ConceptRepository
}

func NewSimulationService(repo *repository.SimulationRepository, conceptRepo *repository.ConceptRepository) *SimulationService {
	return &SimulationService{Repo: repo, ConceptRepo: conceptRepo}
}

func (s *SimulationService) ListByConcept(conceptID uint) ([]model.Simulation, error) {
	if _, err := s.ConceptRepo.FindByID(conceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}
	return s.Repo.ListByConcept(conceptID)
}

func (s *SimulationService) Get(id uint) (*model.Simulation, error) {
	simulation, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSimulationNotFound
	}
	if err != nil {
		return nil, err
	}
	return simulation, nil
}

type SimulationRequest struct {
	ConceptID uint            `json:"conceptId" binding:"required"`
	Title     string          `json:"title" binding:"required"`
	Config    json.RawMessage `json:"config" binding:"required"`
}

func (s *SimulationService) Create(req SimulationRequest) (*model.Simulation, error) {
	if _, err := s.ConceptRepo.FindByID(req.ConceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}

	simulation := &model.Simulation{
		ConceptID: req.ConceptID,
		Title:     req.Title,
		Config:    req.Config,
	}
	if err := s.Repo.Create(simulation); err != nil {
		return nil, err
	}
	return simulation, nil
}
