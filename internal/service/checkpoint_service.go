package service

import (
	"errors"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"

	"gorm.io/gorm"
)

// CheckpointService covers the authoring side of checkpoints and their
// error patterns. Grading lives in DiagnosticService.
type CheckpointService struct {
	Repo        *repository.CheckpointRepository
	PatternRepo *repository.ErrorPatternRepository
	ConceptRepo *repository.ConceptRepository
}

func NewCheckpointService(repo *repository.CheckpointRepository, patternRepo *repository.ErrorPatternRepository, conceptRepo *repository.ConceptRepository) *CheckpointService {
	return &CheckpointService{Repo: repo, PatternRepo: patternRepo, ConceptRepo: conceptRepo}
}

func (s *CheckpointService) ListByConcept(conceptID uint) ([]model.Checkpoint, error) {
	if _, err := s.ConceptRepo.FindByID(conceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}
	return s.Repo.ListByConcept(conceptID)
}

func (s *CheckpointService) Get(id uint) (*model.Checkpoint, error) {
	checkpoint, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCheckpointNotFound
	}
	if err != nil {
		return nil, err
	}
	return checkpoint, nil
}

type CheckpointRequest struct {
	ConceptID     uint    `json:"conceptId" binding:"required"`
	Question      string  `json:"question" binding:"required"`
	CorrectAnswer string  `json:"correctAnswer" binding:"required"`
	Tolerance     float64 `json:"tolerance"`
	Order         int     `json:"order"`
}

func (s *CheckpointService) Create(req CheckpointRequest) (*model.Checkpoint, error) {
	if _, err := s.ConceptRepo.FindByID(req.ConceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}

	checkpoint := &model.Checkpoint{
		ConceptID:     req.ConceptID,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		Tolerance:     req.Tolerance,
		Order:         req.Order,
	}
	if checkpoint.Tolerance == 0 {
		checkpoint.Tolerance = 0.01
	}
	if err := s.Repo.Create(checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

func (s *CheckpointService) Update(id uint, req CheckpointRequest) (*model.Checkpoint, error) {
	checkpoint, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	checkpoint.ConceptID = req.ConceptID
	checkpoint.Question = req.Question
	checkpoint.CorrectAnswer = req.CorrectAnswer
	if req.Tolerance > 0 {
		checkpoint.Tolerance = req.Tolerance
	}
	checkpoint.Order = req.Order
	if err := s.Repo.Update(checkpoint); err != nil {
		return nil, err
	}
	return checkpoint, nil
}

func (s *CheckpointService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *CheckpointService) ListPatterns(checkpointID uint) ([]model.ErrorPattern, error) {
	if _, err := s.Get(checkpointID); err != nil {
		return nil, err
	}
	return s.PatternRepo.ListByCheckpoint(checkpointID)
}

type ErrorPatternRequest struct {
	TriggerValue     string  `json:"triggerValue" binding:"required"`
	TriggerTolerance float64 `json:"triggerTolerance"`
	Confidence       float64 `json:"confidence"`
	Description      string  `json:"description" binding:"required"`
	Remediation      string  `json:"remediation"`
}

func (s *CheckpointService) CreatePattern(checkpointID uint, req ErrorPatternRequest) (*model.ErrorPattern, error) {
	if _, err := s.Get(checkpointID); err != nil {
		return nil, err
	}

	pattern := &model.ErrorPattern{
		CheckpointID:     checkpointID,
		TriggerValue:     req.TriggerValue,
		TriggerTolerance: req.TriggerTolerance,
		Confidence:       req.Confidence,
		Description:      req.Description,
		Remediation:      req.Remediation,
	}
	if pattern.TriggerTolerance == 0 {
		pattern.TriggerTolerance = 0.01
	}
	if pattern.Confidence == 0 {
		pattern.Confidence = 0.5
	}
	if err := s.PatternRepo.Create(pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}

func (s *CheckpointService) DeletePattern(id uint) error {
	if _, err := s.PatternRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPatternNotFound
		}
		return err
	}
	return s.PatternRepo.Delete(id)
}
