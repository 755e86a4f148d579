package service

import (
	"errors"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"

	"gorm.io/gorm"
)

type ProgressService struct {
	Repo        *repository.ProgressRepository
	ConceptRepo *repository.ConceptRepository
	UserRepo    *repository.UserRepository
}

func NewProgressService(repo *repository.ProgressRepository, conceptRepo *repository.ConceptRepository, userRepo *repository.UserRepository) *ProgressService {
	return &ProgressService{Repo: repo, ConceptRepo: conceptRepo, UserRepo: userRepo}
}

// ConceptProgress joins a progress row with its concept name for display.
type ConceptProgress struct {
	Concept  model.Concept         `json:"concept"`
	Progress model.StudentProgress `json:"progress"`
}

func (s *ProgressService) GetStudentProgress(studentID uint) ([]ConceptProgress, error) {
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	records, err := s.Repo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	result := make([]ConceptProgress, 0, len(records))
	for _, record := range records {
		concept, err := s.ConceptRepo.FindByID(record.ConceptID)
		if err != nil {
			// Concept rows are read-only reference data; a dangling id means
			// the concept was removed, skip it rather than fail the page.
			continue
		}
		result = append(result, ConceptProgress{Concept: *concept, Progress: record})
	}
	return result, nil
}
