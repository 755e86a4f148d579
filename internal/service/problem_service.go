package service

import (
	"errors"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"

	"gorm.io/gorm"
)

type ProblemService struct {
	Repo        *repository.ProblemRepository
	ConceptRepo *repository.ConceptRepository
}

func NewProblemService(repo *repository.ProblemRepository, conceptRepo *repository.ConceptRepository) *ProblemService {
	return &ProblemService{Repo: repo, ConceptRepo: conceptRepo}
}

// StudentStep is a step stripped of its answer key and explanation.
type StudentStep struct {
	ID              uint                `json:"id"`
	Order           int                 `json:"order"`
	StepDescription string              `json:"stepDescription"`
	Options         []StudentStepOption `json:"options"`
}

type StudentStepOption struct {
	ID         uint   `json:"id"`
	OptionText string `json:"optionText"`
}

type StudentProblem struct {
	ID          uint          `json:"id"`
	ConceptID   uint          `json:"conceptId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []StudentStep `json:"steps"`
}

// GetForStudent returns a problem with correctness flags and explanations
// withheld.
func (s *ProblemService) GetForStudent(id uint) (*StudentProblem, error) {
	problem, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	}
	if err != nil {
		return nil, err
	}

	steps := make([]StudentStep, len(problem.Steps))
	for i, step := range problem.Steps {
		options := make([]StudentStepOption, len(step.Options))
		for j, opt := range step.Options {
			options[j] = StudentStepOption{ID: opt.ID, OptionText: opt.OptionText}
		}
		steps[i] = StudentStep{
			ID:              step.ID,
			Order:           step.Order,
			StepDescription: step.StepDescription,
			Options:         options,
		}
	}

	return &StudentProblem{
		ID:          problem.ID,
		ConceptID:   problem.ConceptID,
		Title:       problem.Title,
		Description: problem.Description,
		Steps:       steps,
	}, nil
}

func (s *ProblemService) ListByConcept(conceptID uint) ([]model.Problem, error) {
	if _, err := s.ConceptRepo.FindByID(conceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}
	return s.Repo.ListByConcept(conceptID)
}

type StepOptionRequest struct {
	OptionText string `json:"optionText" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
	Order      int    `json:"order"`
}

type StepRequest struct {
	Order           int                 `json:"order"`
	StepDescription string              `json:"stepDescription" binding:"required"`
	CorrectAnswer   string              `json:"correctAnswer" binding:"required"`
	Explanation     string              `json:"explanation"`
	Options         []StepOptionRequest `json:"options" binding:"required,min=2"`
}

type ProblemRequest struct {
	ConceptID   uint          `json:"conceptId" binding:"required"`
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description"`
	Steps       []StepRequest `json:"steps" binding:"required,min=1"`
}

func (s *ProblemService) Create(req ProblemRequest) (*model.Problem, error) {
	if _, err := s.ConceptRepo.FindByID(req.ConceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}

	problem := &model.Problem{
		ConceptID:   req.ConceptID,
		Title:       req.Title,
		Description: req.Description,
	}
	for _, stepReq := range req.Steps {
		step := model.Step{
			Order:           stepReq.Order,
			StepDescription: stepReq.StepDescription,
			CorrectAnswer:   stepReq.CorrectAnswer,
			Explanation:     stepReq.Explanation,
		}
		for _, optReq := range stepReq.Options {
			step.Options = append(step.Options, model.StepOption{
				OptionText: optReq.OptionText,
				IsCorrect:  optReq.IsCorrect,
				Order:      optReq.Order,
			})
		}
		problem.Steps = append(problem.Steps, step)
	}

	if err := s.Repo.CreateWithSteps(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *ProblemService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrProblemNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}
