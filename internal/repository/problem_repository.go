package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

func (r *ProblemRepository) FindByID(id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("steps.`order` ASC, steps.id ASC")
		}).
		Preload("Steps.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_options.`order` ASC, step_options.id ASC")
		}).
		First(&problem, id).Error
	return &problem, err
}

func (r *ProblemRepository) ListByConcept(conceptID uint) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.Where("concept_id = ?", conceptID).
		Order("id ASC").
		Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) FindStepByID(id uint) (*model.Step, error) {
	var step model.Step
	err := r.DB.First(&step, id).Error
	return &step, err
}

func (r *ProblemRepository) FindOptionByID(id uint) (*model.StepOption, error) {
	var option model.StepOption
	err := r.DB.First(&option, id).Error
	return &option, err
}

// CreateWithSteps persists a problem together with its steps and options in
// one transaction.
func (r *ProblemRepository) CreateWithSteps(problem *model.Problem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(problem).Error
	})
}

func (r *ProblemRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var stepIDs []uint
		if err := tx.Model(&model.Step{}).Where("problem_id = ?", id).Pluck("id", &stepIDs).Error; err != nil {
			return err
		}
		if len(stepIDs) > 0 {
			if err := tx.Where("step_id IN ?", stepIDs).Delete(&model.StepOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("problem_id = ?", id).Delete(&model.Step{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Problem{}, id).Error
	})
}
