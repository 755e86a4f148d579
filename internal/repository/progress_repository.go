package repository

import (
	"errors"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/util"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Two concurrent submissions for the same pair must not lose an attempt, so
// the read-modify-write runs under a row lock and the insert path leans on
// the (student_id, concept_id) unique index. A loser of the insert race
// retries and takes the update path.
const maxUpsertRetries = 3

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// RecordAttempt creates or bumps the StudentProgress row for the pair. The
// first attempt creates the row with status in_progress and attempts = 1;
// every later attempt increments the counter and touches the timestamp.
// Status is deliberately never advanced here.
func (r *ProgressRepository) RecordAttempt(studentID, conceptID uint, now time.Time) (*model.StudentProgress, error) {
	for i := 0; i < maxUpsertRetries; i++ {
		progress, err := r.recordAttemptOnce(studentID, conceptID, now)
		if err == nil {
			return progress, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, util.ErrProgressConflict
}

func (r *ProgressRepository) recordAttemptOnce(studentID, conceptID uint, now time.Time) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ? AND concept_id = ?", studentID, conceptID).
			First(&progress).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = model.StudentProgress{
				StudentID:       studentID,
				ConceptID:       conceptID,
				Status:          model.ProgressInProgress,
				Attempts:        1,
				LastAttemptedAt: now,
			}
			return tx.Create(&progress).Error
		}
		if err != nil {
			return err
		}

		progress.Attempts++
		progress.LastAttemptedAt = now
		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) FindByStudentAndConcept(studentID, conceptID uint) (*model.StudentProgress, error) {
	var progress model.StudentProgress
	err := r.DB.Where("student_id = ? AND concept_id = ?", studentID, conceptID).
		First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) ListByStudent(studentID uint) ([]model.StudentProgress, error) {
	var records []model.StudentProgress
	err := r.DB.Where("student_id = ?", studentID).
		Order("concept_id ASC").
		Find(&records).Error
	return records, err
}
