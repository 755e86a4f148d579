package repository

import (
	"sikshyamap_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.LearningSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.LearningSession, error) {
	var session model.LearningSession
	err := r.DB.First(&session, id).Error
	return &session, err
}

func (r *SessionRepository) Update(session *model.LearningSession) error {
	return r.DB.Save(session).Error
}

func (r *SessionRepository) ListByStudent(studentID uint) ([]model.LearningSession, error) {
	var sessions []model.LearningSession
	err := r.DB.Where("student_id = ?", studentID).
		Order("started_at DESC").
		Find(&sessions).Error
	return sessions, err
}
