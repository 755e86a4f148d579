package service

import (
	"context"
	"errors"
	"fmt"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	activeSessionKeyPrefix = "session:active:"
	activeSessionTTL       = 4 * time.Hour
)

type SessionService struct {
	Repo        *repository.SessionRepository
	ConceptRepo *repository.ConceptRepository
	Redis       *redis.Client
}

func NewSessionService(repo *repository.SessionRepository, conceptRepo *repository.ConceptRepository, rdb *redis.Client) *SessionService {
	return &SessionService{Repo: repo, ConceptRepo: conceptRepo, Redis: rdb}
}

// Start opens a learning session and marks the student active on the
// concept in redis. The marker expires on its own if the client never ends
// the session.
func (s *SessionService) Start(ctx context.Context, studentID, conceptID uint) (*model.LearningSession, error) {
	if _, err := s.ConceptRepo.FindByID(conceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}

	session := &model.LearningSession{
		StudentID: studentID,
		ConceptID: conceptID,
		StartedAt: time.Now(),
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := fmt.Sprintf("%s%d", activeSessionKeyPrefix, studentID)
		s.Redis.Set(ctx, key, session.ID, activeSessionTTL)
	}

	return session, nil
}

func (s *SessionService) End(ctx context.Context, studentID, sessionID uint) (*model.LearningSession, error) {
	session, err := s.Repo.FindByID(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	if session.StudentID != studentID {
		return nil, util.ErrPermissionDenied
	}
	if session.EndedAt != nil {
		return nil, util.ErrSessionEnded
	}

	now := time.Now()
	session.EndedAt = &now
	if err := s.Repo.Update(session); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := fmt.Sprintf("%s%d", activeSessionKeyPrefix, studentID)
		s.Redis.Del(ctx, key)
	}

	return session, nil
}

func (s *SessionService) ListByStudent(studentID uint) ([]model.LearningSession, error) {
	return s.Repo.ListByStudent(studentID)
}
