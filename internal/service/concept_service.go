package service

import (
	"context"
	"encoding/json"
	"errors"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	conceptListCacheKey = "concepts:all"
	conceptListCacheTTL = 5 * time.Minute
)

type ConceptService struct {
	Repo  *repository.ConceptRepository
	Redis *redis.Client
}

func NewConceptService(repo *repository.ConceptRepository, rdb *redis.Client) *ConceptService {
	return &ConceptService{Repo: repo, Redis: rdb}
}

// List serves the concept catalogue from redis when possible; the catalogue
// changes rarely and is read on almost every page.
func (s *ConceptService) List(ctx context.Context) ([]model.Concept, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, conceptListCacheKey).Result(); err == nil {
			var cached []model.Concept
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	concepts, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(concepts); err == nil {
			s.Redis.Set(ctx, conceptListCacheKey, data, conceptListCacheTTL)
		}
	}

	return concepts, nil
}

func (s *ConceptService) Get(id uint) (*model.Concept, error) {
	concept, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrConceptNotFound
	}
	if err != nil {
		return nil, err
	}
	return concept, nil
}

type ConceptRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (s *ConceptService) Create(ctx context.Context, req ConceptRequest) (*model.Concept, error) {
	concept := &model.Concept{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.Repo.Create(concept); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return concept, nil
}

func (s *ConceptService) Update(ctx context.Context, id uint, req ConceptRequest) (*model.Concept, error) {
	concept, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	concept.Name = req.Name
	concept.Slug = req.Slug
	concept.Description = req.Description
	concept.Order = req.Order
	if err := s.Repo.Update(concept); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return concept, nil
}

func (s *ConceptService) invalidateCache(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, conceptListCacheKey)
	}
}
