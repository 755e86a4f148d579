package service

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"sikshyamap_backend/internal/model"
	"sikshyamap_backend/internal/repository"
	"sikshyamap_backend/internal/util"
	"sikshyamap_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ResourceService struct {
	Repo        *repository.ResourceRepository
	ConceptRepo *repository.ConceptRepository
	Storage     *StorageService
}

func NewResourceService(repo *repository.ResourceRepository, conceptRepo *repository.ConceptRepository, storage *StorageService) *ResourceService {
	return &ResourceService{Repo: repo, ConceptRepo: conceptRepo, Storage: storage}
}

func (s *ResourceService) ListByConcept(conceptID uint) ([]model.Resource, error) {
	if _, err := s.ConceptRepo.FindByID(conceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}
	return s.Repo.ListByConcept(conceptID)
}

type ResourceLinkRequest struct {
	ConceptID uint   `json:"conceptId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	URL       string `json:"url" binding:"required"`
}

func (s *ResourceService) CreateLink(req ResourceLinkRequest) (*model.Resource, error) {
	if _, err := s.ConceptRepo.FindByID(req.ConceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}

	resource := &model.Resource{
		ConceptID: req.ConceptID,
		Title:     req.Title,
		Type:      model.ResourceLink,
		URL:       req.URL,
	}
	if err := s.Repo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// UploadFile stores an uploaded file and records it as a resource. Video
// uploads are probed for duration so the frontend can show it.
func (s *ResourceService) UploadFile(ctx context.Context, conceptID uint, title string, fileHeader *multipart.FileHeader) (*model.Resource, error) {
	if _, err := s.ConceptRepo.FindByID(conceptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConceptNotFound
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	objectName := "resources/" + model.GenerateUUID() + ext

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	url, err := s.Storage.Upload(ctx, objectName, file, fileHeader.Size, contentType)
	if err != nil {
		return nil, err
	}

	resource := &model.Resource{
		ConceptID: conceptID,
		Title:     title,
		Type:      model.ResourceDocument,
		URL:       url,
		Size:      fileHeader.Size,
	}

	if isVideoExtension(ext) {
		resource.Type = model.ResourceVideo
		if duration, err := probeUploadDuration(fileHeader); err == nil {
			resource.Duration = duration
		} else {
			logger.Log.Warn("failed to probe video duration", zap.String("file", fileHeader.Filename), zap.Error(err))
		}
	}

	if err := s.Repo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrResourceNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}

func isVideoExtension(ext string) bool {
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// probeUploadDuration spools the upload to a temp file so ffprobe can read
// it.
func probeUploadDuration(fileHeader *multipart.FileHeader) (float64, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "resource-probe-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.ReadFrom(src); err != nil {
		return 0, err
	}

	info, err := util.GetVideoInfo(tmp.Name())
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}
