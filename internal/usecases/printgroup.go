package usecases

import (
	"context"
	"fmt"
	"strings"

	"docpress/internal/domain/dto"
	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"
	"docpress/pkg/constants"
	apierrors "docpress/pkg/errors"

	"go.uber.org/zap"
)

type PrintGroupService interface {
	Create(ctx context.Context, req *dto.CreateGroupRequestDTO) (string, error)
	List(ctx context.Context) ([]entities.PrintGroup, error)
	// RemoveFile deletes an asset at the provider (best effort) and pulls its
	// reference out of every group. Exactly one of publicID/url must be set.
	RemoveFile(ctx context.Context, publicID, url string) (int64, error)
}

type printGroupService struct {
	repo    repositories.PrintGroupRepository
	storage repositories.MediaStorage
	log     *zap.Logger
}

func NewPrintGroupService(repo repositories.PrintGroupRepository, storage repositories.MediaStorage, log *zap.Logger) PrintGroupService {
	return &printGroupService{
		repo:    repo,
		storage: storage,
		log:     log,
	}
}

func (s *printGroupService) Create(ctx context.Context, req *dto.CreateGroupRequestDTO) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(req.Files) == 0 {
		return "", apierrors.ErrMissingParam("name + files required")
	}

	files := make([]entities.FileRef, 0, len(req.Files))
	for _, f := range req.Files {
		if f.URL == "" {
			return "", apierrors.ErrMissingParam("every file needs a url")
		}
		resourceType := f.ResourceType
		if resourceType == "" {
			resourceType = constants.ResourceRaw
		}
		files = append(files, entities.FileRef{
			URL:              f.URL,
			PublicID:         f.PublicID,
			Format:           f.Format,
			Bytes:            f.Bytes,
			ResourceType:     resourceType,
			OriginalFilename: f.OriginalFilename,
		})
	}

	id, err := s.repo.Create(ctx, &entities.PrintGroup{
		Name:  name,
		Note:  strings.TrimSpace(req.Note),
		Files: files,
	})
	if err != nil {
		return "", apierrors.ErrDatabase(err)
	}
	return id, nil
}

func (s *printGroupService) List(ctx context.Context) ([]entities.PrintGroup, error) {
	groups, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierrors.ErrDatabase(err)
	}
	return groups, nil
}

func (s *printGroupService) RemoveFile(ctx context.Context, publicID, url string) (int64, error) {
	if publicID == "" && url == "" {
		return 0, apierrors.ErrMissingParam("public_id or url required")
	}

	if publicID != "" {
		// Provider-side deletion is best effort; a dangling remote asset is
		// preferable to a metadata record we can never clean up.
		if err := s.storage.Delete(ctx, publicID); err != nil {
			s.log.Warn("provider delete failed", zap.String("public_id", publicID), zap.Error(err))
		}
		updated, err := s.repo.RemoveFileByPublicID(ctx, publicID)
		if err != nil {
			return 0, apierrors.ErrDatabase(err)
		}
		return updated, nil
	}

	updated, err := s.repo.RemoveFileByURL(ctx, url)
	if err != nil {
		return 0, apierrors.ErrDatabase(fmt.Errorf("remove by url: %w", err))
	}
	return updated, nil
}
