package usecases

import (
	"bytes"
	"context"
	"encoding/base64"
	"mime/multipart"

	"docpress/internal/domain/dto"
	"docpress/internal/domain/repositories"
	"docpress/pkg/config"
	"docpress/pkg/constants"
	apierrors "docpress/pkg/errors"

	"go.uber.org/zap"
)

// 1x1 transparent PNG used by the provider self test.
const selfTestPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR4nGP4z8DwHwAFVgJt+0DgYQAAAABJRU5ErkJggg=="

type UploadService interface {
	// Upload pushes one multipart file to the media store under
	// <base folder>/<subfolder> with the given coarse resource type.
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, resourceType, subfolder string) (*dto.UploadResponse, error)
	// SelfTest uploads a built-in tiny PNG to verify provider wiring.
	SelfTest(ctx context.Context) (*dto.UploadResponse, error)
}

type uploadService struct {
	storage    repositories.MediaStorage
	baseFolder string
	log        *zap.Logger
}

func NewUploadService(cfg config.CloudinaryConfig, storage repositories.MediaStorage, log *zap.Logger) UploadService {
	return &uploadService{
		storage:    storage,
		baseFolder: cfg.Folder,
		log:        log,
	}
}

func (s *uploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, resourceType, subfolder string) (*dto.UploadResponse, error) {
	if fileHeader == nil {
		return nil, apierrors.ErrNoFile(nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apierrors.ErrInternal(err)
	}
	defer src.Close()

	s.log.Info("upload start",
		zap.String("name", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("resource_type", resourceType))

	ref, err := s.storage.Upload(ctx, src, repositories.UploadOptions{
		Folder:       s.baseFolder + "/" + subfolder,
		ResourceType: resourceType,
		Filename:     fileHeader.Filename,
	})
	if err != nil {
		return nil, apierrors.ErrStorage(err)
	}

	s.log.Info("upload done",
		zap.String("public_id", ref.PublicID),
		zap.Int64("bytes", ref.Bytes),
		zap.String("url", ref.URL))

	return &dto.UploadResponse{
		OK:           true,
		URL:          ref.URL,
		PublicID:     ref.PublicID,
		Bytes:        ref.Bytes,
		Format:       ref.Format,
		ResourceType: ref.ResourceType,
		OriginalName: fileHeader.Filename,
	}, nil
}

func (s *uploadService) SelfTest(ctx context.Context) (*dto.UploadResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(selfTestPNG)
	if err != nil {
		return nil, apierrors.ErrInternal(err)
	}

	ref, err := s.storage.Upload(ctx, bytes.NewReader(raw), repositories.UploadOptions{
		Folder:       s.baseFolder + "/selftest",
		ResourceType: constants.ResourceImage,
		Filename:     "selftest.png",
	})
	if err != nil {
		return nil, apierrors.ErrStorage(err)
	}

	return &dto.UploadResponse{
		OK:           true,
		URL:          ref.URL,
		PublicID:     ref.PublicID,
		Bytes:        ref.Bytes,
		Format:       ref.Format,
		ResourceType: ref.ResourceType,
		OriginalName: "selftest.png",
	}, nil
}
