package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"
	"docpress/pkg/config"
	"docpress/pkg/constants"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cfg config.CloudinaryConfig) (*CloudinaryStorage, error) {
	var missing []string
	if cfg.CloudName == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if cfg.APISecret == "" {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing env: %s", strings.Join(missing, ", "))
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, opts repositories.UploadOptions) (*entities.FileRef, error) {
	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = constants.ResourceRaw
	}

	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         opts.Folder,
		ResourceType:   resourceType,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return &entities.FileRef{
		URL:              res.SecureURL,
		PublicID:         res.PublicID,
		Format:           res.Format,
		Bytes:            int64(res.Bytes),
		ResourceType:     res.ResourceType,
		OriginalFilename: opts.Filename,
	}, nil
}

// Delete destroys an asset by public id. The destroy endpoint has no "auto"
// resource type, so the concrete types are tried until one owns the id.
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	var lastErr error
	for _, resourceType := range []string{constants.ResourceRaw, constants.ResourceImage, constants.ResourceVideo} {
		res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
			PublicID:     publicID,
			ResourceType: resourceType,
		})
		if err != nil {
			lastErr = err
			continue
		}
		if res.Result == "ok" {
			return nil
		}
		lastErr = fmt.Errorf("destroy %s/%s: %s", resourceType, publicID, res.Result)
	}
	return lastErr
}
