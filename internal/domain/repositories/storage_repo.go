package repositories

import (
	"context"
	"io"

	"docpress/internal/domain/entities"
)

// UploadOptions selects where and how the provider stores an asset.
type UploadOptions struct {
	Folder       string
	ResourceType string // image, video or raw
	Filename     string
}

// MediaStorage is the write/delete surface of the media-hosting provider.
type MediaStorage interface {
	Upload(ctx context.Context, r io.Reader, opts UploadOptions) (*entities.FileRef, error)
	// Delete removes the asset at the provider, best effort.
	Delete(ctx context.Context, publicID string) error
}
