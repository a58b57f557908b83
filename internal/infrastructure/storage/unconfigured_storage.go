package storage

import (
	"context"
	"io"

	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"
)

// UnconfiguredStorage stands in when no provider credentials are present and
// the local backend was not opted into. The server still boots, so health,
// download and conversion keep working, but every storage call reports the
// configuration error that explains itself.
type UnconfiguredStorage struct {
	err error
}

func NewUnconfiguredStorage(err error) *UnconfiguredStorage {
	return &UnconfiguredStorage{err: err}
}

func (u *UnconfiguredStorage) Upload(ctx context.Context, r io.Reader, opts repositories.UploadOptions) (*entities.FileRef, error) {
	return nil, u.err
}

func (u *UnconfiguredStorage) Delete(ctx context.Context, publicID string) error {
	return u.err
}
