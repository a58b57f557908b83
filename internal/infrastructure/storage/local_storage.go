package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"docpress/internal/domain/entities"
	"docpress/internal/domain/repositories"
	"docpress/pkg/constants"

	"github.com/google/uuid"
)

// LocalStorage keeps assets on disk for development deployments. Files are
// served back under /api/uploads/.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Upload(ctx context.Context, r io.Reader, opts repositories.UploadOptions) (*entities.FileRef, error) {
	name := filepath.Base(opts.Filename)
	if name == "" || name == "." || name == "/" {
		name = "file"
	}
	key := filepath.Join(opts.Folder, uuid.NewString()+"_"+name)
	fullPath := filepath.Join(l.BasePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer outFile.Close()

	written, err := io.Copy(outFile, r)
	if err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = constants.ResourceRaw
	}

	return &entities.FileRef{
		URL:              "/api/uploads/" + filepath.ToSlash(key),
		PublicID:         key,
		Format:           strings.TrimPrefix(filepath.Ext(name), "."),
		Bytes:            written,
		ResourceType:     resourceType,
		OriginalFilename: opts.Filename,
	}, nil
}

func (l *LocalStorage) Delete(ctx context.Context, publicID string) error {
	return os.Remove(filepath.Join(l.BasePath, publicID))
}
