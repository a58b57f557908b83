package usecases

import (
	"context"
	"errors"
	"testing"

	"docpress/internal/infrastructure/storage"
	"docpress/pkg/config"
	apierrors "docpress/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUploadWithoutProviderCredentialsFails(t *testing.T) {
	cause := errors.New("missing env: CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_SECRET")
	svc := NewUploadService(config.CloudinaryConfig{Folder: "docpress/docs"},
		storage.NewUnconfiguredStorage(cause), zap.NewNop())

	_, err := svc.Upload(context.Background(),
		makeFileHeader(t, "doc.pdf", []byte("%PDF-1.4")), "raw", "pdfs")

	var ae *apierrors.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "storage_error", ae.Code)
	assert.Contains(t, ae.Err.Error(), "CLOUDINARY_CLOUD_NAME")
}

func TestUploadRejectsMissingFile(t *testing.T) {
	svc := NewUploadService(config.CloudinaryConfig{},
		storage.NewUnconfiguredStorage(errors.New("unconfigured")), zap.NewNop())

	_, err := svc.Upload(context.Background(), nil, "raw", "files")
	var ae *apierrors.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "no_file", ae.Code)
}
