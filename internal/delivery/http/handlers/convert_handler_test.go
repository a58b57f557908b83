package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"docpress/internal/delivery/http/routers"
	"docpress/internal/infrastructure/converter"
	"docpress/internal/usecases"
	"docpress/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConvertApp(t *testing.T, binaries ...string) *fiber.App {
	t.Helper()
	cfg := config.ConvertConfig{
		TmpDir:     t.TempDir(),
		MaxPDFSize: 1024 * 1024,
		Timeout:    time.Minute,
		Binaries:   binaries,
	}
	soffice := converter.NewSoffice(cfg, zap.NewNop())
	svc := usecases.NewConvertService(cfg, soffice, afero.NewOsFs(), zap.NewNop())

	app := fiber.New()
	routers.SetupConvertRoutes(app, svc, zap.NewNop())
	return app
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestConvertWithoutFileReturns400(t *testing.T) {
	app := newConvertApp(t, "/nonexistent")

	req := httptest.NewRequest("POST", "/api/convert/pdf-to-word", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "error")
}

func TestConvertRejectsNonPDF(t *testing.T) {
	app := newConvertApp(t, "/nonexistent")

	buf, contentType := multipartBody(t, "file", "image.png", []byte("x"))
	req := httptest.NewRequest("POST", "/api/convert/pdf-to-word", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestConvertMissingBinaryReturns500(t *testing.T) {
	app := newConvertApp(t, "/nonexistent/a", "/nonexistent/b")

	buf, contentType := multipartBody(t, "file", "doc.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest("POST", "/api/convert/pdf-to-word", buf)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, 60_000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "soffice")
}

func TestDebugSofficeReportsVersion(t *testing.T) {
	script := fakeDebugConverter(t)
	app := newConvertApp(t, script)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/debug/soffice", nil), 30_000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Fake Office 7.6.0.1")
}

func TestDebugSofficeMissingBinaryReturns500(t *testing.T) {
	app := newConvertApp(t, "/nonexistent/soffice")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/debug/soffice", nil), 30_000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func fakeDebugConverter(t *testing.T) string {
	t.Helper()
	script := `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "Fake Office 7.6.0.1"
  exit 0
fi
exit 1
`
	path := filepath.Join(t.TempDir(), "fake-soffice")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestConvertAliasRouteMounted(t *testing.T) {
	app := newConvertApp(t, "/nonexistent")

	req := httptest.NewRequest("POST", "/api/convert/pdf-to-word/word", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	// Same handler behind the alias: missing file is a 400, not a 404.
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
