package usecases

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"docpress/internal/infrastructure/converter"
	"docpress/pkg/config"
	apierrors "docpress/pkg/errors"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

// The script mimicking soffice parses --outdir and the input path the same
// way the real binary is invoked.
func fakeConverterScript(t *testing.T, body string) string {
	t.Helper()
	script := `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "Fake Office 7.6.0.1"
  exit 0
fi
outdir=""
input=""
while [ $# -gt 0 ]; do
  case "$1" in
    --outdir) outdir="$2"; shift 2 ;;
    --convert-to) shift 2 ;;
    *) input="$1"; shift ;;
  esac
done
` + body + "\n"
	path := filepath.Join(t.TempDir(), "fake-soffice")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func newTestConvertService(t *testing.T, timeout time.Duration, binaries ...string) (ConvertService, string) {
	t.Helper()
	cfg := config.ConvertConfig{
		TmpDir:     t.TempDir(),
		MaxPDFSize: 1024 * 1024,
		Timeout:    timeout,
		Binaries:   binaries,
	}
	soffice := converter.NewSoffice(cfg, zap.NewNop())
	return NewConvertService(cfg, soffice, afero.NewOsFs(), zap.NewNop()), cfg.TmpDir
}

func workspaceEmpty(t *testing.T, tmpDir string) bool {
	t.Helper()
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	return len(entries) == 0
}

func TestPdfToWordRejectsMissingFile(t *testing.T) {
	svc, _ := newTestConvertService(t, time.Minute, "/nonexistent")

	_, err := svc.PdfToWord(context.Background(), nil)
	var ae *apierrors.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "no_file", ae.Code)
}

func TestPdfToWordRejectsNonPDF(t *testing.T) {
	svc, _ := newTestConvertService(t, time.Minute, "/nonexistent")

	_, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "photo.png", []byte("x")))
	var ae *apierrors.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "not_pdf", ae.Code)
}

func TestPdfToWordRejectsOversized(t *testing.T) {
	svc, _ := newTestConvertService(t, time.Minute, "/nonexistent")

	big := make([]byte, 2*1024*1024)
	_, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "big.pdf", big))
	var ae *apierrors.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "file_too_large", ae.Code)
}

func TestPdfToWordConverterMissing(t *testing.T) {
	svc, tmpDir := newTestConvertService(t, time.Minute, "/nonexistent/a", "/nonexistent/b")

	_, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "doc.pdf", []byte("%PDF-1.4")))
	var ae *apierrors.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "converter_missing", ae.Code)
	assert.True(t, workspaceEmpty(t, tmpDir), "no workspace should have been created")
}

func TestPdfToWordSuccessCleansWorkspace(t *testing.T) {
	script := fakeConverterScript(t, `
base=$(basename "$input" .pdf)
printf docx-bytes > "$outdir/$base.docx"`)
	svc, tmpDir := newTestConvertService(t, time.Minute, script)

	doc, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "Mon Rapport.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.Equal(t, "Mon Rapport.docx", doc.Filename)
	assert.Equal(t, "docx-bytes", string(doc.Content))
	assert.True(t, workspaceEmpty(t, tmpDir), "input, output and profile must be removed")
}

func TestPdfToWordUppercaseExtension(t *testing.T) {
	script := fakeConverterScript(t, `
base=$(basename "$input" .pdf)
printf d > "$outdir/$base.docx"`)
	svc, _ := newTestConvertService(t, time.Minute, script)

	doc, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "SCAN.PDF", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, "SCAN.docx", doc.Filename)
}

func TestPdfToWordFailureCleansWorkspace(t *testing.T) {
	script := fakeConverterScript(t, `exit 77`)
	svc, tmpDir := newTestConvertService(t, time.Minute, script)

	_, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "doc.pdf", []byte("%PDF-1.4")))
	var failure *ConversionFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, converter.ExitError, failure.Result.Outcome)
	assert.Equal(t, 77, failure.Result.ExitCode)
	assert.True(t, workspaceEmpty(t, tmpDir))
}

func TestPdfToWordTimeoutCleansWorkspace(t *testing.T) {
	script := fakeConverterScript(t, `sleep 30`)
	svc, tmpDir := newTestConvertService(t, 200*time.Millisecond, script)

	_, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "doc.pdf", []byte("%PDF-1.4")))
	var failure *ConversionFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, converter.TimedOut, failure.Result.Outcome)
	assert.True(t, failure.Result.KilledByTimeout)
	assert.True(t, workspaceEmpty(t, tmpDir))
}

func TestPdfToWordReadbackFailure(t *testing.T) {
	script := fakeConverterScript(t, `exit 0`)
	svc, tmpDir := newTestConvertService(t, time.Minute, script)

	_, err := svc.PdfToWord(context.Background(), makeFileHeader(t, "doc.pdf", []byte("%PDF-1.4")))
	var failure *ConversionFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, converter.ReadbackError, failure.Result.Outcome)
	assert.True(t, workspaceEmpty(t, tmpDir))
}
