package usecases

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"docpress/internal/infrastructure/converter"
	"docpress/pkg/config"
	apierrors "docpress/pkg/errors"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ConvertedDoc is a finished conversion, read back into memory so the
// temporary files can be removed before the response goes out.
type ConvertedDoc struct {
	Filename string
	Content  []byte
}

// ConversionFailure wraps a non-success converter result so the handler can
// surface the captured diagnostics.
type ConversionFailure struct {
	Result converter.Result
}

func (e *ConversionFailure) Error() string {
	if e.Result.Err != nil {
		return fmt.Sprintf("conversion %s: %v", e.Result.Outcome, e.Result.Err)
	}
	return fmt.Sprintf("conversion %s", e.Result.Outcome)
}

type ConvertService interface {
	PdfToWord(ctx context.Context, fileHeader *multipart.FileHeader) (*ConvertedDoc, error)
	// ConverterVersion probes the office binary for the diagnostics endpoint.
	ConverterVersion(ctx context.Context) (bin, version string, err error)
}

type convertService struct {
	soffice *converter.Soffice
	fs      afero.Fs
	tmpDir  string
	maxSize int64
	log     *zap.Logger
}

func NewConvertService(cfg config.ConvertConfig, soffice *converter.Soffice, fs afero.Fs, log *zap.Logger) ConvertService {
	return &convertService{
		soffice: soffice,
		fs:      fs,
		tmpDir:  cfg.TmpDir,
		maxSize: cfg.MaxPDFSize,
		log:     log,
	}
}

func (s *convertService) PdfToWord(ctx context.Context, fileHeader *multipart.FileHeader) (*ConvertedDoc, error) {
	if fileHeader == nil {
		return nil, apierrors.ErrNoFile(nil)
	}
	name := fileHeader.Filename
	if name == "" {
		name = "document.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return nil, apierrors.ErrNotPDF(fmt.Errorf("got %q", name))
	}
	if fileHeader.Size > s.maxSize {
		return nil, apierrors.ErrFileTooLarge(fmt.Errorf("%d bytes, limit %d", fileHeader.Size, s.maxSize))
	}

	bin, err := s.soffice.Detect(ctx)
	if err != nil {
		return nil, apierrors.ErrConverterMissing(err)
	}

	// Fresh workspace per request; concurrent conversions never share
	// converter state or lock files.
	id := uuid.NewString()
	inPath := filepath.Join(s.tmpDir, id+".pdf")
	outPath := filepath.Join(s.tmpDir, id+".docx")
	profileDir := filepath.Join(s.tmpDir, "lo-profile-"+id)
	defer s.cleanup(inPath, outPath, profileDir)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, apierrors.ErrInternal(err)
	}
	defer src.Close()

	if err := afero.WriteReader(s.fs, inPath, src); err != nil {
		return nil, apierrors.ErrInternal(err)
	}
	if err := s.fs.MkdirAll(profileDir, 0755); err != nil {
		return nil, apierrors.ErrInternal(err)
	}

	res := s.soffice.Convert(ctx, bin, inPath, s.tmpDir, profileDir)
	if res.Outcome != converter.Succeeded {
		return nil, &ConversionFailure{Result: res}
	}

	content, err := afero.ReadFile(s.fs, res.OutputPath)
	if err != nil {
		res.Outcome = converter.ReadbackError
		res.Err = err
		return nil, &ConversionFailure{Result: res}
	}

	base := name[:len(name)-len(".pdf")]
	return &ConvertedDoc{
		Filename: base + ".docx",
		Content:  content,
	}, nil
}

func (s *convertService) ConverterVersion(ctx context.Context) (string, string, error) {
	return s.soffice.Version(ctx)
}

func (s *convertService) cleanup(paths ...string) {
	for _, p := range paths {
		if err := s.fs.RemoveAll(p); err != nil {
			s.log.Warn("conversion cleanup failed", zap.String("path", p), zap.Error(err))
		}
	}
}
