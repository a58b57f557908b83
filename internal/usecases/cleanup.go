package usecases

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"docpress/pkg/config"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Conversion artifacts carry UUID basenames, so only our own leftovers match.
var workspaceFileRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(pdf|docx)$`)

type JanitorService interface {
	// SweepOnce removes conversion workspaces older than maxAge. Covers
	// artifacts orphaned by crashes, where the per-request cleanup never ran.
	SweepOnce(maxAge time.Duration) error
}

type janitorService struct {
	fs     afero.Fs
	tmpDir string
	log    *zap.Logger
}

func NewJanitorService(cfg config.ConvertConfig, fs afero.Fs, log *zap.Logger) JanitorService {
	return &janitorService{
		fs:     fs,
		tmpDir: cfg.TmpDir,
		log:    log,
	}
}

func (s *janitorService) SweepOnce(maxAge time.Duration) error {
	entries, err := afero.ReadDir(s.fs, s.tmpDir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !s.isConversionArtifact(entry.Name(), entry.IsDir()) {
			continue
		}
		if entry.ModTime().After(cutoff) {
			continue
		}
		full := filepath.Join(s.tmpDir, entry.Name())
		if err := s.fs.RemoveAll(full); err != nil {
			s.log.Warn("janitor remove failed", zap.String("path", full), zap.Error(err))
			continue
		}
		s.log.Info("removed stale conversion artifact", zap.String("path", full))
	}
	return nil
}

func (s *janitorService) isConversionArtifact(name string, isDir bool) bool {
	if isDir {
		return strings.HasPrefix(name, "lo-profile-")
	}
	return workspaceFileRe.MatchString(name)
}
