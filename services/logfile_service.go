package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
)

// LogFileService mirrors the log directory into the log_files table so
// ops tooling can query it without filesystem access.
type LogFileService struct {
	Repo *repository.LogFileRepository
}

func NewLogFileService(repo *repository.LogFileRepository) *LogFileService {
	return &LogFileService{Repo: repo}
}

// SyncDir upserts every *.log / *.gz under dir by absolute path. A
// missing directory is not an error; there is simply nothing to index.
func (s *LogFileService) SyncDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".log") && !strings.HasSuffix(name, ".gz") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}

		level := entity.LogLevelApp
		if strings.Contains(name, "error") {
			level = entity.LogLevelError
		}

		lf := &entity.LogFile{
			FileName:       name,
			FilePath:       filepath.Join(abs, name),
			Level:          level,
			SizeBytes:      info.Size(),
			LastModifiedAt: info.ModTime(),
		}
		if err := s.Repo.Upsert(lf); err != nil {
			return err
		}
	}
	return nil
}

// Prune drops index rows for files the retention sweep removed.
func (s *LogFileService) Prune(removedPaths []string) error {
	for _, p := range removedPaths {
		if err := s.Repo.DeleteByPath(p); err != nil {
			return err
		}
	}
	return nil
}
