package repository

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

type LogFileRepository struct {
	DB *gorm.DB
}

func NewLogFileRepository(db *gorm.DB) *LogFileRepository {
	return &LogFileRepository{DB: db}
}

// Upsert keys on file_path, which is unique.
func (r *LogFileRepository) Upsert(lf *entity.LogFile) error {
	var exist entity.LogFile
	err := r.DB.Where("file_path = ?", lf.FilePath).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(lf).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&exist).Updates(map[string]any{
		"file_name":        lf.FileName,
		"level":            lf.Level,
		"size_bytes":       lf.SizeBytes,
		"last_modified_at": lf.LastModifiedAt,
	}).Error
}

func (r *LogFileRepository) DeleteByPath(path string) error {
	return r.DB.Unscoped().Where("file_path = ?", path).Delete(&entity.LogFile{}).Error
}

func (r *LogFileRepository) List() ([]entity.LogFile, error) {
	var files []entity.LogFile
	err := r.DB.Order("last_modified_at DESC").Find(&files).Error
	return files, err
}
