package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	LogLevelApp   = "app"
	LogLevelError = "error"
)

// LogFile mirrors one file under the log directory, upserted by path.
type LogFile struct {
	gorm.Model
	FileName       string    `gorm:"not null" json:"fileName"`
	FilePath       string    `gorm:"uniqueIndex;not null" json:"filePath"`
	Level          string    `gorm:"size:10;not null;default:app" json:"level"`
	SizeBytes      int64     `gorm:"default:0" json:"sizeBytes"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
}
