package configs

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var errorLogger *log.Logger

// ErrorLog writes to the dated error log file (and stdout).
func ErrorLog() *log.Logger {
	if errorLogger == nil {
		return log.Default()
	}
	return errorLogger
}

// SetupLogging points the default logger at a dated app log under
// cfg.LogsDir and opens a matching error log, mirroring the
// <date>-app.log / <date>-error.log layout the ops tooling expects.
func SetupLogging(cfg *Config) error {
	if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
		return err
	}

	day := time.Now().Format("2006-01-02")
	appPath := filepath.Join(cfg.LogsDir, fmt.Sprintf("%s-app.log", day))
	errPath := filepath.Join(cfg.LogsDir, fmt.Sprintf("%s-error.log", day))

	appFile, err := os.OpenFile(appPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	errFile, err := os.OpenFile(errPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, appFile))
	errorLogger = log.New(io.MultiWriter(os.Stderr, errFile), "ERROR ", log.LstdFlags)
	return nil
}

// SweepOldLogs deletes rotated log files past the retention window.
// Returns the paths it removed so the log index can be pruned too.
// Paths are absolute, matching how the index keys its rows.
func SweepOldLogs(cfg *Config) ([]string, error) {
	dir, err := filepath.Abs(cfg.LogsDir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -cfg.LogRetentionDays)
	var removed []string
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
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			log.Println("sweep: cannot remove", path, err)
			continue
		}
		removed = append(removed, path)
	}
	return removed, nil
}
