package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"resume-composer/internal/logging/types"
)

// FileAdapter appends log lines to a file and rotates it by size
type FileAdapter struct {
	name        string
	config      FileConfig
	currentFile *os.File
	currentSize int64
	mu          sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath    string      `yaml:"file_path"`     // path to log file
	Format      string      `yaml:"format"`        // json or text
	MaxSize     int64       `yaml:"max_size"`      // rotate once the file reaches this many bytes (0 = never)
	MaxBackups  int         `yaml:"max_backups"`   // rotated files kept as <path>.1 .. <path>.N
	CreateDirs  bool        `yaml:"create_dirs"`   // create parent directories if they don't exist
	FileMode    os.FileMode `yaml:"file_mode"`     // file permissions
	SyncOnWrite bool        `yaml:"sync_on_write"` // fsync after each write
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}
	if config.FileMode == 0 {
		config.FileMode = 0o644
	}
	if config.MaxBackups <= 0 {
		config.MaxBackups = 5
	}
	if config.Format == "" {
		config.Format = "json"
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	adapter := &FileAdapter{name: name, config: config}
	if err := adapter.openFile(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return adapter, nil
}

// Write appends a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	output, err := formatEntry(entry, a.config.Format, false)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		return fmt.Errorf("log file %s is closed", a.config.FilePath)
	}

	if a.config.MaxSize > 0 && a.currentSize >= a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	n, err := a.currentFile.WriteString(output + "\n")
	a.currentSize += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}

	if a.config.SyncOnWrite {
		return a.currentFile.Sync()
	}
	return nil
}

// Close closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		return nil
	}
	err := a.currentFile.Close()
	a.currentFile = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// Health reports whether the file is still open and reachable
func (a *FileAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile == nil {
		return fmt.Errorf("log file is not open")
	}
	if _, err := a.currentFile.Stat(); err != nil {
		return fmt.Errorf("log file is not accessible: %w", err)
	}
	return nil
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func (a *FileAdapter) openFile() error {
	file, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, a.config.FileMode)
	if err != nil {
		return err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	a.currentFile = file
	a.currentSize = stat.Size()
	return nil
}

func backupName(path string, n int) string {
	return fmt.Sprintf("%s.%d", path, n)
}

// rotate shifts <path>.N-1 to <path>.N (dropping the oldest), moves the live file to
// <path>.1 and reopens an empty file. Must be called with a.mu held.
func (a *FileAdapter) rotate() error {
	if err := a.currentFile.Close(); err != nil {
		return fmt.Errorf("failed to close current log file: %w", err)
	}
	a.currentFile = nil

	path := a.config.FilePath
	_ = os.Remove(backupName(path, a.config.MaxBackups))
	for i := a.config.MaxBackups - 1; i >= 1; i-- {
		src := backupName(path, i)
		if _, err := os.Stat(src); err == nil {
			if err := os.Rename(src, backupName(path, i+1)); err != nil {
				return fmt.Errorf("failed to shift backup %s: %w", src, err)
			}
		}
	}

	if err := os.Rename(path, backupName(path, 1)); err != nil {
		return fmt.Errorf("failed to rename log file: %w", err)
	}

	return a.openFile()
}
