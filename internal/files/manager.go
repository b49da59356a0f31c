package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultLogName is the markdown file read when no explicit path is given.
	DefaultLogName = "log.md"
)

// Manager centralizes where the time log lives on disk. The core only ever
// receives in-memory text; all file access stays here.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If
// basePath is empty, it falls back to ~/.baki (or another location determined
// by DefaultBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = DefaultBasePath()
		if err != nil {
			return nil, err
		}
	} else {
		basePath, err = NormalizePath(basePath)
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the directory holding the log file.
func (m *Manager) BasePath() string {
	return m.basePath
}

// LogPath resolves the absolute path to the default log file. The file may
// not exist; ReadLog reports that to the caller.
func (m *Manager) LogPath() string {
	return filepath.Join(m.basePath, DefaultLogName)
}

// ReadLog loads the log at path into a string. An empty path reads the
// default log file.
func (m *Manager) ReadLog(path string) (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}
	if path == "" {
		path = m.LogPath()
	} else {
		normalized, err := NormalizePath(path)
		if err != nil {
			return "", err
		}
		path = normalized
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(data), nil
}
