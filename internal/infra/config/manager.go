package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/devtodo/internal/domain"
)

// Manager manages the config file.
type Manager struct {
	path string // Path to config.toml
}

// NewManager creates a new Manager for the config file at path.
// An empty path selects the global config file.
func NewManager(path string) *Manager {
	if path == "" {
		path = defaultConfigPath()
	}
	return &Manager{path: path}
}

// Info returns information about the config file.
func (m *Manager) Info() domain.ConfigInfo {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   m.path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// Init creates the config file from the default template populated with cfg.
// Returns domain.ErrConfigExists if the file is already present.
func (m *Manager) Init(cfg *domain.Config) error {
	if _, err := os.Stat(m.path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(m.path, []byte(content), 0o600)
}
