// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/devtodo/internal/domain"
)

// Loader loads configuration from a TOML file.
type Loader struct {
	path    string // Config file path
	dataDir string // Directory for default storage and log files
}

// NewLoader creates a new Loader.
// An empty path selects the global config file under XDG_CONFIG_HOME.
func NewLoader(path string) *Loader {
	if path == "" {
		path = defaultConfigPath()
	}
	return &Loader{
		path:    path,
		dataDir: defaultDataDir(),
	}
}

// NewLoaderWithPaths creates a new Loader with explicit config file and data directory.
// This is useful for testing.
func NewLoaderWithPaths(path, dataDir string) *Loader {
	return &Loader{
		path:    path,
		dataDir: dataDir,
	}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// defaultConfigPath returns the default config file path.
func defaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.ConfigPath(configHome)
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Overrides holds command-line values that take precedence over the config file.
type Overrides struct {
	StoragePath string // Storage file for the file backend
	LogLevel    string
}

// Load returns the configuration: defaults overridden by the config file.
// A missing config file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOverrides(Overrides{})
}

// LoadWithOverrides is Load with command-line overrides applied on top of the
// config file. Override paths get the same "~" expansion as file values.
func (l *Loader) LoadWithOverrides(o Overrides) (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.path != "" {
		file, err := l.loadFile(l.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if file != nil {
			base = mergeConfigs(base, file)
		}
	}

	if o.StoragePath != "" {
		base.Storage.Path = o.StoragePath
	}
	if o.LogLevel != "" {
		base.Log.Level = o.LogLevel
	}

	l.resolvePaths(base)

	if err := base.ValidateBackend(); err != nil {
		return nil, err
	}
	return base, nil
}

// resolvePaths fills default file locations and expands "~".
func (l *Loader) resolvePaths(cfg *domain.Config) {
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(l.dataDir, domain.StorageFileName)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(l.dataDir, domain.LogFileName)
	}
	if cfg.Storage.Git.Repo == "" {
		cfg.Storage.Git.Repo = l.dataDir
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
	cfg.Storage.Git.Repo = expandHome(cfg.Storage.Git.Repo)
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "storage":
			for k, v := range m {
				switch k {
				case "backend":
					if s, ok := v.(string); ok {
						res.Storage.Backend = s
					}
				case "path":
					if s, ok := v.(string); ok {
						res.Storage.Path = s
					}
				case "git":
					if gm, ok := v.(map[string]any); ok {
						warnings = append(warnings, parseGitSection(gm, &res.Storage.Git)...)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				case "file":
					if s, ok := v.(string); ok {
						res.Log.File = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "title":
					if s, ok := v.(string); ok {
						res.UI.Title = s
					}
				case "placeholder":
					if s, ok := v.(string); ok {
						res.UI.Placeholder = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func parseGitSection(m map[string]any, git *domain.GitStorageConfig) []string {
	var warnings []string
	for k, v := range m {
		switch k {
		case "repo":
			if s, ok := v.(string); ok {
				git.Repo = s
			}
		case "namespace":
			if s, ok := v.(string); ok {
				git.Namespace = s
			}
		case "init":
			if b, ok := v.(bool); ok {
				git.Init = b
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [storage.git]: %s", k))
		}
	}
	return warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Storage:  base.Storage,
		Log:      base.Log,
		UI:       base.UI,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Storage.Backend != "" {
		result.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Path != "" {
		result.Storage.Path = override.Storage.Path
	}
	if override.Storage.Git.Repo != "" {
		result.Storage.Git.Repo = override.Storage.Git.Repo
	}
	if override.Storage.Git.Namespace != "" {
		result.Storage.Git.Namespace = override.Storage.Git.Namespace
	}
	if override.Storage.Git.Init {
		result.Storage.Git.Init = true
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.UI.Title != "" {
		result.UI.Title = override.UI.Title
	}
	if override.UI.Placeholder != "" {
		result.UI.Placeholder = override.UI.Placeholder
	}

	return result
}
