package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	UI       UIConfig      `toml:"ui"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend string           `toml:"backend,omitempty"` // "file" (default) or "git"
	Path    string           `toml:"path,omitempty"`    // Storage file for the file backend
	Git     GitStorageConfig `toml:"git"`
}

// GitStorageConfig holds settings from the [storage.git] section.
type GitStorageConfig struct {
	Repo      string `toml:"repo,omitempty"`      // Repository path
	Namespace string `toml:"namespace,omitempty"` // Ref namespace (refs/<namespace>/slots/...)
	Init      bool   `toml:"init,omitempty"`      // Initialize the repository if missing
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	Title       string `toml:"title,omitempty"`       // Header text
	Placeholder string `toml:"placeholder,omitempty"` // Add input placeholder
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Storage backends.
const (
	BackendFile = "file"
	BackendGit  = "git"
)

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultGitNamespace  = "devtodo"
	DefaultUITitle       = "DEV Todo List"
	DefaultUIPlaceholder = "Add a new task..."
)

// Directory and file names for devtodo.
const (
	AppDirName      = "devtodo"      // Directory name under XDG config/data homes
	ConfigFileName  = "config.toml"  // Config file name
	StorageFileName = "storage.json" // File backend storage file name
	LogFileName     = "devtodo.log"  // Log file name
)

// ConfigDir returns the config directory for devtodo.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func ConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigPath returns the config file path.
func ConfigPath(configHome string) string {
	return filepath.Join(ConfigDir(configHome), ConfigFileName)
}

// DataDir returns the data directory for devtodo.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// NewDefaultConfig returns a Config with default values.
// Paths that depend on the environment are left empty and resolved by the infra layer.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Git: GitStorageConfig{
				Namespace: DefaultGitNamespace,
			},
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Title:       DefaultUITitle,
			Placeholder: DefaultUIPlaceholder,
		},
	}
}

// ValidateBackend returns ErrUnknownBackend if the storage backend is not supported.
func (c *Config) ValidateBackend() error {
	switch c.Storage.Backend {
	case BackendFile, BackendGit:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
}

// RenderConfigTemplate renders a commented config template populated with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
