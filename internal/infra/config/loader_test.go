package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/devtodo/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_MissingFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoaderWithPaths(filepath.Join(dir, "missing.toml"), dir)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, domain.StorageFileName), cfg.Storage.Path)
	assert.Equal(t, filepath.Join(dir, domain.LogFileName), cfg.Log.File)
	assert.Equal(t, dir, cfg.Storage.Git.Repo)
	assert.Equal(t, domain.DefaultGitNamespace, cfg.Storage.Git.Namespace)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.DefaultUITitle, cfg.UI.Title)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[storage]
backend = "git"
path = "/tmp/todos.json"

[storage.git]
repo = "/tmp/repo"
namespace = "mytodos"
init = true

[log]
level = "debug"

[ui]
title = "Today"
placeholder = "What next?"
`)

	cfg, err := NewLoaderWithPaths(path, dir).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BackendGit, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/todos.json", cfg.Storage.Path)
	assert.Equal(t, "/tmp/repo", cfg.Storage.Git.Repo)
	assert.Equal(t, "mytodos", cfg.Storage.Git.Namespace)
	assert.True(t, cfg.Storage.Git.Init)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, domain.LogFileName), cfg.Log.File)
	assert.Equal(t, "Today", cfg.UI.Title)
	assert.Equal(t, "What next?", cfg.UI.Placeholder)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_UnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
stray = 1

[storage]
backend = "file"
colour = "red"

[storage.git]
remote = "origin"

[log]
verbose = true

[ui]
theme = "dark"

[agents]
name = "x"
`)

	cfg, err := NewLoaderWithPaths(path, dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown key in [log]: verbose",
		"unknown key in [storage.git]: remote",
		"unknown key in [storage]: colour",
		"unknown key in [ui]: theme",
		"unknown key: stray",
		"unknown section: agents",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[storage\nbackend = ")

	_, err := NewLoaderWithPaths(path, dir).Load()

	assert.Error(t, err)
}

func TestLoader_Load_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[storage]\nbackend = \"s3\"\n")

	_, err := NewLoaderWithPaths(path, dir).Load()

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestLoader_Load_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	path := writeConfig(t, dir, "[storage]\npath = \"~/todos.json\"\n")

	cfg, err := NewLoaderWithPaths(path, dir).Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "todos.json"), cfg.Storage.Path)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	path := writeConfig(t, dir, "[storage]\npath = \"/from/file.json\"\n\n[log]\nlevel = \"warn\"\n")

	cfg, err := NewLoaderWithPaths(path, dir).LoadWithOverrides(Overrides{
		StoragePath: "~/flag.json",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "flag.json"), cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_LoadWithOverrides_Empty(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[storage]\npath = \"/from/file.json\"\n")

	cfg, err := NewLoaderWithPaths(path, dir).LoadWithOverrides(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "/from/file.json", cfg.Storage.Path)
}

func TestNewLoader_XDGPaths(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)

	loader := NewLoader("")
	assert.Equal(t, filepath.Join(configHome, "devtodo", "config.toml"), loader.Path())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "devtodo", "storage.json"), cfg.Storage.Path)
}

func TestMergeConfigs(t *testing.T) {
	base := domain.NewDefaultConfig()
	base.Warnings = []string{"base warning"}
	override := &domain.Config{
		Warnings: []string{"override warning"},
		Log:      domain.LogConfig{Level: "error"},
	}

	result := mergeConfigs(base, override)

	assert.Equal(t, "error", result.Log.Level)
	assert.Equal(t, domain.BackendFile, result.Storage.Backend, "unset fields keep base values")
	assert.Equal(t, domain.DefaultUIPlaceholder, result.UI.Placeholder)
	assert.Equal(t, []string{"base warning", "override warning"}, result.Warnings)
	assert.Equal(t, []string{"base warning"}, base.Warnings, "base is not mutated")
}
