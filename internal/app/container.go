// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"

	"github.com/runoshun/devtodo/internal/domain"
	"github.com/runoshun/devtodo/internal/infra/config"
	"github.com/runoshun/devtodo/internal/infra/gitstore"
	"github.com/runoshun/devtodo/internal/infra/jsonstore"
	"github.com/runoshun/devtodo/internal/infra/logging"
	"github.com/runoshun/devtodo/internal/infra/slot"
	"github.com/runoshun/devtodo/internal/usecase"
)

// Options holds command-line overrides applied on top of the config file.
type Options struct {
	ConfigPath string // Config file path (empty: global config)
	DataPath   string // Storage file override for the file backend
	LogLevel   string // Log level override
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Storage domain.SlotStorage
	Tasks   domain.TaskRepository
	Clock   domain.Clock

	// Pointer fields
	Config        *domain.Config
	ConfigManager *config.Manager
	Logger        *slog.Logger
	logFile       *logging.Logger
}

// New creates a new Container from the config file and command-line overrides.
func New(opts Options) (*Container, error) {
	// Load app config
	loader := config.NewLoader(opts.ConfigPath)
	cfg, err := loader.LoadWithOverrides(config.Overrides{
		StoragePath: opts.DataPath,
		LogLevel:    opts.LogLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Create logger
	logFile := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	logger := logFile.Slog()
	for _, w := range cfg.Warnings {
		logger.Warn("config", "path", loader.Path(), "warning", w)
	}

	// Create slot storage based on config
	storage, err := newStorage(cfg)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	logger.Debug("storage opened", "backend", cfg.Storage.Backend)

	return &Container{
		Storage:       storage,
		Tasks:         slot.New(storage),
		Clock:         domain.RealClock{},
		Config:        cfg,
		ConfigManager: config.NewManager(loader.Path()),
		Logger:        logger,
		logFile:       logFile,
	}, nil
}

// newStorage creates the slot storage backend selected by cfg.
func newStorage(cfg *domain.Config) (domain.SlotStorage, error) {
	switch cfg.Storage.Backend {
	case domain.BackendFile:
		return jsonstore.New(cfg.Storage.Path), nil
	case domain.BackendGit:
		store, err := gitstore.Open(cfg.Storage.Git.Repo, gitstore.Options{
			Namespace: cfg.Storage.Git.Namespace,
			Init:      cfg.Storage.Git.Init,
		})
		if err != nil {
			return nil, fmt.Errorf("open git storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, storage domain.SlotStorage, clock domain.Clock, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Storage: storage,
		Tasks:   slot.New(storage),
		Clock:   clock,
		Config:  cfg,
		Logger:  logger,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

// OpenStore returns a Store loaded from the task slot.
// The slot adapter is subscribed so that every mutation is written back.
func (c *Container) OpenStore() (*usecase.Store, error) {
	store := usecase.NewStore(c.Clock, c.Logger)
	if err := store.Load(c.Tasks); err != nil {
		return nil, err
	}
	store.Subscribe(c.Tasks.Write)
	return store, nil
}
