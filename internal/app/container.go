// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"strings"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/infra/config"
	"github.com/runoshun/todomaster/internal/infra/idgen"
	"github.com/runoshun/todomaster/internal/infra/jsonstore"
	"github.com/runoshun/todomaster/internal/infra/logging"
	"github.com/runoshun/todomaster/internal/infra/remote"
	"github.com/runoshun/todomaster/internal/usecase"
)

// Options are the command-line overrides applied on top of the config files.
type Options struct {
	ConfigPath string // --config: extra config file merged last
	ServerURL  string // --server: overrides [server].url
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Service domain.TaskService
	Cache   domain.TaskCache
	Clock   domain.Clock
	IDs     domain.IDGenerator
	Logger  domain.Logger

	// Pointer fields
	Config  *domain.Config
	closers []func() error
}

// New creates a new Container from the config files and opts.
func New(opts Options) (*Container, error) {
	cfg, err := config.NewLoader(opts.ConfigPath).Load()
	if err != nil {
		return nil, err
	}
	if url := strings.TrimSpace(opts.ServerURL); url != "" {
		cfg.Server.URL = url
	}

	logger := logging.New(cfg.Cache.Dir, logging.ParseLevel(cfg.Log.Level))

	client, err := remote.New(cfg.Server.URL, cfg.Server.Timeout, logger)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("server %q: %w", cfg.Server.URL, err)
	}

	return &Container{
		Service: client,
		Cache:   jsonstore.New(cfg.Cache.Dir, cfg.Cache.Slot),
		Clock:   domain.RealClock{},
		IDs:     idgen.UUID{},
		Logger:  logger,
		Config:  cfg,
		closers: []func() error{logger.Close},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, service domain.TaskService, cache domain.TaskCache, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Service: service,
		Cache:   cache,
		Clock:   clock,
		IDs:     ids,
		Logger:  logger,
		Config:  cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// UseCase factory methods

// LoadTasksUseCase returns a new LoadTasks use case.
func (c *Container) LoadTasksUseCase() *usecase.LoadTasks {
	return usecase.NewLoadTasks(c.Service, c.Cache, c.Logger)
}

// SendMutationUseCase returns a new SendMutation use case.
func (c *Container) SendMutationUseCase() *usecase.SendMutation {
	return usecase.NewSendMutation(c.Service, c.Logger)
}

// SaveTasksUseCase returns a new SaveTasks use case.
func (c *Container) SaveTasksUseCase() *usecase.SaveTasks {
	return usecase.NewSaveTasks(c.Cache, c.Logger)
}

// ApplyMutationUseCase returns a new ApplyMutation use case.
func (c *Container) ApplyMutationUseCase() *usecase.ApplyMutation {
	return usecase.NewApplyMutation(c.SendMutationUseCase(), c.SaveTasksUseCase())
}

// ClearCompletedUseCase returns a new ClearCompleted use case.
func (c *Container) ClearCompletedUseCase() *usecase.ClearCompleted {
	return usecase.NewClearCompleted(c.SaveTasksUseCase(), c.Logger)
}
