package di

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/commands/bus"
	commandhandlers "graphboard/application/commands/handlers"
	"graphboard/application/connect"
	"graphboard/application/ports"
	"graphboard/application/queries"
	querybus "graphboard/application/queries/bus"
	queryhandlers "graphboard/application/queries/handlers"
	"graphboard/application/services"
	"graphboard/infrastructure/config"
	"graphboard/infrastructure/persistence/memory"
	"graphboard/infrastructure/rendering"
	"graphboard/infrastructure/submission"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Repository    *memory.WorkspaceRepository
	Selection     *services.SelectionTracker
	FitSignal     *rendering.FitSignal
	CommandBus    *bus.CommandBus
	QueryBus      *querybus.QueryBus
	ImportHandler *commandhandlers.ImportGraphHandler
	SubmitHandler *commandhandlers.SubmitGraphHandler
	Connect       *connect.Manager
	LimitsWatcher *config.LimitsWatcher
}

// Shutdown releases container resources
func (c *Container) Shutdown() {
	if c.LimitsWatcher != nil {
		c.LimitsWatcher.Stop()
	}
	if err := c.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideLimitsWatcher creates the optional dynamic limits watcher. When
// no limits file is configured the watcher is nil and static limits apply.
func ProvideLimitsWatcher(cfg *config.Config, logger *zap.Logger) (*config.LimitsWatcher, error) {
	if cfg.LimitsPath == "" {
		return nil, nil
	}
	return config.NewLimitsWatcher(cfg.LimitsPath, logger)
}

// ProvideWorkspaceRepository creates the in-memory graph owner, applies
// configured limits, and subscribes it to live limit changes.
func ProvideWorkspaceRepository(
	cfg *config.Config,
	watcher *config.LimitsWatcher,
	logger *zap.Logger,
) *memory.WorkspaceRepository {
	repo := memory.NewWorkspaceRepository(logger)

	if cfg.MaxNodes > 0 || cfg.MaxEdges > 0 {
		repo.SetLimits(cfg.MaxNodes, cfg.MaxEdges)
	}

	if watcher != nil {
		limits := watcher.Current()
		repo.SetLimits(limits.MaxNodes, limits.MaxEdges)
		watcher.OnChange(func(l *config.DynamicLimits) {
			repo.SetLimits(l.MaxNodes, l.MaxEdges)
		})
		watcher.Start()
	}

	return repo
}

// ProvideWorkspacePort exposes the repository through its port
func ProvideWorkspacePort(repo *memory.WorkspaceRepository) ports.WorkspaceRepository {
	return repo
}

// ProvideSelectionTracker creates the selection tracker
func ProvideSelectionTracker() *services.SelectionTracker {
	return services.NewSelectionTracker()
}

// ProvideFitSignal creates the viewport fit signal
func ProvideFitSignal(logger *zap.Logger) *rendering.FitSignal {
	return rendering.NewFitSignal(logger)
}

// ProvideViewport exposes the fit signal through its port
func ProvideViewport(fit *rendering.FitSignal) ports.Viewport {
	return fit
}

// ProvideGraphSubmitter creates the remote-service client
func ProvideGraphSubmitter(cfg *config.Config, logger *zap.Logger) ports.GraphSubmitter {
	return submission.NewClient(cfg, logger)
}

// ProvideConnectManager creates the edge-creation protocol manager
func ProvideConnectManager(repo ports.WorkspaceRepository, logger *zap.Logger) *connect.Manager {
	return connect.NewManager(repo, logger)
}

// ProvideImportHandler creates the import orchestrator, used directly by
// the REST layer because it returns a result.
func ProvideImportHandler(
	repo ports.WorkspaceRepository,
	viewport ports.Viewport,
	selection *services.SelectionTracker,
	logger *zap.Logger,
) *commandhandlers.ImportGraphHandler {
	return commandhandlers.NewImportGraphHandler(repo, viewport, selection, logger)
}

// ProvideSubmitHandler creates the submit orchestrator
func ProvideSubmitHandler(
	repo ports.WorkspaceRepository,
	submitter ports.GraphSubmitter,
	logger *zap.Logger,
) *commandhandlers.SubmitGraphHandler {
	return commandhandlers.NewSubmitGraphHandler(repo, submitter, logger)
}

// CommandHandlerAdapter adapts a typed handler closure to the bus interface
type CommandHandlerAdapter struct {
	handler func(ctx context.Context, cmd bus.Command) error
}

// Handle implements bus.CommandHandler
func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// mustRegister guards bus wiring. Registration runs once at startup, so a
// duplicate handler for a type is a programming error, not a runtime state.
func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// ProvideCommandBus creates the command bus and registers all handlers
func ProvideCommandBus(
	repo ports.WorkspaceRepository,
	selection *services.SelectionTracker,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)

	addNodeHandler := commandhandlers.NewAddNodeHandler(repo, logger)
	mustRegister(commandBus.Register(commands.AddNodeCommand{}, bus.Wrap(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddNodeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return addNodeHandler.Handle(ctx, addCmd)
		},
	}, logging)))

	deleteNodeHandler := commandhandlers.NewDeleteNodeHandler(repo, selection, logger)
	mustRegister(commandBus.Register(commands.DeleteNodeCommand{}, bus.Wrap(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteNodeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteNodeHandler.Handle(ctx, deleteCmd)
		},
	}, logging)))

	deleteEdgeHandler := commandhandlers.NewDeleteEdgeHandler(repo, selection, logger)
	mustRegister(commandBus.Register(commands.DeleteEdgeCommand{}, bus.Wrap(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			edgeCmd, ok := cmd.(commands.DeleteEdgeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteEdgeHandler.Handle(ctx, edgeCmd)
		},
	}, logging)))

	return commandBus
}

// QueryHandlerAdapter adapts a typed query handler closure to the bus interface
type QueryHandlerAdapter struct {
	handler func(ctx context.Context, query querybus.Query) (interface{}, error)
}

// Handle implements querybus.QueryHandler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates the query bus and registers all handlers
func ProvideQueryBus(repo ports.WorkspaceRepository) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	getGraphHandler := queryhandlers.NewGetGraphHandler(repo)
	mustRegister(queryBus.Register(queries.GetGraphQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			graphQuery, ok := query.(queries.GetGraphQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getGraphHandler.Handle(ctx, graphQuery)
		},
	}))

	return queryBus
}
