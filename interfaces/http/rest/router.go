package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"graphboard/application/commands/bus"
	commandhandlers "graphboard/application/commands/handlers"
	"graphboard/application/connect"
	querybus "graphboard/application/queries/bus"
	"graphboard/application/services"
	"graphboard/infrastructure/config"
	"graphboard/infrastructure/rendering"
	"graphboard/interfaces/http/rest/handlers"
	"graphboard/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	config        *config.Config
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	importHandler *commandhandlers.ImportGraphHandler
	submitHandler *commandhandlers.SubmitGraphHandler
	connect       *connect.Manager
	selection     *services.SelectionTracker
	fitSignal     *rendering.FitSignal
	logger        *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	importHandler *commandhandlers.ImportGraphHandler,
	submitHandler *commandhandlers.SubmitGraphHandler,
	connectManager *connect.Manager,
	selection *services.SelectionTracker,
	fitSignal *rendering.FitSignal,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:        cfg,
		commandBus:    commandBus,
		queryBus:      queryBus,
		importHandler: importHandler,
		submitHandler: submitHandler,
		connect:       connectManager,
		selection:     selection,
		fitSignal:     fitSignal,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS for the browser-hosted canvas
	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Node endpoints
		r.Route("/nodes", func(r chi.Router) {
			nodeHandler := handlers.NewNodeHandler(rt.commandBus, rt.logger)
			r.Post("/", nodeHandler.AddNode)
			r.Delete("/{nodeID}", nodeHandler.DeleteNode)
		})

		// Edge endpoints; creation goes through the connect protocol
		r.Route("/edges", func(r chi.Router) {
			edgeHandler := handlers.NewEdgeHandler(rt.commandBus, rt.logger)
			r.Delete("/{edgeID}", edgeHandler.DeleteEdge)
		})

		// Edge-creation protocol endpoints
		r.Route("/connect", func(r chi.Router) {
			connectHandler := handlers.NewConnectHandler(rt.connect, rt.logger)
			r.Get("/", connectHandler.GetState)
			r.Post("/", connectHandler.Begin)
			r.Post("/drag", connectHandler.CompleteDrag)
			r.Post("/weight", connectHandler.ProvideWeight)
			r.Delete("/", connectHandler.Cancel)
		})

		// Tabular import
		r.Post("/import", handlers.NewImportHandler(rt.importHandler, rt.logger).Import)

		// Graph view and submission
		r.Route("/graph", func(r chi.Router) {
			graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.submitHandler, rt.fitSignal, rt.logger)
			r.Get("/", graphHandler.GetGraph)
			r.Post("/submit", graphHandler.Submit)
		})

		// Canvas selection state
		r.Route("/selection", func(r chi.Router) {
			selectionHandler := handlers.NewSelectionHandler(rt.selection, rt.logger)
			r.Get("/", selectionHandler.GetSelection)
			r.Put("/", selectionHandler.SetSelection)
			r.Delete("/", selectionHandler.ClearSelection)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The graph store is in memory, so readiness follows liveness
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
