// Package memory holds the process-local persistence layer. The graph
// under construction lives in memory for the lifetime of the server, the
// way a drawing board holds work in progress; durable storage belongs to
// the remote processing service the finished graph is submitted to.
package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"graphboard/domain/core/aggregates"
)

// WorkspaceRepository is the single owner of the canonical graph. The
// mutex serializes mutations coming in from the concurrent HTTP boundary,
// preserving the engine's run-to-completion model: no two mutations ever
// interleave.
type WorkspaceRepository struct {
	mu     sync.Mutex
	graph  *aggregates.Graph
	logger *zap.Logger
}

// NewWorkspaceRepository creates a repository holding an empty graph
func NewWorkspaceRepository(logger *zap.Logger) *WorkspaceRepository {
	return &WorkspaceRepository{
		graph:  aggregates.NewGraph(),
		logger: logger,
	}
}

// Update applies fn to the graph under exclusive access
func (r *WorkspaceRepository) Update(ctx context.Context, fn func(g *aggregates.Graph) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.graph)
}

// Snapshot returns an immutable value copy of the current graph
func (r *WorkspaceRepository) Snapshot(ctx context.Context) (aggregates.GraphSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return aggregates.GraphSnapshot{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.graph.Snapshot(), nil
}

// SetLimits forwards new graph size limits, used by the limits watcher
func (r *WorkspaceRepository) SetLimits(maxNodes, maxEdges int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graph.SetLimits(maxNodes, maxEdges)
	r.logger.Info("Graph limits updated",
		zap.Int("maxNodes", maxNodes),
		zap.Int("maxEdges", maxEdges),
	)
}
