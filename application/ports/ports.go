// Package ports defines the interfaces between the application layer and
// its collaborators. The application depends on these abstractions, never
// on concrete infrastructure.
package ports

import (
	"context"

	"graphboard/domain/core/aggregates"
)

// WorkspaceRepository owns the single canonical graph. All mutations go
// through Update, which runs the given function to completion before any
// other mutation starts; the graph is never observable mid-mutation.
type WorkspaceRepository interface {
	// Update applies fn to the graph under exclusive access. If fn
	// returns an error the graph keeps whatever state fn left it in;
	// callers are expected to mutate only after validating.
	Update(ctx context.Context, fn func(g *aggregates.Graph) error) error

	// Snapshot returns an immutable value copy of the current graph.
	Snapshot(ctx context.Context) (aggregates.GraphSnapshot, error)
}

// GraphSubmitter sends a finished graph to the remote graph-processing
// service and returns the opaque identifier the service assigned.
// Exactly one request is attempted per call; there are no retries.
type GraphSubmitter interface {
	Submit(ctx context.Context, snapshot aggregates.GraphSnapshot) (string, error)
}

// Viewport is the rendering collaborator's recentre hook. After a bulk
// import replaces the graph, the canvas is asked to fit the new content.
type Viewport interface {
	FitToGraph(ctx context.Context)
}
