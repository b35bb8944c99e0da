// Package rendering is the boundary to the canvas that draws the graph.
// The canvas re-renders from the graph query; the engine's only outbound
// signal is a recentre request after bulk import.
package rendering

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// FitSignal implements the viewport port. A fit request is latched until
// the canvas picks it up with its next graph read, which suits a client
// that polls rather than holds a push channel.
type FitSignal struct {
	mu      sync.Mutex
	pending bool
	logger  *zap.Logger
}

// NewFitSignal creates a fit signal
func NewFitSignal(logger *zap.Logger) *FitSignal {
	return &FitSignal{logger: logger}
}

// FitToGraph asks the canvas to recentre on the current graph
func (f *FitSignal) FitToGraph(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = true
	f.logger.Debug("Viewport fit requested")
}

// ConsumeFit reports whether a fit was requested since the last read,
// clearing the latch.
func (f *FitSignal) ConsumeFit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	pending := f.pending
	f.pending = false
	return pending
}
