package handlers

import (
	"context"

	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/ports"
	"graphboard/application/services"
	"graphboard/domain/core/aggregates"
)

// DeleteEdgeHandler handles edge deletion commands
type DeleteEdgeHandler struct {
	repo      ports.WorkspaceRepository
	selection *services.SelectionTracker
	logger    *zap.Logger
}

// NewDeleteEdgeHandler creates a new delete edge handler
func NewDeleteEdgeHandler(
	repo ports.WorkspaceRepository,
	selection *services.SelectionTracker,
	logger *zap.Logger,
) *DeleteEdgeHandler {
	return &DeleteEdgeHandler{
		repo:      repo,
		selection: selection,
		logger:    logger,
	}
}

// Handle executes the delete edge command. Removing an edge that does not
// exist is a no-op.
func (h *DeleteEdgeHandler) Handle(ctx context.Context, cmd commands.DeleteEdgeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.repo.Update(ctx, func(g *aggregates.Graph) error {
		g.RemoveEdge(cmd.EdgeID)
		return nil
	}); err != nil {
		return err
	}

	h.selection.Invalidate(cmd.EdgeID)

	h.logger.Info("Edge deleted", zap.String("edgeID", cmd.EdgeID))
	return nil
}
