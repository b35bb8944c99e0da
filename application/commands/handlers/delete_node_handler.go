package handlers

import (
	"context"

	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/ports"
	"graphboard/application/services"
	"graphboard/domain/core/aggregates"
	"graphboard/domain/core/valueobjects"
)

// DeleteNodeHandler handles node deletion commands. Deletion cascades:
// the node and every edge referencing it go in one logical operation.
type DeleteNodeHandler struct {
	repo      ports.WorkspaceRepository
	selection *services.SelectionTracker
	logger    *zap.Logger
}

// NewDeleteNodeHandler creates a new delete node handler
func NewDeleteNodeHandler(
	repo ports.WorkspaceRepository,
	selection *services.SelectionTracker,
	logger *zap.Logger,
) *DeleteNodeHandler {
	return &DeleteNodeHandler{
		repo:      repo,
		selection: selection,
		logger:    logger,
	}
}

// Handle executes the delete node command
func (h *DeleteNodeHandler) Handle(ctx context.Context, cmd commands.DeleteNodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return err
	}

	var removedEdges []string
	if err := h.repo.Update(ctx, func(g *aggregates.Graph) error {
		removedEdges, err = g.RemoveNode(nodeID)
		return err
	}); err != nil {
		return err
	}

	// The selection must never reference a deleted entity.
	h.selection.Invalidate(append(removedEdges, nodeID.String())...)

	h.logger.Info("Node deleted",
		zap.String("nodeID", nodeID.String()),
		zap.Int("cascadedEdges", len(removedEdges)),
	)
	return nil
}
