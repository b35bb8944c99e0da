package handlers

import (
	"context"

	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/ports"
	"graphboard/domain/core/aggregates"
	"graphboard/domain/core/valueobjects"
)

// AddNodeHandler handles node creation commands
type AddNodeHandler struct {
	repo   ports.WorkspaceRepository
	logger *zap.Logger
}

// NewAddNodeHandler creates a new add node handler
func NewAddNodeHandler(repo ports.WorkspaceRepository, logger *zap.Logger) *AddNodeHandler {
	return &AddNodeHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle executes the add node command
func (h *AddNodeHandler) Handle(ctx context.Context, cmd commands.AddNodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	nodeID, err := valueobjects.NewNodeID(cmd.NodeID)
	if err != nil {
		return err
	}

	if err := h.repo.Update(ctx, func(g *aggregates.Graph) error {
		return g.AddNode(nodeID)
	}); err != nil {
		return err
	}

	h.logger.Info("Node added", zap.String("nodeID", nodeID.String()))
	return nil
}
