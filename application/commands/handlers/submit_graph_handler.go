package handlers

import (
	"context"

	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/ports"
	appErrors "graphboard/pkg/errors"
)

// SubmitGraphHandler snapshots the graph and hands it to the remote
// graph-processing service. Submission never mutates the store; a failed
// request leaves no partial state behind.
type SubmitGraphHandler struct {
	repo      ports.WorkspaceRepository
	submitter ports.GraphSubmitter
	logger    *zap.Logger
}

// NewSubmitGraphHandler creates a new submit handler
func NewSubmitGraphHandler(
	repo ports.WorkspaceRepository,
	submitter ports.GraphSubmitter,
	logger *zap.Logger,
) *SubmitGraphHandler {
	return &SubmitGraphHandler{
		repo:      repo,
		submitter: submitter,
		logger:    logger,
	}
}

// Handle executes the submit command. An empty graph fails fast before
// any transport is attempted.
func (h *SubmitGraphHandler) Handle(ctx context.Context, cmd commands.SubmitGraphCommand) (*commands.SubmitResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if snapshot.IsEmpty() {
		return nil, appErrors.NewEmptyGraphError()
	}

	graphID, err := h.submitter.Submit(ctx, snapshot)
	if err != nil {
		h.logger.Error("Graph submission failed",
			zap.Int("nodes", len(snapshot.Nodes)),
			zap.Int("edges", len(snapshot.Edges)),
			zap.Error(err),
		)
		return nil, err
	}

	h.logger.Info("Graph submitted",
		zap.String("graphID", graphID),
		zap.Int("nodes", len(snapshot.Nodes)),
		zap.Int("edges", len(snapshot.Edges)),
	)
	return &commands.SubmitResult{GraphID: graphID}, nil
}
