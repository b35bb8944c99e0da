package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/commands/bus"
	"graphboard/pkg/common"
)

// EdgeHandler handles edge-related HTTP requests. Edge creation is not
// here; it runs through the connect protocol endpoints.
type EdgeHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(commandBus *bus.CommandBus, logger *zap.Logger) *EdgeHandler {
	return &EdgeHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// DeleteEdge handles DELETE /edges/{edgeID}
func (h *EdgeHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	edgeID := chi.URLParam(r, "edgeID")
	if edgeID == "" {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Edge ID is required")
		return
	}

	// Removing an absent edge is a no-op, so this cannot 404
	cmd := commands.DeleteEdgeCommand{EdgeID: edgeID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete edge",
			zap.String("edgeID", edgeID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
