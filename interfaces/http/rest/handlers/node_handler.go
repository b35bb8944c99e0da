package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/commands/bus"
	"graphboard/pkg/common"
	"graphboard/pkg/utils"
)

// NodeHandler handles node-related HTTP requests
type NodeHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(commandBus *bus.CommandBus, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		commandBus: commandBus,
		logger:     logger,
	}
}

// AddNodeRequest represents the request body for creating a node
type AddNodeRequest struct {
	ID string `json:"id" validate:"required,min=1,max=200"`
}

// AddNodeResponse represents the response for creating a node
type AddNodeResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// AddNode handles POST /nodes
func (h *NodeHandler) AddNode(w http.ResponseWriter, r *http.Request) {
	var req AddNodeRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Validation error: "+err.Error())
		return
	}

	cmd := commands.AddNodeCommand{NodeID: req.ID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to add node",
			zap.String("nodeID", req.ID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, AddNodeResponse{
		ID:        req.ID,
		CreatedAt: utils.NowRFC3339(),
	})
}

// DeleteNodeResponse reports the cascade of a node deletion
type DeleteNodeResponse struct {
	ID           string   `json:"id"`
	RemovedEdges []string `json:"removed_edges"`
}

// DeleteNode handles DELETE /nodes/{nodeID}
func (h *NodeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	if nodeID == "" {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Node ID is required")
		return
	}

	cmd := commands.DeleteNodeCommand{NodeID: nodeID}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to delete node",
			zap.String("nodeID", nodeID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
