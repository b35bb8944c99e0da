package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"graphboard/application/services"
	"graphboard/pkg/common"
	"graphboard/pkg/utils"
)

// SelectionHandler mirrors the canvas's click selection into the engine
// so deletion commands can act on "the selected thing".
type SelectionHandler struct {
	tracker *services.SelectionTracker
	logger  *zap.Logger
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(tracker *services.SelectionTracker, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		tracker: tracker,
		logger:  logger,
	}
}

// SetSelectionRequest records a click on a node or an edge
type SetSelectionRequest struct {
	Kind string `json:"kind" validate:"required,oneof=node edge"`
	ID   string `json:"id" validate:"required"`
}

// SelectionResponse is the current selection, if any
type SelectionResponse struct {
	Selected  bool                `json:"selected"`
	Selection *services.Selection `json:"selection,omitempty"`
}

// GetSelection handles GET /selection
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	current, ok := h.tracker.Current()
	if !ok {
		common.RespondJSON(w, http.StatusOK, SelectionResponse{Selected: false})
		return
	}
	common.RespondJSON(w, http.StatusOK, SelectionResponse{Selected: true, Selection: &current})
}

// SetSelection handles PUT /selection
func (h *SelectionHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req SetSelectionRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Validation error: "+err.Error())
		return
	}

	if req.Kind == string(services.SelectionEdge) {
		h.tracker.SelectEdge(req.ID)
	} else {
		h.tracker.SelectNode(req.ID)
	}

	current, _ := h.tracker.Current()
	common.RespondJSON(w, http.StatusOK, SelectionResponse{Selected: true, Selection: &current})
}

// ClearSelection handles DELETE /selection
func (h *SelectionHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.tracker.Clear()
	w.WriteHeader(http.StatusNoContent)
}
