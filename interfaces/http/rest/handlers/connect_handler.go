package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"graphboard/application/connect"
	"graphboard/pkg/common"
	"graphboard/pkg/utils"
)

// ConnectHandler exposes the edge-creation protocol over HTTP. Each
// endpoint feeds one input event into the state machine and returns the
// outcome, including abort reasons, so the canvas can show feedback.
type ConnectHandler struct {
	manager *connect.Manager
	logger  *zap.Logger
}

// NewConnectHandler creates a new connect handler
func NewConnectHandler(manager *connect.Manager, logger *zap.Logger) *ConnectHandler {
	return &ConnectHandler{
		manager: manager,
		logger:  logger,
	}
}

// CompleteDragRequest carries the two endpoints of the finished drag
type CompleteDragRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// ProvideWeightRequest carries the raw weight prompt input. The value is
// a string because the machine, not the transport, decides validity.
type ProvideWeightRequest struct {
	Weight string `json:"weight"`
}

// GetState handles GET /connect
func (h *ConnectHandler) GetState(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"state": h.manager.State(),
	})
}

// Begin handles POST /connect
func (h *ConnectHandler) Begin(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.manager.Begin()
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, outcome)
}

// CompleteDrag handles POST /connect/drag
func (h *ConnectHandler) CompleteDrag(w http.ResponseWriter, r *http.Request) {
	var req CompleteDragRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Validation error: "+err.Error())
		return
	}

	outcome, err := h.manager.CompleteDrag(r.Context(), req.From, req.To)
	if err != nil {
		h.logger.Error("Connect drag failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, outcome)
}

// ProvideWeight handles POST /connect/weight
func (h *ConnectHandler) ProvideWeight(w http.ResponseWriter, r *http.Request) {
	var req ProvideWeightRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body: "+err.Error())
		return
	}

	outcome, err := h.manager.ProvideWeight(r.Context(), req.Weight)
	if err != nil {
		h.logger.Error("Connect weight failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, outcome)
}

// Cancel handles DELETE /connect
func (h *ConnectHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.manager.Cancel()
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, outcome)
}
