package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"graphboard/application/commands"
	commandhandlers "graphboard/application/commands/handlers"
	"graphboard/application/queries"
	querybus "graphboard/application/queries/bus"
	"graphboard/infrastructure/rendering"
	"graphboard/pkg/common"
)

// GraphHandler serves the graph view the canvas re-renders from, and the
// submission endpoint.
type GraphHandler struct {
	queryBus      *querybus.QueryBus
	submitHandler *commandhandlers.SubmitGraphHandler
	fitSignal     *rendering.FitSignal
	logger        *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(
	queryBus *querybus.QueryBus,
	submitHandler *commandhandlers.SubmitGraphHandler,
	fitSignal *rendering.FitSignal,
	logger *zap.Logger,
) *GraphHandler {
	return &GraphHandler{
		queryBus:      queryBus,
		submitHandler: submitHandler,
		fitSignal:     fitSignal,
		logger:        logger,
	}
}

// GraphResponse is the graph view plus the one-shot recentre hint
type GraphResponse struct {
	Nodes       []queries.NodeData `json:"nodes"`
	Edges       []queries.EdgeData `json:"edges"`
	FitViewport bool               `json:"fit_viewport"`
}

// GetGraph handles GET /graph
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphQuery{})
	if err != nil {
		h.logger.Error("Failed to get graph", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	data, ok := result.(*queries.GraphDataResult)
	if !ok {
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "unexpected query result type")
		return
	}

	// The fit latch is consumed by the read that delivers it, so exactly
	// one render after a bulk import recentres.
	common.RespondJSON(w, http.StatusOK, GraphResponse{
		Nodes:       data.Nodes,
		Edges:       data.Edges,
		FitViewport: h.fitSignal.ConsumeFit(),
	})
}

// Submit handles POST /graph/submit
func (h *GraphHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.submitHandler.Handle(r.Context(), commands.SubmitGraphCommand{})
	if err != nil {
		h.logger.Error("Graph submission failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
