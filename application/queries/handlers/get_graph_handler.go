package handlers

import (
	"context"

	"graphboard/application/ports"
	"graphboard/application/queries"
)

// GetGraphHandler resolves graph data queries from the store's snapshot.
// Reads never hold private copies of graph state; every read goes
// through the snapshot contract.
type GetGraphHandler struct {
	repo ports.WorkspaceRepository
}

// NewGetGraphHandler creates a new get graph handler
func NewGetGraphHandler(repo ports.WorkspaceRepository) *GetGraphHandler {
	return &GetGraphHandler{repo: repo}
}

// Handle executes the query
func (h *GetGraphHandler) Handle(ctx context.Context, query queries.GetGraphQuery) (*queries.GraphDataResult, error) {
	snapshot, err := h.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := &queries.GraphDataResult{
		Nodes: make([]queries.NodeData, 0, len(snapshot.Nodes)),
		Edges: make([]queries.EdgeData, 0, len(snapshot.Edges)),
	}
	for _, n := range snapshot.Nodes {
		result.Nodes = append(result.Nodes, queries.NodeData{
			ID:    n.ID,
			Label: n.Label,
		})
	}
	for _, e := range snapshot.Edges {
		result.Edges = append(result.Edges, queries.EdgeData{
			ID:     e.ID,
			From:   e.From,
			To:     e.To,
			Weight: e.Weight,
			Label:  e.Label,
		})
	}
	return result, nil
}
