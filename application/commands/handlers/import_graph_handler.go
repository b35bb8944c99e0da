package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/ports"
	"graphboard/application/services"
	"graphboard/domain/core/aggregates"
	"graphboard/domain/core/valueobjects"
	appErrors "graphboard/pkg/errors"
)

// ImportGraphHandler reconciles tabular rows into a node/edge delta and
// replaces the current graph with it. Rows are validated and deduplicated
// up front, so once the old graph is cleared the apply phase cannot fail.
type ImportGraphHandler struct {
	repo      ports.WorkspaceRepository
	viewport  ports.Viewport
	selection *services.SelectionTracker
	logger    *zap.Logger
}

// NewImportGraphHandler creates a new import handler
func NewImportGraphHandler(
	repo ports.WorkspaceRepository,
	viewport ports.Viewport,
	selection *services.SelectionTracker,
	logger *zap.Logger,
) *ImportGraphHandler {
	return &ImportGraphHandler{
		repo:      repo,
		viewport:  viewport,
		selection: selection,
		logger:    logger,
	}
}

// plannedEdge is an edge retained from the row scan, ready to insert
type plannedEdge struct {
	from   valueobjects.NodeID
	to     valueobjects.NodeID
	weight valueobjects.Weight
}

// importPlan is the node/edge delta computed from the rows before any
// store mutation happens
type importPlan struct {
	nodes    []valueobjects.NodeID
	edges    []plannedEdge
	warnings []string
}

// Handle executes the import command
func (h *ImportGraphHandler) Handle(ctx context.Context, cmd commands.ImportGraphCommand) (*commands.ImportResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	plan := reconcileRows(cmd.Rows)

	if err := h.repo.Update(ctx, func(g *aggregates.Graph) error {
		// Size check happens before Clear so a too-large file cannot
		// destroy the existing graph.
		if err := g.CanHold(len(plan.nodes), len(plan.edges)); err != nil {
			return err
		}

		g.Clear()
		for _, id := range plan.nodes {
			if err := g.AddNode(id); err != nil {
				return appErrors.Wrap(err, "import apply phase")
			}
		}
		for _, e := range plan.edges {
			if _, err := g.AddEdge(e.from, e.to, e.weight); err != nil {
				return appErrors.Wrap(err, "import apply phase")
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	// The old graph is gone; whatever was selected no longer exists.
	h.selection.Clear()

	// Ask the canvas to recentre on the new graph.
	h.viewport.FitToGraph(ctx)

	h.logger.Info("Graph imported",
		zap.Int("nodes", len(plan.nodes)),
		zap.Int("edges", len(plan.edges)),
		zap.Int("skippedRows", len(plan.warnings)),
	)

	return &commands.ImportResult{
		NodesAdded: len(plan.nodes),
		EdgesAdded: len(plan.edges),
		Warnings:   plan.warnings,
	}, nil
}

// reconcileRows converts raw rows into a deduplicated node/edge delta.
//
// A row missing From or To is skipped with a warning; processing
// continues. Every endpoint seen on a valid row implies a node. For each
// ordered (From, To) pair only the first occurrence is kept; later
// duplicates are dropped silently, mirroring the store's
// direction-sensitive uniqueness. Weight comes from Cost when it parses,
// else the default label "1".
func reconcileRows(rows []commands.RowRecord) importPlan {
	plan := importPlan{}
	seenNodes := make(map[string]struct{})
	seenPairs := make(map[string]struct{})

	for i, row := range rows {
		from := strings.TrimSpace(row.From)
		to := strings.TrimSpace(row.To)
		if from == "" || to == "" {
			plan.warnings = append(plan.warnings,
				fmt.Sprintf("row %d: missing From or To, skipped", i+1))
			continue
		}

		fromID, _ := valueobjects.NewNodeID(from)
		toID, _ := valueobjects.NewNodeID(to)

		for _, id := range []valueobjects.NodeID{fromID, toID} {
			if _, seen := seenNodes[id.String()]; !seen {
				seenNodes[id.String()] = struct{}{}
				plan.nodes = append(plan.nodes, id)
			}
		}

		key := aggregates.EdgeID(fromID, toID)
		if _, seen := seenPairs[key]; seen {
			continue
		}
		seenPairs[key] = struct{}{}

		plan.edges = append(plan.edges, plannedEdge{
			from:   fromID,
			to:     toID,
			weight: valueobjects.ParseWeightOrDefault(row.Cost),
		})
	}

	return plan
}
