package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/application/services"
	"graphboard/domain/core/aggregates"
	"graphboard/infrastructure/persistence/memory"
	"graphboard/infrastructure/rendering"
	"graphboard/infrastructure/tabular"
)

func newImportFixture(t *testing.T) (*ImportGraphHandler, *memory.WorkspaceRepository, *services.SelectionTracker, *rendering.FitSignal) {
	t.Helper()
	repo := memory.NewWorkspaceRepository(zap.NewNop())
	selection := services.NewSelectionTracker()
	fit := rendering.NewFitSignal(zap.NewNop())
	handler := NewImportGraphHandler(repo, fit, selection, zap.NewNop())
	return handler, repo, selection, fit
}

func TestImportGraphHandler_BuildsImpliedGraph(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler, repo, _, fit := newImportFixture(t)
	cmd := commands.ImportGraphCommand{Rows: []commands.RowRecord{
		{From: "A", To: "B", Cost: "2"},
		{From: "B", To: "C", Cost: "5"},
		{From: "A", To: "C"},
	}}

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.NodesAdded)
	assert.Equal(t, 3, result.EdgesAdded)
	assert.Empty(t, result.Warnings)

	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Nodes, 3)
	assert.Equal(t, "A", snapshot.Nodes[0].ID)
	assert.Equal(t, "B", snapshot.Nodes[1].ID)
	assert.Equal(t, "C", snapshot.Nodes[2].ID)
	require.Len(t, snapshot.Edges, 3)
	assert.Equal(t, 2.0, snapshot.Edges[0].Weight)
	// Missing Cost falls back to weight 1 with label "1"
	assert.Equal(t, 1.0, snapshot.Edges[2].Weight)
	assert.Equal(t, "1", snapshot.Edges[2].Label)

	assert.True(t, fit.ConsumeFit())
}

func TestImportGraphHandler_ReplacesExistingGraph(t *testing.T) {
	// Arrange: something already on the board
	ctx := context.Background()
	handler, repo, selection, _ := newImportFixture(t)
	require.NoError(t, repo.Update(ctx, func(g *aggregates.Graph) error {
		return g.AddNode(mustNodeID(t, "old"))
	}))
	selection.SelectNode("old")

	// Act
	_, err := handler.Handle(ctx, commands.ImportGraphCommand{Rows: []commands.RowRecord{
		{From: "X", To: "Y", Cost: "1"},
	}})

	// Assert: the old graph and its selection are gone
	require.NoError(t, err)
	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Nodes, 2)
	assert.Equal(t, "X", snapshot.Nodes[0].ID)
	_, selected := selection.Current()
	assert.False(t, selected)
}

func TestImportGraphHandler_SkipsIncompleteRowsWithWarnings(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler, repo, _, _ := newImportFixture(t)
	cmd := commands.ImportGraphCommand{Rows: []commands.RowRecord{
		{From: "A", To: "B", Cost: "2"},
		{From: "A", To: "", Cost: "9"},
		{From: " ", To: "C"},
		{From: "B", To: "C", Cost: "3"},
	}}

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert: bad rows warn, good rows still land
	require.NoError(t, err)
	assert.Equal(t, 3, result.NodesAdded)
	assert.Equal(t, 2, result.EdgesAdded)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "row 2: missing From or To, skipped", result.Warnings[0])
	assert.Equal(t, "row 3: missing From or To, skipped", result.Warnings[1])

	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Edges, 2)
}

func TestImportGraphHandler_FirstOccurrenceWinsOnDuplicatePairs(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler, repo, _, _ := newImportFixture(t)
	cmd := commands.ImportGraphCommand{Rows: []commands.RowRecord{
		{From: "A", To: "B", Cost: "2"},
		{From: "A", To: "B", Cost: "7"},
		{From: "B", To: "A", Cost: "4"},
	}}

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert: the repeated (A,B) keeps its first weight, (B,A) is distinct
	require.NoError(t, err)
	assert.Equal(t, 2, result.EdgesAdded)

	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Edges, 2)
	assert.Equal(t, "A-B", snapshot.Edges[0].ID)
	assert.Equal(t, 2.0, snapshot.Edges[0].Weight)
	assert.Equal(t, "B-A", snapshot.Edges[1].ID)
}

func TestImportGraphHandler_Idempotent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler, repo, _, _ := newImportFixture(t)
	rows := []commands.RowRecord{
		{From: "A", To: "B", Cost: "2"},
		{From: "B", To: "C", Cost: "3"},
	}

	// Act: same file twice
	_, err := handler.Handle(ctx, commands.ImportGraphCommand{Rows: rows})
	require.NoError(t, err)
	first, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	_, err = handler.Handle(ctx, commands.ImportGraphCommand{Rows: rows})
	require.NoError(t, err)
	second, err := repo.Snapshot(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestImportGraphHandler_TooLargeImportPreservesGraph(t *testing.T) {
	// Arrange: a tight node limit and an existing graph
	ctx := context.Background()
	handler, repo, _, fit := newImportFixture(t)
	repo.SetLimits(2, 10)
	require.NoError(t, repo.Update(ctx, func(g *aggregates.Graph) error {
		return g.AddNode(mustNodeID(t, "survivor"))
	}))

	// Act: three implied nodes cannot fit
	_, err := handler.Handle(ctx, commands.ImportGraphCommand{Rows: []commands.RowRecord{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
	}})

	// Assert: rejected before Clear, so the old graph survives
	require.Error(t, err)
	snapshot, snapErr := repo.Snapshot(ctx)
	require.NoError(t, snapErr)
	require.Len(t, snapshot.Nodes, 1)
	assert.Equal(t, "survivor", snapshot.Nodes[0].ID)
	assert.False(t, fit.ConsumeFit())
}

func TestImportGraphHandler_HeaderOnlyFileClearsTheBoard(t *testing.T) {
	// Arrange: a graph on the board and a CSV with a header but no rows
	ctx := context.Background()
	handler, repo, _, _ := newImportFixture(t)
	require.NoError(t, repo.Update(ctx, func(g *aggregates.Graph) error {
		return g.AddNode(mustNodeID(t, "old"))
	}))
	rows, err := tabular.ReadRows(strings.NewReader("From,To,Cost\n"))
	require.NoError(t, err)

	// Act
	result, err := handler.Handle(ctx, commands.ImportGraphCommand{Rows: rows})

	// Assert: a well-formed file with zero data rows is a valid import
	require.NoError(t, err)
	assert.Equal(t, 0, result.NodesAdded)
	assert.Equal(t, 0, result.EdgesAdded)
	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
}

func TestImportGraphHandler_EmptyRowsClearTheBoard(t *testing.T) {
	// Arrange
	ctx := context.Background()
	handler, repo, _, _ := newImportFixture(t)
	require.NoError(t, repo.Update(ctx, func(g *aggregates.Graph) error {
		return g.AddNode(mustNodeID(t, "old"))
	}))

	// Act: a valid file with no data rows means an empty graph
	result, err := handler.Handle(ctx, commands.ImportGraphCommand{Rows: []commands.RowRecord{}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.NodesAdded)
	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
}
