package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphboard/domain/core/valueobjects"
	appErrors "graphboard/pkg/errors"
)

func mustNodeID(t *testing.T, raw string) valueobjects.NodeID {
	t.Helper()
	id, err := valueobjects.NewNodeID(raw)
	require.NoError(t, err)
	return id
}

func TestGraph_AddNode_RejectsDuplicate(t *testing.T) {
	// Arrange
	g := NewGraph()
	a := mustNodeID(t, "A")

	// Act
	err1 := g.AddNode(a)
	err2 := g.AddNode(a)

	// Assert
	assert.NoError(t, err1)
	assert.Error(t, err2)
	assert.True(t, appErrors.IsDuplicateNode(err2))
	assert.Equal(t, 1, g.NodeCount())
}

func TestGraph_AddEdge_DirectionMatters(t *testing.T) {
	// Arrange
	g := NewGraph()
	a := mustNodeID(t, "A")
	b := mustNodeID(t, "B")
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	w, err := valueobjects.NewWeight(2)
	require.NoError(t, err)

	// Act
	_, errAB := g.AddEdge(a, b, w)
	_, errBA := g.AddEdge(b, a, w)
	_, errDup := g.AddEdge(a, b, w)

	// Assert: the reverse pair is a distinct edge, the same pair is not
	assert.NoError(t, errAB)
	assert.NoError(t, errBA)
	assert.True(t, appErrors.IsDuplicateEdge(errDup))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_AddEdge_RequiresExistingEndpoints(t *testing.T) {
	// Arrange
	g := NewGraph()
	a := mustNodeID(t, "A")
	ghost := mustNodeID(t, "ghost")
	require.NoError(t, g.AddNode(a))
	w := valueobjects.DefaultWeight()

	// Act
	_, errFrom := g.AddEdge(ghost, a, w)
	_, errTo := g.AddEdge(a, ghost, w)

	// Assert
	assert.Error(t, errFrom)
	assert.Error(t, errTo)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_RemoveNode_CascadesEdges(t *testing.T) {
	// Arrange
	g := NewGraph()
	a := mustNodeID(t, "A")
	b := mustNodeID(t, "B")
	c := mustNodeID(t, "C")
	for _, id := range []valueobjects.NodeID{a, b, c} {
		require.NoError(t, g.AddNode(id))
	}
	w := valueobjects.DefaultWeight()
	_, err := g.AddEdge(a, b, w)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, w)
	require.NoError(t, err)
	_, err = g.AddEdge(c, a, w)
	require.NoError(t, err)

	// Act
	removed, err := g.RemoveNode(b)

	// Assert: both edges touching B are gone, C-A survives
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A-B", "B-C"}, removed)
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(c, a))
	assert.NoError(t, g.Validate())
}

func TestGraph_RemoveNode_NotFound(t *testing.T) {
	g := NewGraph()

	removed, err := g.RemoveNode(mustNodeID(t, "missing"))

	assert.Error(t, err)
	assert.Nil(t, removed)
}

func TestGraph_RemoveEdge_AbsentIsNoop(t *testing.T) {
	// Arrange
	g := NewGraph()
	a := mustNodeID(t, "A")
	b := mustNodeID(t, "B")
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	_, err := g.AddEdge(a, b, valueobjects.DefaultWeight())
	require.NoError(t, err)
	versionBefore := g.Version()

	// Act
	g.RemoveEdge("B-A")

	// Assert: nothing changed, not even the version
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, versionBefore, g.Version())
}

func TestGraph_Snapshot_InsertionOrderAndImmutability(t *testing.T) {
	// Arrange
	g := NewGraph()
	for _, raw := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddNode(mustNodeID(t, raw)))
	}
	_, err := g.AddEdge(mustNodeID(t, "C"), mustNodeID(t, "A"), valueobjects.DefaultWeight())
	require.NoError(t, err)

	// Act
	snapshot := g.Snapshot()
	_, err = g.RemoveNode(mustNodeID(t, "C"))
	require.NoError(t, err)

	// Assert: order follows insertion, later mutations do not leak in
	require.Len(t, snapshot.Nodes, 3)
	assert.Equal(t, "C", snapshot.Nodes[0].ID)
	assert.Equal(t, "A", snapshot.Nodes[1].ID)
	assert.Equal(t, "B", snapshot.Nodes[2].ID)
	require.Len(t, snapshot.Edges, 1)
	assert.Equal(t, "C-A", snapshot.Edges[0].ID)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_Clear_EmptiesEverything(t *testing.T) {
	// Arrange
	g := NewGraph()
	a := mustNodeID(t, "A")
	b := mustNodeID(t, "B")
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	_, err := g.AddEdge(a, b, valueobjects.DefaultWeight())
	require.NoError(t, err)

	// Act
	g.Clear()

	// Assert
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.Snapshot().IsEmpty())
}

func TestGraph_Limits(t *testing.T) {
	// Arrange
	g := NewGraph()
	g.SetLimits(2, 1)

	// Act
	err1 := g.AddNode(mustNodeID(t, "A"))
	err2 := g.AddNode(mustNodeID(t, "B"))
	err3 := g.AddNode(mustNodeID(t, "C"))

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Error(t, err3)
	assert.Error(t, g.CanHold(3, 0))
	assert.Error(t, g.CanHold(1, 2))
	assert.NoError(t, g.CanHold(2, 1))
}

func TestEdgeID_DerivedFromEndpoints(t *testing.T) {
	a := mustNodeID(t, "A")
	b := mustNodeID(t, "B")

	assert.Equal(t, "A-B", EdgeID(a, b))
	assert.Equal(t, "B-A", EdgeID(b, a))
}
