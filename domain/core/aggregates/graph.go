package aggregates

import (
	"graphboard/domain/core/valueobjects"
	appErrors "graphboard/pkg/errors"
)

// Default business-rule limits; tunable at runtime through dynamic config.
const (
	DefaultMaxNodes = 10000
	DefaultMaxEdges = 50000
)

// Node is a uniquely identified vertex. The id doubles as the display
// label; identity changes require delete and recreate.
type Node struct {
	ID    valueobjects.NodeID
	Label string
}

// Edge is a directed, weighted relation between two existing nodes. It
// does not own its endpoints: removing either endpoint removes the edge.
type Edge struct {
	ID     string
	From   valueobjects.NodeID
	To     valueobjects.NodeID
	Weight valueobjects.Weight
}

// EdgeID derives an edge's identifier from its ordered endpoint pair.
// The id is a pure function of (from, to) and is never stored apart from
// the endpoints it encodes, so it cannot drift.
func EdgeID(from, to valueobjects.NodeID) string {
	return from.String() + "-" + to.String()
}

// Graph is the aggregate root for the canonical node and edge set.
// It ensures consistency boundaries for the entire graph: after any
// successful mutation no two nodes share an id, no two edges share an
// ordered (from, to) pair, and no edge references a missing node.
type Graph struct {
	nodes     map[valueobjects.NodeID]*Node
	edges     map[string]*Edge
	nodeOrder []valueobjects.NodeID
	edgeOrder []string
	maxNodes  int
	maxEdges  int
	version   int
}

// NewGraph creates an empty graph aggregate
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[valueobjects.NodeID]*Node),
		edges:    make(map[string]*Edge),
		maxNodes: DefaultMaxNodes,
		maxEdges: DefaultMaxEdges,
	}
}

// SetLimits overrides the node and edge limits. Values <= 0 keep the
// current limit.
func (g *Graph) SetLimits(maxNodes, maxEdges int) {
	if maxNodes > 0 {
		g.maxNodes = maxNodes
	}
	if maxEdges > 0 {
		g.maxEdges = maxEdges
	}
}

// CanHold checks whether a graph of the given size fits the configured
// limits. Bulk import calls this before destroying the current graph so
// the apply phase cannot fail halfway.
func (g *Graph) CanHold(nodes, edges int) error {
	if nodes > g.maxNodes {
		return appErrors.NewGraphLimitError("nodes", g.maxNodes)
	}
	if edges > g.maxEdges {
		return appErrors.NewGraphLimitError("edges", g.maxEdges)
	}
	return nil
}

// Version returns a counter incremented by every mutation
func (g *Graph) Version() int {
	return g.version
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// HasNode checks if a node exists
func (g *Graph) HasNode(id valueobjects.NodeID) bool {
	_, exists := g.nodes[id]
	return exists
}

// HasEdge checks if the ordered pair (from, to) is already connected.
// Direction matters: (A,B) and (B,A) are distinct edges.
func (g *Graph) HasEdge(from, to valueobjects.NodeID) bool {
	_, exists := g.edges[EdgeID(from, to)]
	return exists
}

// AddNode inserts a node whose label equals its id
func (g *Graph) AddNode(id valueobjects.NodeID) error {
	if id.IsZero() {
		return appErrors.NewInvalidNodeIDError()
	}
	if _, exists := g.nodes[id]; exists {
		return appErrors.NewDuplicateNodeError(id.String())
	}
	if len(g.nodes) >= g.maxNodes {
		return appErrors.NewGraphLimitError("nodes", g.maxNodes)
	}

	g.nodes[id] = &Node{ID: id, Label: id.String()}
	g.nodeOrder = append(g.nodeOrder, id)
	g.version++
	return nil
}

// RemoveNode removes a node and every edge referencing it as a single
// logical operation, so no dangling edge is ever observable.
func (g *Graph) RemoveNode(id valueobjects.NodeID) ([]string, error) {
	if _, exists := g.nodes[id]; !exists {
		return nil, appErrors.NewNodeNotFoundError(id.String())
	}

	removedEdges := []string{}
	for _, key := range g.edgeOrder {
		edge := g.edges[key]
		if edge.From.Equals(id) || edge.To.Equals(id) {
			removedEdges = append(removedEdges, key)
		}
	}
	for _, key := range removedEdges {
		delete(g.edges, key)
	}
	g.edgeOrder = withoutKeys(g.edgeOrder, removedEdges)

	delete(g.nodes, id)
	for i, nid := range g.nodeOrder {
		if nid.Equals(id) {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}
	g.version++
	return removedEdges, nil
}

// AddEdge connects two existing nodes with a directed, weighted edge
func (g *Graph) AddEdge(from, to valueobjects.NodeID, weight valueobjects.Weight) (*Edge, error) {
	if !g.HasNode(from) {
		return nil, appErrors.NewNodeNotFoundError(from.String())
	}
	if !g.HasNode(to) {
		return nil, appErrors.NewNodeNotFoundError(to.String())
	}
	if weight.Label() == "" {
		return nil, appErrors.NewInvalidWeightError("")
	}

	key := EdgeID(from, to)
	if _, exists := g.edges[key]; exists {
		return nil, appErrors.NewDuplicateEdgeError(from.String(), to.String())
	}
	if len(g.edges) >= g.maxEdges {
		return nil, appErrors.NewGraphLimitError("edges", g.maxEdges)
	}

	edge := &Edge{
		ID:     key,
		From:   from,
		To:     to,
		Weight: weight,
	}
	g.edges[key] = edge
	g.edgeOrder = append(g.edgeOrder, key)
	g.version++
	return edge, nil
}

// RemoveEdge removes an edge by its derived id. Removing an absent edge
// is a no-op.
func (g *Graph) RemoveEdge(id string) {
	if _, exists := g.edges[id]; !exists {
		return
	}
	delete(g.edges, id)
	g.edgeOrder = withoutKeys(g.edgeOrder, []string{id})
	g.version++
}

// Clear empties nodes and edges atomically
func (g *Graph) Clear() {
	g.nodes = make(map[valueobjects.NodeID]*Node)
	g.edges = make(map[string]*Edge)
	g.nodeOrder = nil
	g.edgeOrder = nil
	g.version++
}

// Snapshot returns an immutable value copy of all nodes and edges in
// insertion order. Later mutations of the graph do not affect it.
func (g *Graph) Snapshot() GraphSnapshot {
	snapshot := GraphSnapshot{
		Nodes: make([]NodeView, 0, len(g.nodeOrder)),
		Edges: make([]EdgeView, 0, len(g.edgeOrder)),
	}
	for _, id := range g.nodeOrder {
		node := g.nodes[id]
		snapshot.Nodes = append(snapshot.Nodes, NodeView{
			ID:    node.ID.String(),
			Label: node.Label,
		})
	}
	for _, key := range g.edgeOrder {
		edge := g.edges[key]
		snapshot.Edges = append(snapshot.Edges, EdgeView{
			ID:     edge.ID,
			From:   edge.From.String(),
			To:     edge.To.String(),
			Weight: edge.Weight.Value(),
			Label:  edge.Weight.Label(),
		})
	}
	return snapshot
}

// Validate ensures graph invariants
func (g *Graph) Validate() error {
	for _, edge := range g.edges {
		if !g.HasNode(edge.From) {
			return appErrors.NewInternalError("edge references non-existent source node")
		}
		if !g.HasNode(edge.To) {
			return appErrors.NewInternalError("edge references non-existent target node")
		}
	}
	if len(g.nodeOrder) != len(g.nodes) || len(g.edgeOrder) != len(g.edges) {
		return appErrors.NewInternalError("graph ordering out of sync with storage")
	}
	return nil
}

func withoutKeys(order []string, remove []string) []string {
	if len(remove) == 0 {
		return order
	}
	drop := make(map[string]struct{}, len(remove))
	for _, key := range remove {
		drop[key] = struct{}{}
	}
	kept := order[:0]
	for _, key := range order {
		if _, skip := drop[key]; !skip {
			kept = append(kept, key)
		}
	}
	return kept
}
