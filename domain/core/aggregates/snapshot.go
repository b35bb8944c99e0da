package aggregates

// NodeView is a value copy of a node taken at snapshot time
type NodeView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// EdgeView is a value copy of an edge taken at snapshot time
type EdgeView struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
}

// GraphSnapshot is an immutable, point-in-time copy of the graph's nodes
// and edges, safe to hand to a consumer without risk of being mutated by
// later graph operations.
type GraphSnapshot struct {
	Nodes []NodeView `json:"nodes"`
	Edges []EdgeView `json:"edges"`
}

// IsEmpty reports whether the snapshot contains no nodes
func (s GraphSnapshot) IsEmpty() bool {
	return len(s.Nodes) == 0
}
