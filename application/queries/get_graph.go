package queries

// GetGraphQuery asks for the current graph contents, the shape the
// rendering collaborator re-draws from after every change.
type GetGraphQuery struct{}

// Validate checks the query is well formed
func (q GetGraphQuery) Validate() error {
	return nil
}

// NodeData is a node as handed to the rendering layer
type NodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// EdgeData is an edge as handed to the rendering layer
type EdgeData struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
}

// GraphDataResult is the complete graph view
type GraphDataResult struct {
	Nodes []NodeData `json:"nodes"`
	Edges []EdgeData `json:"edges"`
}
