package commands

// SubmitGraphCommand snapshots the current graph and sends it to the
// remote graph-processing service.
type SubmitGraphCommand struct{}

// Validate checks the command is well formed
func (c SubmitGraphCommand) Validate() error {
	return nil
}

// SubmitResult carries the opaque identifier the service assigned to the
// accepted graph.
type SubmitResult struct {
	GraphID string `json:"graph_id"`
}
