package commands

import (
	appErrors "graphboard/pkg/errors"
)

// DeleteEdgeCommand removes an edge by its derived "{from}-{to}" id.
// Deleting an absent edge is a no-op.
type DeleteEdgeCommand struct {
	EdgeID string `json:"edge_id"`
}

// Validate checks the command is well formed
func (c DeleteEdgeCommand) Validate() error {
	if c.EdgeID == "" {
		return appErrors.NewValidationError("edge id must not be empty")
	}
	return nil
}
