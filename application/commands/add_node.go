package commands

import (
	"strings"

	appErrors "graphboard/pkg/errors"
)

// AddNodeCommand adds a single named node to the graph
type AddNodeCommand struct {
	NodeID string `json:"node_id"`
}

// Validate checks the command is well formed
func (c AddNodeCommand) Validate() error {
	if strings.TrimSpace(c.NodeID) == "" {
		return appErrors.NewInvalidNodeIDError()
	}
	return nil
}
