package commands

import (
	"strings"

	appErrors "graphboard/pkg/errors"
)

// DeleteNodeCommand removes a node and, as one logical operation, every
// edge that references it.
type DeleteNodeCommand struct {
	NodeID string `json:"node_id"`
}

// Validate checks the command is well formed
func (c DeleteNodeCommand) Validate() error {
	if strings.TrimSpace(c.NodeID) == "" {
		return appErrors.NewInvalidNodeIDError()
	}
	return nil
}
