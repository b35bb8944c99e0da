package commands

import (
	appErrors "graphboard/pkg/errors"
)

// RowRecord is one record of tabular import input. Field names follow the
// source file's header row; Cost is optional.
type RowRecord struct {
	From string
	To   string
	Cost string
}

// ImportGraphCommand replaces the current graph with the graph implied by
// a sequence of row records.
type ImportGraphCommand struct {
	Rows []RowRecord
}

// Validate checks the command is well formed
func (c ImportGraphCommand) Validate() error {
	if c.Rows == nil {
		return appErrors.NewValidationError("import rows must not be nil")
	}
	return nil
}

// ImportResult reports what a completed import did
type ImportResult struct {
	NodesAdded int      `json:"nodes_added"`
	EdgesAdded int      `json:"edges_added"`
	Warnings   []string `json:"warnings,omitempty"`
}
