package valueobjects

import (
	"errors"
	"strings"
)

// NodeID is a value object representing a node's stable, user-visible
// identifier. The same string doubles as the node's display label.
// Value objects are immutable and have no identity beyond their value.
type NodeID struct {
	value string
}

// NewNodeID creates a NodeID from user input. Leading and trailing
// whitespace is trimmed; an empty or whitespace-only id is rejected.
func NewNodeID(id string) (NodeID, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return NodeID{}, errors.New("node ID cannot be empty")
	}
	return NodeID{value: trimmed}, nil
}

// String returns the string representation of the NodeID
func (id NodeID) String() string {
	return id.value
}

// Equals checks if two NodeIDs are equal
func (id NodeID) Equals(other NodeID) bool {
	return id.value == other.value
}

// IsZero checks if the NodeID is the zero value
func (id NodeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id NodeID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *NodeID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("NodeID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
