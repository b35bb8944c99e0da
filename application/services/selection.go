package services

import (
	"sync"
)

// SelectionKind distinguishes what kind of entity is selected
type SelectionKind string

const (
	SelectionNode SelectionKind = "node"
	SelectionEdge SelectionKind = "edge"
)

// Selection identifies the single currently selected entity
type Selection struct {
	Kind SelectionKind `json:"kind"`
	ID   string        `json:"id"`
}

// SelectionTracker holds the canvas's ephemeral selection: at most one
// node or edge at a time. It is presentation state, not part of the
// graph, but deletion reads it and must clear it when the referenced
// entity disappears.
type SelectionTracker struct {
	mu      sync.Mutex
	current *Selection
}

// NewSelectionTracker creates an empty tracker
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{}
}

// SelectNode records a node click
func (t *SelectionTracker) SelectNode(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = &Selection{Kind: SelectionNode, ID: id}
}

// SelectEdge records an edge click
func (t *SelectionTracker) SelectEdge(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = &Selection{Kind: SelectionEdge, ID: id}
}

// Clear drops the selection, as on a background click
func (t *SelectionTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
}

// Current returns the selected entity, if any
func (t *SelectionTracker) Current() (Selection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Selection{}, false
	}
	return *t.current, true
}

// Invalidate clears the selection if it references any of the given ids.
// Called after deletions so the selection never points at a dead entity.
func (t *SelectionTracker) Invalidate(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return
	}
	for _, id := range ids {
		if t.current.ID == id {
			t.current = nil
			return
		}
	}
}
