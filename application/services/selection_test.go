package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionTracker_SingleSelection(t *testing.T) {
	// Arrange
	tracker := NewSelectionTracker()

	// Act: a node click then an edge click
	tracker.SelectNode("A")
	tracker.SelectEdge("A-B")

	// Assert: only the latest click holds
	current, ok := tracker.Current()
	assert.True(t, ok)
	assert.Equal(t, SelectionEdge, current.Kind)
	assert.Equal(t, "A-B", current.ID)
}

func TestSelectionTracker_Clear(t *testing.T) {
	tracker := NewSelectionTracker()
	tracker.SelectNode("A")

	tracker.Clear()

	_, ok := tracker.Current()
	assert.False(t, ok)
}

func TestSelectionTracker_InvalidateMatchingID(t *testing.T) {
	tracker := NewSelectionTracker()
	tracker.SelectEdge("A-B")

	tracker.Invalidate("A-C", "A-B")

	_, ok := tracker.Current()
	assert.False(t, ok)
}

func TestSelectionTracker_InvalidateNonMatchingKeepsSelection(t *testing.T) {
	tracker := NewSelectionTracker()
	tracker.SelectNode("C")

	tracker.Invalidate("A", "B")

	current, ok := tracker.Current()
	assert.True(t, ok)
	assert.Equal(t, "C", current.ID)
}

func TestSelectionTracker_EmptyTrackerIsSafe(t *testing.T) {
	tracker := NewSelectionTracker()

	tracker.Clear()
	tracker.Invalidate("anything")

	_, ok := tracker.Current()
	assert.False(t, ok)
}
