package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphboard/application/commands"
	"graphboard/domain/core/aggregates"
	"graphboard/domain/core/valueobjects"
	"graphboard/infrastructure/persistence/memory"
	appErrors "graphboard/pkg/errors"
)

func mustNodeID(t *testing.T, raw string) valueobjects.NodeID {
	t.Helper()
	id, err := valueobjects.NewNodeID(raw)
	require.NoError(t, err)
	return id
}

// MockGraphSubmitter mocks the submission port
type MockGraphSubmitter struct {
	mock.Mock
}

func (m *MockGraphSubmitter) Submit(ctx context.Context, snapshot aggregates.GraphSnapshot) (string, error) {
	args := m.Called(ctx, snapshot)
	return args.String(0), args.Error(1)
}

func TestSubmitGraphHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewWorkspaceRepository(zap.NewNop())
	require.NoError(t, repo.Update(ctx, func(g *aggregates.Graph) error {
		if err := g.AddNode(mustNodeID(t, "A")); err != nil {
			return err
		}
		return g.AddNode(mustNodeID(t, "B"))
	}))

	mockSubmitter := new(MockGraphSubmitter)
	mockSubmitter.On("Submit", ctx, mock.AnythingOfType("aggregates.GraphSnapshot")).Return("graph-42", nil)

	handler := NewSubmitGraphHandler(repo, mockSubmitter, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, commands.SubmitGraphCommand{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "graph-42", result.GraphID)
	mockSubmitter.AssertExpectations(t)
}

func TestSubmitGraphHandler_Handle_EmptyGraphNeverReachesTransport(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewWorkspaceRepository(zap.NewNop())
	mockSubmitter := new(MockGraphSubmitter)

	handler := NewSubmitGraphHandler(repo, mockSubmitter, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, commands.SubmitGraphCommand{})

	// Assert: rejected locally, no request attempted
	require.Error(t, err)
	assert.True(t, appErrors.IsEmptyGraph(err))
	assert.Nil(t, result)
	mockSubmitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitGraphHandler_Handle_TransportErrorPropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := memory.NewWorkspaceRepository(zap.NewNop())
	require.NoError(t, repo.Update(ctx, func(g *aggregates.Graph) error {
		return g.AddNode(mustNodeID(t, "A"))
	}))

	mockSubmitter := new(MockGraphSubmitter)
	submissionErr := appErrors.NewSubmissionError("service unreachable", nil)
	mockSubmitter.On("Submit", ctx, mock.AnythingOfType("aggregates.GraphSnapshot")).Return("", submissionErr)

	handler := NewSubmitGraphHandler(repo, mockSubmitter, zap.NewNop())

	// Act
	result, err := handler.Handle(ctx, commands.SubmitGraphCommand{})

	// Assert: the failure surfaces, the graph is untouched
	require.Error(t, err)
	assert.Nil(t, result)
	snapshot, snapErr := repo.Snapshot(ctx)
	require.NoError(t, snapErr)
	assert.Len(t, snapshot.Nodes, 1)
}
