package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopQuery struct{}

func (noopQuery) Validate() error { return nil }

func TestQueryBus_Register_DuplicateTypeRejected(t *testing.T) {
	// Arrange
	queryBus := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, queryBus.Register(noopQuery{}, handler))

	// Act
	err := queryBus.Register(noopQuery{}, handler)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestQueryBus_Ask_Unregistered(t *testing.T) {
	queryBus := NewQueryBus()

	_, err := queryBus.Ask(context.Background(), noopQuery{})

	assert.Error(t, err)
}

func TestQueryBus_Ask_ReturnsHandlerResult(t *testing.T) {
	// Arrange
	queryBus := NewQueryBus()
	handler := QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return "result", nil
	})
	require.NoError(t, queryBus.Register(noopQuery{}, handler))

	// Act
	result, err := queryBus.Ask(context.Background(), noopQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "result", result)
}
