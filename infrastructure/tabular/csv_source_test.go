package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphboard/application/commands"
	appErrors "graphboard/pkg/errors"
)

func TestReadRows_HeaderDrivenParse(t *testing.T) {
	// Arrange: column order differs from the canonical one
	input := "Cost,From,To\n2,A,B\n5,B,C\n"

	// Act
	rows, err := ReadRows(strings.NewReader(input))

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, commands.RowRecord{From: "A", To: "B", Cost: "2"}, rows[0])
	assert.Equal(t, commands.RowRecord{From: "B", To: "C", Cost: "5"}, rows[1])
}

func TestReadRows_CostColumnOptional(t *testing.T) {
	input := "From,To\nA,B\n"

	rows, err := ReadRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Cost)
}

func TestReadRows_ShortRowYieldsEmptyFields(t *testing.T) {
	// A ragged row is not a file error; the reconciler decides its fate
	input := "From,To,Cost\nA\nB,C,3\n"

	rows, err := ReadRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, commands.RowRecord{From: "A", To: "", Cost: ""}, rows[0])
	assert.Equal(t, commands.RowRecord{From: "B", To: "C", Cost: "3"}, rows[1])
}

func TestReadRows_MissingRequiredHeaderFailsWholeFile(t *testing.T) {
	input := "Source,Target\nA,B\n"

	rows, err := ReadRows(strings.NewReader(input))

	require.Error(t, err)
	assert.True(t, appErrors.IsImportParse(err))
	assert.Nil(t, rows)
}

func TestReadRows_MalformedCSVFailsWholeFile(t *testing.T) {
	// An unterminated quote is unparseable as CSV
	input := "From,To\n\"A,B\n"

	_, err := ReadRows(strings.NewReader(input))

	require.Error(t, err)
	assert.True(t, appErrors.IsImportParse(err))
}

func TestReadRows_EmptyInput(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_HeaderOnly(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("From,To,Cost\n"))

	require.NoError(t, err)
	// Empty but never nil, so downstream command validation accepts it
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
