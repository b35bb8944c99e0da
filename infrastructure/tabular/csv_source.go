// Package tabular reads the row records the import reconciler consumes.
// The source format is CSV with a header row defining the field names;
// the reconciler expects From, To and an optional Cost column.
package tabular

import (
	"encoding/csv"
	"io"
	"strings"

	"graphboard/application/commands"
	appErrors "graphboard/pkg/errors"
)

// Column names the import format understands
const (
	ColumnFrom = "From"
	ColumnTo   = "To"
	ColumnCost = "Cost"
)

// ReadRows parses CSV input into row records. Field names come from the
// header row. A file that cannot be parsed as CSV, or whose header lacks
// both From and To columns, fails as a whole; a data row that merely
// lacks values is passed through for the reconciler to warn about.
func ReadRows(r io.Reader) ([]commands.RowRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows become row-level warnings, not file errors
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []commands.RowRecord{}, nil
	}
	if err != nil {
		return nil, appErrors.NewImportParseError(err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	fromCol, hasFrom := columns[ColumnFrom]
	toCol, hasTo := columns[ColumnTo]
	costCol, hasCost := columns[ColumnCost]
	if !hasFrom || !hasTo {
		return nil, appErrors.NewImportParseError(
			appErrors.NewValidationError("header must define From and To columns"))
	}

	// Never nil: a header-only file is a valid import of zero rows.
	rows := []commands.RowRecord{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, appErrors.NewImportParseError(err)
		}

		row := commands.RowRecord{
			From: fieldAt(record, fromCol),
			To:   fieldAt(record, toCol),
		}
		if hasCost {
			row.Cost = fieldAt(record, costCol)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// fieldAt returns the field at index i, or "" when the row is too short
func fieldAt(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
