package errors

import (
	"fmt"
	"net/http"
)

// Error codes for graph construction failures. Handlers rely on these to
// map a rejected mutation to a user-visible explanation.
const (
	CodeDuplicateNode    = "DUPLICATE_NODE"
	CodeDuplicateEdge    = "DUPLICATE_EDGE"
	CodeInvalidWeight    = "INVALID_WEIGHT"
	CodeInvalidNodeID    = "INVALID_NODE_ID"
	CodeNodeNotFound     = "NODE_NOT_FOUND"
	CodeGraphLimit       = "GRAPH_LIMIT"
	CodeEmptyGraph       = "EMPTY_GRAPH"
	CodeImportParse      = "IMPORT_PARSE"
	CodeSubmissionFailed = "SUBMISSION_FAILED"
	CodeSessionBusy      = "SESSION_BUSY"
)

// NewDuplicateNodeError reports an attempt to add a node whose id already exists
func NewDuplicateNodeError(id string) *AppError {
	return NewConflictError(fmt.Sprintf("node '%s' already exists", id)).
		WithCode(CodeDuplicateNode).
		WithDetails(map[string]interface{}{"node_id": id})
}

// NewDuplicateEdgeError reports an attempt to add an edge for an ordered
// pair that is already connected in that direction
func NewDuplicateEdgeError(from, to string) *AppError {
	return NewConflictError(fmt.Sprintf("edge '%s-%s' already exists", from, to)).
		WithCode(CodeDuplicateEdge).
		WithDetails(map[string]interface{}{"from": from, "to": to})
}

// NewInvalidWeightError reports a weight that is not a finite number >= 0
func NewInvalidWeightError(raw string) *AppError {
	return NewValidationError(fmt.Sprintf("weight '%s' must be a non-negative number", raw)).
		WithCode(CodeInvalidWeight)
}

// NewInvalidNodeIDError reports an empty or whitespace-only node id
func NewInvalidNodeIDError() *AppError {
	return NewValidationError("node id must not be empty").
		WithCode(CodeInvalidNodeID)
}

// NewNodeNotFoundError reports an operation against a missing node
func NewNodeNotFoundError(id string) *AppError {
	return NewNotFoundError(fmt.Sprintf("node '%s'", id)).
		WithCode(CodeNodeNotFound)
}

// NewGraphLimitError reports a graph that grew past a configured limit
func NewGraphLimitError(what string, limit int) *AppError {
	return NewValidationError(fmt.Sprintf("maximum %s reached (%d)", what, limit)).
		WithCode(CodeGraphLimit)
}

// NewEmptyGraphError reports a submission attempted on a graph with no nodes
func NewEmptyGraphError() *AppError {
	return NewValidationError("graph has no nodes to submit").
		WithCode(CodeEmptyGraph).
		WithStatus(http.StatusUnprocessableEntity)
}

// NewImportParseError reports a source file that could not be parsed as
// tabular data. The whole import is aborted; the existing graph is untouched.
func NewImportParseError(err error) *AppError {
	return NewValidationError("import file is not valid tabular data").
		WithCode(CodeImportParse).
		WithCause(err)
}

// NewSubmissionError reports a failed request to the graph-processing service
func NewSubmissionError(message string, err error) *AppError {
	return NewNetworkError(message, err).WithCode(CodeSubmissionFailed)
}

// NewSessionBusyError reports a connect gesture started while one is in flight
func NewSessionBusyError() *AppError {
	return NewConflictError("a connect session is already in progress").
		WithCode(CodeSessionBusy)
}

// IsDuplicateNode checks for a duplicate-node rejection
func IsDuplicateNode(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeDuplicateNode
}

// IsDuplicateEdge checks for a duplicate-edge rejection
func IsDuplicateEdge(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeDuplicateEdge
}

// IsInvalidWeight checks for a rejected weight value
func IsInvalidWeight(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeInvalidWeight
}

// IsEmptyGraph checks for a submission rejected on an empty graph
func IsEmptyGraph(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeEmptyGraph
}

// IsImportParse checks for a file-level import parse failure
func IsImportParse(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == CodeImportParse
}
