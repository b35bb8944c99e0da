// Package connect implements the interactive edge-creation protocol: a
// short-lived state machine scoped to a single "connect" gesture on the
// canvas. The gesture either commits exactly one validated edge to the
// graph or aborts without mutating anything.
package connect

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"graphboard/application/ports"
	"graphboard/domain/core/aggregates"
	"graphboard/domain/core/valueobjects"
	appErrors "graphboard/pkg/errors"
)

// State is the protocol state for one connect gesture
type State string

const (
	StateIdle           State = "IDLE"
	StateAwaitingDrag   State = "AWAITING_DRAG"
	StateCandidateEdge  State = "CANDIDATE_EDGE"
	StateAwaitingWeight State = "AWAITING_WEIGHT"
	StateCommitted      State = "COMMITTED"
	StateAborted        State = "ABORTED"
)

// AbortReason explains why a gesture reached Aborted
type AbortReason string

const (
	AbortSelfLoop      AbortReason = "self_loop"
	AbortUnknownNode   AbortReason = "unknown_node"
	AbortDuplicateEdge AbortReason = "duplicate_edge"
	AbortInvalidWeight AbortReason = "invalid_weight"
	AbortCancelled     AbortReason = "cancelled"
)

// Outcome reports the state the machine reached after an input
type Outcome struct {
	SessionID string      `json:"session_id"`
	State     State       `json:"state"`
	Reason    AbortReason `json:"reason,omitempty"`
	EdgeID    string      `json:"edge_id,omitempty"`
}

// session is the in-flight gesture
type session struct {
	id    string
	state State
	from  valueobjects.NodeID
	to    valueobjects.NodeID
}

// Manager runs the protocol. It handles exactly one gesture at a time;
// starting a new one while another is in flight is rejected until the
// machine is back at Idle.
type Manager struct {
	mu      sync.Mutex
	repo    ports.WorkspaceRepository
	logger  *zap.Logger
	current *session
}

// NewManager creates a protocol manager
func NewManager(repo ports.WorkspaceRepository, logger *zap.Logger) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger,
	}
}

// State returns the current protocol state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return StateIdle
	}
	return m.current.state
}

// Begin enters connect-mode for a new gesture
func (m *Manager) Begin() (*Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return nil, appErrors.NewSessionBusyError()
	}

	m.current = &session{
		id:    uuid.New().String(),
		state: StateAwaitingDrag,
	}
	m.logger.Debug("Connect session started", zap.String("sessionID", m.current.id))

	return &Outcome{SessionID: m.current.id, State: StateAwaitingDrag}, nil
}

// CompleteDrag feeds the drag-completed event into the machine. The two
// endpoints must be distinct existing nodes; a duplicate ordered pair
// aborts here, before any weight prompt.
func (m *Manager) CompleteDrag(ctx context.Context, fromRaw, toRaw string) (*Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.state != StateAwaitingDrag {
		return nil, appErrors.NewValidationError("no connect session awaiting a drag")
	}

	from, err := valueobjects.NewNodeID(fromRaw)
	if err != nil {
		return m.abortLocked(AbortUnknownNode), nil
	}
	to, err := valueobjects.NewNodeID(toRaw)
	if err != nil {
		return m.abortLocked(AbortUnknownNode), nil
	}

	// The drag mechanism should never produce a self-loop; if the input
	// supplies one anyway, the gesture aborts.
	if from.Equals(to) {
		return m.abortLocked(AbortSelfLoop), nil
	}

	m.current.state = StateCandidateEdge
	m.current.from = from
	m.current.to = to

	snapshot, err := m.repo.Snapshot(ctx)
	if err != nil {
		m.abortLocked(AbortUnknownNode)
		return nil, err
	}
	hasFrom, hasTo := false, false
	for _, n := range snapshot.Nodes {
		if n.ID == from.String() {
			hasFrom = true
		}
		if n.ID == to.String() {
			hasTo = true
		}
	}
	if !hasFrom || !hasTo {
		return m.abortLocked(AbortUnknownNode), nil
	}

	edgeID := aggregates.EdgeID(from, to)
	for _, e := range snapshot.Edges {
		if e.ID == edgeID {
			m.logger.Info("Duplicate edge rejected",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			return m.abortLocked(AbortDuplicateEdge), nil
		}
	}

	m.current.state = StateAwaitingWeight
	return &Outcome{SessionID: m.current.id, State: StateAwaitingWeight}, nil
}

// ProvideWeight resolves the weight prompt. Input that does not parse as
// a finite number >= 0 aborts; a valid weight commits the edge.
func (m *Manager) ProvideWeight(ctx context.Context, raw string) (*Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.state != StateAwaitingWeight {
		return nil, appErrors.NewValidationError("no connect session awaiting a weight")
	}

	weight, err := valueobjects.ParseWeight(raw)
	if err != nil {
		return m.abortLocked(AbortInvalidWeight), nil
	}

	sess := m.current
	var edge *aggregates.Edge
	if err := m.repo.Update(ctx, func(g *aggregates.Graph) error {
		edge, err = g.AddEdge(sess.from, sess.to, weight)
		return err
	}); err != nil {
		// The store re-checks its own invariants on commit; a rejection
		// here still ends the gesture without mutation.
		if appErrors.IsDuplicateEdge(err) {
			return m.abortLocked(AbortDuplicateEdge), nil
		}
		m.abortLocked(AbortCancelled)
		return nil, err
	}

	m.current = nil
	m.logger.Info("Edge committed",
		zap.String("sessionID", sess.id),
		zap.String("edgeID", edge.ID),
		zap.Float64("weight", weight.Value()),
	)
	return &Outcome{SessionID: sess.id, State: StateCommitted, EdgeID: edge.ID}, nil
}

// Cancel aborts the in-flight gesture, as on a dismissed weight prompt
func (m *Manager) Cancel() (*Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, appErrors.NewValidationError("no connect session in progress")
	}
	return m.abortLocked(AbortCancelled), nil
}

// abortLocked ends the gesture without mutation and returns the machine
// to Idle. Caller must hold the lock.
func (m *Manager) abortLocked(reason AbortReason) *Outcome {
	sess := m.current
	m.current = nil
	m.logger.Debug("Connect session aborted",
		zap.String("sessionID", sess.id),
		zap.String("reason", string(reason)),
	)
	return &Outcome{SessionID: sess.id, State: StateAborted, Reason: reason}
}
