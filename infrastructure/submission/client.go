// Package submission talks to the remote graph-processing service. It is
// a read-only consumer of the graph: it snapshots, serializes and posts,
// and never mutates the store.
package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"graphboard/domain/core/aggregates"
	"graphboard/infrastructure/config"
	appErrors "graphboard/pkg/errors"
)

// Payload is the transport schema the processing service accepts
type Payload struct {
	Nodes []PayloadNode `json:"nodes"`
	Edges []PayloadEdge `json:"edges"`
}

// PayloadNode carries only the label; the label is the node's sole
// identity on the wire.
type PayloadNode struct {
	Label string `json:"label"`
}

// PayloadEdge carries endpoints and the numeric weight
type PayloadEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Client submits graphs over HTTP. Exactly one request is attempted per
// Submit call; retry policy belongs to the caller, and there is none.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a submission client from configuration
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.SubmissionEndpoint, "/"),
		httpClient: &http.Client{
			Timeout: cfg.SubmissionTimeout,
		},
		logger: logger,
	}
}

// BuildPayload maps a snapshot to the transport schema. The numeric
// weight is re-parsed from the stored label, falling back to 1.0 when the
// label does not parse, mirroring the store's own default policy.
func BuildPayload(snapshot aggregates.GraphSnapshot) Payload {
	payload := Payload{
		Nodes: make([]PayloadNode, 0, len(snapshot.Nodes)),
		Edges: make([]PayloadEdge, 0, len(snapshot.Edges)),
	}
	for _, n := range snapshot.Nodes {
		payload.Nodes = append(payload.Nodes, PayloadNode{Label: n.Label})
	}
	for _, e := range snapshot.Edges {
		weight, err := strconv.ParseFloat(strings.TrimSpace(e.Label), 64)
		if err != nil {
			weight = 1.0
		}
		payload.Edges = append(payload.Edges, PayloadEdge{
			From:   e.From,
			To:     e.To,
			Weight: weight,
		})
	}
	return payload
}

// Submit posts the snapshot to the processing service and returns the
// opaque graph identifier it assigned.
func (c *Client) Submit(ctx context.Context, snapshot aggregates.GraphSnapshot) (string, error) {
	payload := BuildPayload(snapshot)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", appErrors.NewInternalError("failed to encode graph payload").WithCause(err)
	}

	url := c.endpoint + "/api/graph"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", appErrors.NewInternalError("failed to build submission request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	c.logger.Debug("Submitting graph",
		zap.String("url", url),
		zap.Int("nodes", len(payload.Nodes)),
		zap.Int("edges", len(payload.Edges)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", appErrors.NewSubmissionError(
			fmt.Sprintf("graph-processing service at %s is unreachable", c.endpoint), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", appErrors.NewSubmissionError(
			fmt.Sprintf("graph-processing service returned status %d", resp.StatusCode), nil).
			WithDetails(map[string]interface{}{
				"status": resp.StatusCode,
				"body":   string(detail),
			})
	}

	graphID, err := decodeGraphID(resp.Body)
	if err != nil {
		return "", appErrors.NewSubmissionError("graph-processing service returned a malformed response", err)
	}

	return graphID, nil
}

// decodeGraphID extracts graph_id, tolerating both string and numeric
// tokens since the identifier is opaque.
func decodeGraphID(r io.Reader) (string, error) {
	var response struct {
		GraphID json.RawMessage `json:"graph_id"`
	}
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&response); err != nil {
		return "", err
	}
	if len(response.GraphID) == 0 {
		return "", fmt.Errorf("response missing graph_id")
	}

	var asString string
	if err := json.Unmarshal(response.GraphID, &asString); err == nil {
		return asString, nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(response.GraphID, &asNumber); err == nil {
		return asNumber.String(), nil
	}
	return "", fmt.Errorf("graph_id is neither string nor number")
}
