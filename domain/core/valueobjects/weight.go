package valueobjects

import (
	"math"
	"strconv"
	"strings"

	appErrors "graphboard/pkg/errors"
)

// defaultWeightLabel is the literal label stored when no usable weight is
// supplied on the import path.
const defaultWeightLabel = "1"

// Weight is a value object for an edge's weight. It carries both the
// numeric value and the display label it was entered as, so the label can
// never drift from the value it renders.
type Weight struct {
	value float64
	label string
}

// NewWeight creates a Weight from a numeric value. The value must be a
// finite number >= 0.
func NewWeight(value float64) (Weight, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Weight{}, appErrors.NewInvalidWeightError(strconv.FormatFloat(value, 'f', -1, 64))
	}
	return Weight{
		value: value,
		label: strconv.FormatFloat(value, 'f', -1, 64),
	}, nil
}

// ParseWeight creates a Weight from raw user input. Input that does not
// parse as a finite number >= 0 is rejected; this is the interactive path,
// where a bad weight aborts the operation.
func ParseWeight(raw string) (Weight, error) {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Weight{}, appErrors.NewInvalidWeightError(raw)
	}
	return Weight{value: value, label: trimmed}, nil
}

// ParseWeightOrDefault creates a Weight from tabular input, silently
// falling back to the default weight of 1 with the literal label "1" when
// the input is absent or unparseable. This asymmetry with ParseWeight is
// deliberate: bulk import tolerates what the interactive prompt rejects.
func ParseWeightOrDefault(raw string) Weight {
	if w, err := ParseWeight(raw); err == nil {
		return w
	}
	return DefaultWeight()
}

// DefaultWeight returns the weight used when none is supplied
func DefaultWeight() Weight {
	return Weight{value: 1, label: defaultWeightLabel}
}

// Value returns the numeric weight
func (w Weight) Value() float64 {
	return w.value
}

// Label returns the display label the weight was entered as
func (w Weight) Label() string {
	return w.label
}

// Equals checks if two weights have the same numeric value
func (w Weight) Equals(other Weight) bool {
	return w.value == other.value
}
