package remap

import "errors"

// ErrInvalidAxisLabel indicates a label outside the six recognized
// signed-axis values. Callers skip the affected axis and continue; the
// error is never fatal to a whole transfer.
var ErrInvalidAxisLabel = errors.New("invalid axis mapping label")

// AxisLabel names a signed target axis: the source axis's positive
// direction corresponds to this axis index with this sign.
type AxisLabel string

const (
	AxisXPos AxisLabel = "X+"
	AxisXNeg AxisLabel = "X-"
	AxisYPos AxisLabel = "Y+"
	AxisYNeg AxisLabel = "Y-"
	AxisZPos AxisLabel = "Z+"
	AxisZNeg AxisLabel = "Z-"
)

// axisTable is the fixed label -> (index, sign) mapping.
var axisTable = map[AxisLabel]struct {
	index int
	sign  float64
}{
	AxisXPos: {0, 1}, AxisXNeg: {0, -1},
	AxisYPos: {1, 1}, AxisYNeg: {1, -1},
	AxisZPos: {2, 1}, AxisZNeg: {2, -1},
}

// Resolve returns the target axis index (0, 1, or 2) and sign multiplier
// (+1 or -1) for the label, or ErrInvalidAxisLabel for anything else.
func (l AxisLabel) Resolve() (index int, sign float64, err error) {
	entry, ok := axisTable[l]
	if !ok {
		return 0, 0, ErrInvalidAxisLabel
	}

	return entry.index, entry.sign, nil
}

// Valid returns true if l is one of the six recognized labels.
func (l AxisLabel) Valid() bool {
	_, ok := axisTable[l]
	return ok
}
