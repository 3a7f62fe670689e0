package anim

import "errors"

// Lookup errors
var (
	// ErrNoAnimationData indicates the object has no active action.
	ErrNoAnimationData = errors.New("no animation data found")

	// ErrChannelNotFound indicates no channel exists for the requested
	// (bone, property, axis) triple.
	ErrChannelNotFound = errors.New("channel not found")
)

// Validation errors
var (
	// ErrUnsupportedProperty indicates a property name outside the
	// supported transform set for the requested operation.
	ErrUnsupportedProperty = errors.New("unsupported property")

	// ErrAxisOutOfRange indicates an axis index outside the property's
	// component count.
	ErrAxisOutOfRange = errors.New("axis index out of range")
)
