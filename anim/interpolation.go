package anim

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Interpolation -trimprefix=Interp -output=interpolation_string.go
//go:generate go tool stringer -type=Easing -trimprefix=Easing -output=easing_string.go
//go:generate go tool stringer -type=HandleType -trimprefix=Handle -output=handletype_string.go

// Interpolation selects how the curve moves between a point and its
// successor. The zero value is bezier, the default for new points.
type Interpolation int

const (
	InterpBezier Interpolation = iota
	InterpConstant
	InterpLinear

	// InterpTotal is the number of interpolation modes defined.
	InterpTotal = int(iota)
)

// Easing selects which end of a segment the easing applies to.
type Easing int

const (
	EasingAuto Easing = iota
	EasingIn
	EasingOut
	EasingInOut

	// EasingTotal is the number of easing modes defined.
	EasingTotal = int(iota)
)

// HandleType describes how a tangent handle is constrained.
type HandleType int

const (
	HandleFree HandleType = iota
	HandleAligned
	HandleVector
	HandleAuto
	HandleAutoClamped

	// HandleTotal is the number of handle types defined.
	HandleTotal = int(iota)
)

// ParseInterpolation parses a case-insensitive interpolation name as
// produced by String.
func ParseInterpolation(s string) (Interpolation, error) {
	for i := 0; i < InterpTotal; i++ {
		v := Interpolation(i)
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown interpolation mode %q", s)
}

// ParseEasing parses a case-insensitive easing name as produced by String.
func ParseEasing(s string) (Easing, error) {
	for i := 0; i < EasingTotal; i++ {
		v := Easing(i)
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown easing mode %q", s)
}

// ParseHandleType parses a case-insensitive handle type name as produced
// by String.
func ParseHandleType(s string) (HandleType, error) {
	for i := 0; i < HandleTotal; i++ {
		v := HandleType(i)
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("unknown handle type %q", s)
}
