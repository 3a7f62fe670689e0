package anim

// Vec2 is a 2D point. Keyframe tangent handles are control points in
// (frame, value) space.
type Vec2 struct {
	X, Y float64
}

// KeyframePoint is one sample of an animation channel: a (frame, value)
// coordinate plus the tangent handles and interpolation metadata that
// shape the curve around it.
type KeyframePoint struct {
	// Frame is the time coordinate. Frame and Value jointly form the
	// point's co-ordinate; the handles are independent control points.
	Frame float64
	Value float64

	HandleLeft  Vec2
	HandleRight Vec2

	Interpolation   Interpolation
	Easing          Easing
	HandleLeftType  HandleType
	HandleRightType HandleType
}

// newKeyframePoint returns a point at (frame, value) with default
// metadata: bezier interpolation, automatic easing, free handles one
// frame to either side at the point's value.
func newKeyframePoint(frame, value float64) KeyframePoint {
	return KeyframePoint{
		Frame:       frame,
		Value:       value,
		HandleLeft:  Vec2{X: frame - 1, Y: value},
		HandleRight: Vec2{X: frame + 1, Y: value},
	}
}
