package ops

import (
	"fmt"

	"keyframe-remap/anim"
	"keyframe-remap/utils"
)

// FlipResult describes one completed flip.
type FlipResult struct {
	Bone     string
	Property anim.Property
	Axis     int
	// Points is the number of keyframes negated. Flip never adds or
	// removes points.
	Points int
}

// Flip negates, in place, the value and both tangent-handle ordinates of
// every keyframe on the (bone, property, axis) channel. Handle
// x-components (frames) are untouched. Valid for location,
// rotation_euler, and scale on any of their three axes. An absent
// channel fails with ErrChannelNotFound.
func Flip(obj *anim.Object, bone string, property anim.Property, axis int) (*FlipResult, error) {
	switch property {
	case anim.PropLocation, anim.PropRotationEuler, anim.PropScale:
	default:
		return nil, fmt.Errorf("%w: %s (cannot flip)", anim.ErrUnsupportedProperty, property)
	}

	if !utils.IsInRange(0, axis, property.Components()-1) {
		return nil, fmt.Errorf("%w: %d", anim.ErrAxisOutOfRange, axis)
	}

	action, err := obj.ActiveAction()
	if err != nil {
		return nil, err
	}

	c := action.Find(bone, property, axis)
	if c == nil {
		return nil, fmt.Errorf("%w: %s axis %d on %q", anim.ErrChannelNotFound, property, axis, bone)
	}

	for i := range c.Keyframes {
		kp := &c.Keyframes[i]
		kp.Value *= -1
		kp.HandleLeft.Y *= -1
		kp.HandleRight.Y *= -1
	}

	Logger().Info("flipped channel", "bone", bone, "channel", c.Path(), "points", c.Len())

	return &FlipResult{Bone: bone, Property: property, Axis: axis, Points: c.Len()}, nil
}
