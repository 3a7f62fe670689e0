package anim

import (
	"fmt"
	"slices"
	"sort"
)

// Channel is the time-ordered keyframe sequence for one
// (bone, property, axis) triple. Keyframes are kept sorted by
// increasing frame; Insert maintains the ordering.
type Channel struct {
	Bone     string
	Property Property
	Index    int

	Keyframes []KeyframePoint
}

// Path returns the host-style data path of the channel, used in
// diagnostics and log output.
func (c *Channel) Path() string {
	return fmt.Sprintf("pose.bones[%q].%s[%d]", c.Bone, c.Property, c.Index)
}

// Len returns the number of keyframes on the channel.
func (c *Channel) Len() int {
	return len(c.Keyframes)
}

// Empty returns true if the channel has no keyframes.
func (c *Channel) Empty() bool {
	return len(c.Keyframes) == 0
}

// Clear removes every keyframe from the channel. The channel itself
// stays registered on its action.
func (c *Channel) Clear() {
	c.Keyframes = c.Keyframes[:0]
}

// Insert stores a value at the given frame and returns the stored point.
//
// If a point already exists at exactly that frame, only its value is
// overwritten; handles, interpolation, easing, and handle types are left
// untouched. Otherwise a new point with default metadata is inserted at
// its time-ordered position.
//
// The returned pointer is valid until the next mutation of the channel.
func (c *Channel) Insert(frame, value float64) *KeyframePoint {
	pos := sort.Search(len(c.Keyframes), func(i int) bool {
		return c.Keyframes[i].Frame >= frame
	})

	if pos < len(c.Keyframes) && c.Keyframes[pos].Frame == frame {
		c.Keyframes[pos].Value = value
		return &c.Keyframes[pos]
	}

	c.Keyframes = slices.Insert(c.Keyframes, pos, newKeyframePoint(frame, value))

	return &c.Keyframes[pos]
}

// At returns the point at exactly the given frame, or nil.
func (c *Channel) At(frame float64) *KeyframePoint {
	pos := sort.Search(len(c.Keyframes), func(i int) bool {
		return c.Keyframes[i].Frame >= frame
	})

	if pos < len(c.Keyframes) && c.Keyframes[pos].Frame == frame {
		return &c.Keyframes[pos]
	}

	return nil
}

// Snapshot returns a copy of the channel's full keyframe state. Mutating
// the channel afterwards does not affect the returned slice.
func (c *Channel) Snapshot() []KeyframePoint {
	return slices.Clone(c.Keyframes)
}
