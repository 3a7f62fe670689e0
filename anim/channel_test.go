package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frames(c *Channel) []float64 {
	out := make([]float64, 0, c.Len())
	for _, kp := range c.Keyframes {
		out = append(out, kp.Frame)
	}

	return out
}

func TestInsertKeepsTimeOrder(t *testing.T) {
	c := &Channel{Bone: "Arm", Property: PropLocation, Index: 0}

	c.Insert(10, 1)
	c.Insert(1, 2)
	c.Insert(5, 3)
	c.Insert(20, 4)

	assert.Equal(t, []float64{1, 5, 10, 20}, frames(c))
}

func TestInsertDefaults(t *testing.T) {
	c := &Channel{Bone: "Arm", Property: PropLocation, Index: 0}

	kp := c.Insert(4, 2.5)
	require.NotNil(t, kp)

	assert.Equal(t, 4.0, kp.Frame)
	assert.Equal(t, 2.5, kp.Value)
	assert.Equal(t, Vec2{X: 3, Y: 2.5}, kp.HandleLeft)
	assert.Equal(t, Vec2{X: 5, Y: 2.5}, kp.HandleRight)
	assert.Equal(t, InterpBezier, kp.Interpolation)
	assert.Equal(t, EasingAuto, kp.Easing)
	assert.Equal(t, HandleFree, kp.HandleLeftType)
	assert.Equal(t, HandleFree, kp.HandleRightType)
}

func TestInsertAtExistingFrameOverwritesValueOnly(t *testing.T) {
	c := &Channel{Bone: "Arm", Property: PropLocation, Index: 0}

	kp := c.Insert(5, 1)
	kp.HandleLeft = Vec2{X: 3.5, Y: 9}
	kp.Interpolation = InterpLinear
	kp.HandleRightType = HandleVector

	again := c.Insert(5, -2)
	require.Equal(t, 1, c.Len())

	assert.Equal(t, -2.0, again.Value)
	// Metadata of the merged point is untouched
	assert.Equal(t, Vec2{X: 3.5, Y: 9}, again.HandleLeft)
	assert.Equal(t, InterpLinear, again.Interpolation)
	assert.Equal(t, HandleVector, again.HandleRightType)
}

func TestClearKeepsChannelRegistered(t *testing.T) {
	a := &Action{Name: "Walk"}
	c := a.GetOrCreate("Arm", PropLocation, 1)
	c.Insert(1, 1)
	c.Insert(2, 2)

	c.Clear()

	assert.True(t, c.Empty())
	assert.Same(t, c, a.Find("Arm", PropLocation, 1))
}

func TestSnapshotIsIndependent(t *testing.T) {
	c := &Channel{Bone: "Arm", Property: PropLocation, Index: 0}
	c.Insert(1, 1)
	c.Insert(2, 2)

	snap := c.Snapshot()
	c.Clear()

	require.Len(t, snap, 2)
	assert.Equal(t, 1.0, snap[0].Value)
	assert.Equal(t, 2.0, snap[1].Value)
}

func TestAt(t *testing.T) {
	c := &Channel{Bone: "Arm", Property: PropLocation, Index: 0}
	c.Insert(1, 1)
	c.Insert(10, 5)

	require.NotNil(t, c.At(10))
	assert.Equal(t, 5.0, c.At(10).Value)
	assert.Nil(t, c.At(4))
}

func TestActionFindAndGetOrCreate(t *testing.T) {
	a := &Action{Name: "Walk"}

	assert.Nil(t, a.Find("Arm", PropLocation, 0))

	c := a.GetOrCreate("Arm", PropLocation, 0)
	require.NotNil(t, c)
	assert.True(t, c.Empty())

	// Same triple resolves to the same channel
	assert.Same(t, c, a.GetOrCreate("Arm", PropLocation, 0))
	assert.Same(t, c, a.Find("Arm", PropLocation, 0))

	// Different axis is a different channel
	other := a.GetOrCreate("Arm", PropLocation, 1)
	assert.NotSame(t, c, other)
	assert.Len(t, a.Channels, 2)
}

func TestActiveAction(t *testing.T) {
	obj := NewObject("Rig")

	_, err := obj.ActiveAction()
	assert.ErrorIs(t, err, ErrNoAnimationData)

	obj.EnsureAction("Walk")

	a, err := obj.ActiveAction()
	require.NoError(t, err)
	assert.Equal(t, "Walk", a.Name)

	// EnsureAction does not replace an existing action
	assert.Same(t, a, obj.EnsureAction("Run"))
	assert.Equal(t, "Walk", obj.Action.Name)
}

func TestPose(t *testing.T) {
	p := &Pose{}

	arm := p.Add("Arm")
	assert.Same(t, arm, p.Add("Arm"))
	assert.Same(t, arm, p.Get("Arm"))
	assert.Nil(t, p.Get("Leg"))
}

func TestPropertyComponents(t *testing.T) {
	assert.Equal(t, 3, PropLocation.Components())
	assert.Equal(t, 3, PropRotationEuler.Components())
	assert.Equal(t, 4, PropRotationQuaternion.Components())
	assert.Equal(t, 3, PropScale.Components())

	assert.True(t, PropScale.Valid())
	assert.False(t, Property("color").Valid())
}
