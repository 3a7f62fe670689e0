package clipfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyframe-remap/anim"
)

func TestParse(t *testing.T) {
	yaml := `
object: Rig
bones: [Arm, Arm_ik]
action:
  name: Walk
  channels:
    - bone: Arm
      property: location
      index: 0
      keys:
        - frame: 10
          value: -3.0
        - frame: 1
          value: 2.0
          handle_left: [0.5, 2.5]
          handle_right: [1.5, 1.5]
          interpolation: Linear
          easing: InOut
          handle_left_type: Auto
          handle_right_type: Vector
`

	obj, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "Rig", obj.Name)
	require.NotNil(t, obj.Pose.Get("Arm"))
	require.NotNil(t, obj.Pose.Get("Arm_ik"))

	require.NotNil(t, obj.Action)
	assert.Equal(t, "Walk", obj.Action.Name)

	c := obj.Action.Find("Arm", anim.PropLocation, 0)
	require.NotNil(t, c)
	require.Equal(t, 2, c.Len())

	// Keys re-sorted by frame on load
	kp := c.Keyframes[0]
	assert.Equal(t, 1.0, kp.Frame)
	assert.Equal(t, 2.0, kp.Value)
	assert.Equal(t, anim.Vec2{X: 0.5, Y: 2.5}, kp.HandleLeft)
	assert.Equal(t, anim.Vec2{X: 1.5, Y: 1.5}, kp.HandleRight)
	assert.Equal(t, anim.InterpLinear, kp.Interpolation)
	assert.Equal(t, anim.EasingInOut, kp.Easing)
	assert.Equal(t, anim.HandleAuto, kp.HandleLeftType)
	assert.Equal(t, anim.HandleVector, kp.HandleRightType)

	// Omitted metadata takes insertion defaults
	assert.Equal(t, 10.0, c.Keyframes[1].Frame)
	assert.Equal(t, anim.InterpBezier, c.Keyframes[1].Interpolation)
	assert.Equal(t, anim.Vec2{X: 9, Y: -3}, c.Keyframes[1].HandleLeft)
}

func TestParseNoAction(t *testing.T) {
	obj, err := Parse([]byte("object: Rig\nbones: [Arm]\n"))
	require.NoError(t, err)
	assert.Nil(t, obj.Action)
}

func TestParseRejectsBadProperty(t *testing.T) {
	yaml := `
object: Rig
action:
  name: Walk
  channels:
    - bone: Arm
      property: color
      index: 0
`

	_, err := Parse([]byte(yaml))
	assert.ErrorIs(t, err, anim.ErrUnsupportedProperty)
}

func TestParseRejectsBadIndex(t *testing.T) {
	yaml := `
object: Rig
action:
  name: Walk
  channels:
    - bone: Arm
      property: location
      index: 3
`

	_, err := Parse([]byte(yaml))
	assert.ErrorIs(t, err, anim.ErrAxisOutOfRange)
}

func TestParseRejectsDuplicateChannel(t *testing.T) {
	yaml := `
object: Rig
action:
  name: Walk
  channels:
    - bone: Arm
      property: location
      index: 0
    - bone: Arm
      property: location
      index: 0
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate channel")
}

func TestParseRejectsBadHandle(t *testing.T) {
	yaml := `
object: Rig
action:
  name: Walk
  channels:
    - bone: Arm
      property: location
      index: 0
      keys:
        - frame: 1
          value: 2
          handle_left: [1, 2, 3]
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handle_left")
}

func TestMarshalRoundTrip(t *testing.T) {
	obj := anim.NewObject("Rig")
	obj.Pose.Add("Arm")
	obj.Pose.Add("Leg")

	action := obj.EnsureAction("Walk")
	c := action.GetOrCreate("Arm", anim.PropRotationQuaternion, 3)
	kp := c.Insert(5, 0.5)
	kp.Interpolation = anim.InterpConstant
	kp.HandleLeftType = anim.HandleAligned
	c.Insert(9, -1)

	data, err := Marshal(obj)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, obj.Name, back.Name)
	require.NotNil(t, back.Action)

	bc := back.Action.Find("Arm", anim.PropRotationQuaternion, 3)
	require.NotNil(t, bc)
	assert.Equal(t, c.Keyframes, bc.Keyframes)
}
