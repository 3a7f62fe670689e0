package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyframe-remap/anim"
	"keyframe-remap/remap"
)

func TestResolvePairs(t *testing.T) {
	obj := newRig("Arm", "Arm_ik", "Leg", "Leg_ik", "Spine")

	pairs := ResolvePairs(obj, []string{"Arm", "Arm_ik", "Leg", "Leg_ik", "Spine"}, "_ik")
	assert.Equal(t, []BonePair{
		{Source: "Arm", Target: "Arm_ik"},
		{Source: "Leg", Target: "Leg_ik"},
	}, pairs)
}

func TestResolvePairsRequiresBaseInSelection(t *testing.T) {
	obj := newRig("Arm", "Arm_ik")

	// Base bone exists in the pose but is not selected
	pairs := ResolvePairs(obj, []string{"Arm_ik"}, "_ik")
	assert.Empty(t, pairs)
}

func TestResolvePairsRequiresBaseInPose(t *testing.T) {
	obj := newRig("Arm_ik")

	pairs := ResolvePairs(obj, []string{"Arm_ik", "Arm"}, "_ik")
	assert.Empty(t, pairs)
}

func TestResolvePairsEmptySuffix(t *testing.T) {
	obj := newRig("Arm")

	assert.Empty(t, ResolvePairs(obj, []string{"Arm"}, ""))
}

func TestRemapAllNoValidPairs(t *testing.T) {
	obj := newRig("Arm_ik")

	cfg := remap.DefaultConfig()
	cfg.PrimarySuffix = "_ik"

	_, err := RemapAll(obj, []string{"Arm_ik"}, cfg)
	assert.ErrorIs(t, err, ErrNoValidPairs)
}

func TestRemapAllTransfersEveryPair(t *testing.T) {
	obj := newRig("Arm", "Arm_ik", "Leg", "Leg_ik")
	seed(obj, "Arm", anim.PropLocation, 0, [2]float64{1, 2})
	seed(obj, "Leg", anim.PropLocation, 0, [2]float64{1, 5})

	cfg := remap.DefaultConfig()
	cfg.PrimarySuffix = "_ik"

	report, err := RemapAll(obj, []string{"Arm", "Arm_ik", "Leg", "Leg_ik"}, cfg)
	require.NoError(t, err)
	require.Len(t, report.Pairs, 2)
	require.Len(t, report.Transfers, 2)

	assert.Equal(t, 2.0, obj.Action.Find("Arm_ik", anim.PropLocation, 0).Keyframes[0].Value)
	assert.Equal(t, 5.0, obj.Action.Find("Leg_ik", anim.PropLocation, 0).Keyframes[0].Value)
}

func TestRemapAllSecondaryKeywordSelectsProfile(t *testing.T) {
	obj := newRig("Arm_L", "Arm_L_ik", "Arm_R", "Arm_R_ik")
	seed(obj, "Arm_L", anim.PropLocation, 0, [2]float64{1, 2})
	seed(obj, "Arm_R", anim.PropLocation, 0, [2]float64{1, 2})

	cfg := remap.DefaultConfig()
	cfg.PrimarySuffix = "_ik"
	cfg.SecondaryMapper = "_L"
	cfg.Secondary.X = remap.AxisXNeg

	_, err := RemapAll(obj, []string{"Arm_L", "Arm_L_ik", "Arm_R", "Arm_R_ik"}, cfg)
	require.NoError(t, err)

	// _L source matched the secondary keyword: sign flipped
	assert.Equal(t, -2.0, obj.Action.Find("Arm_L_ik", anim.PropLocation, 0).Keyframes[0].Value)
	// _R fell back to the primary identity profile
	assert.Equal(t, 2.0, obj.Action.Find("Arm_R_ik", anim.PropLocation, 0).Keyframes[0].Value)
}

func TestRemapAllEmptySecondaryKeywordNeverMatches(t *testing.T) {
	obj := newRig("Arm", "Arm_ik")
	seed(obj, "Arm", anim.PropLocation, 0, [2]float64{1, 2})

	cfg := remap.DefaultConfig()
	cfg.PrimarySuffix = "_ik"
	cfg.SecondaryMapper = ""
	cfg.Secondary.X = remap.AxisXNeg

	_, err := RemapAll(obj, []string{"Arm", "Arm_ik"}, cfg)
	require.NoError(t, err)

	// Primary profile used despite the secondary being configured
	assert.Equal(t, 2.0, obj.Action.Find("Arm_ik", anim.PropLocation, 0).Keyframes[0].Value)
}

func TestRemapAllNoAnimationData(t *testing.T) {
	obj := anim.NewObject("Rig")
	obj.Pose.Add("Arm")
	obj.Pose.Add("Arm_ik")

	cfg := remap.DefaultConfig()
	cfg.PrimarySuffix = "_ik"

	_, err := RemapAll(obj, []string{"Arm", "Arm_ik"}, cfg)
	assert.ErrorIs(t, err, anim.ErrNoAnimationData)
}
