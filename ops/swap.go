package ops

import (
	"fmt"

	"keyframe-remap/anim"
	"keyframe-remap/diag"
)

// SwapResult describes one completed swap.
type SwapResult struct {
	BoneA, BoneB string
	// Swapped is the number of (property, axis) channel pairs exchanged.
	Swapped int
	// Skipped is the number of combinations where exactly one bone had a
	// channel; those are left untouched on both bones.
	Skipped     int
	Diagnostics diag.Diagnostics
}

// Swap exchanges the full keyframe state of two bones for every
// transform property and axis: values, tangent handles, interpolation,
// easing, and handle types. A (property, axis) combination is swapped
// only when both bones have the channel; otherwise neither side is
// touched.
//
// Both channels' states are captured before either is cleared, so no
// data is lost even when the channel identities overlap. Applying Swap
// twice restores the original state exactly.
func Swap(obj *anim.Object, boneA, boneB string) (*SwapResult, error) {
	action, err := obj.ActiveAction()
	if err != nil {
		return nil, err
	}

	res := &SwapResult{BoneA: boneA, BoneB: boneB}

	for _, prop := range anim.TransformProperties() {
		for axis := 0; axis < prop.Components(); axis++ {
			ca := action.Find(boneA, prop, axis)
			cb := action.Find(boneB, prop, axis)

			if ca == nil && cb == nil {
				continue
			}

			if ca == nil || cb == nil {
				res.Skipped++
				res.Diagnostics.AddWarning("swap_skipped",
					fmt.Sprintf("%s axis %d exists on only one bone, skipping", prop, axis),
					boneA, "")

				continue
			}

			// Read both sides fully before clearing either.
			snapA := ca.Snapshot()
			snapB := cb.Snapshot()

			ca.Clear()
			cb.Clear()

			restore(cb, snapA)
			restore(ca, snapB)

			res.Swapped++
			Logger().Debug("swapped channels", "a", ca.Path(), "b", cb.Path(), "points_a", len(snapA), "points_b", len(snapB))
		}
	}

	res.Diagnostics.AddInfo("swap_done",
		fmt.Sprintf("swapped %d channel pairs between %q and %q", res.Swapped, boneA, boneB),
		"", "")

	return res, nil
}

// restore re-inserts a snapshot onto a cleared channel, overwriting the
// default metadata of each new point with the captured state.
func restore(c *anim.Channel, points []anim.KeyframePoint) {
	for _, kp := range points {
		np := c.Insert(kp.Frame, kp.Value)
		np.HandleLeft = kp.HandleLeft
		np.HandleRight = kp.HandleRight
		np.Interpolation = kp.Interpolation
		np.Easing = kp.Easing
		np.HandleLeftType = kp.HandleLeftType
		np.HandleRightType = kp.HandleRightType
	}
}
