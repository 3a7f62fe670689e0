package ops

import (
	"errors"
	"fmt"

	"keyframe-remap/anim"
	"keyframe-remap/diag"
	"keyframe-remap/internal/common"
	"keyframe-remap/remap"
	"keyframe-remap/utils"
)

// Outcome is the tri-state result of a Session entry point. Details
// beyond finished/cancelled live in the returned diagnostics.
type Outcome int

const (
	// Finished means the operation ran; warnings may still be attached.
	Finished Outcome = iota
	// Cancelled means a precondition failed and nothing was mutated.
	Cancelled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session carries the host's selection context: the operated-on object,
// the selected pose bone names, the active bone among them, and the
// mapping configuration. One Session is valid for as long as the host
// guarantees the selection is stable.
type Session struct {
	Object   *anim.Object
	Selected []string
	Active   string
	Config   remap.Config
}

// sourceTarget validates the two-bone selection and splits it into
// source and target. The active bone is the target; the other selected
// bone is the source.
func (s *Session) sourceTarget(d *diag.Diagnostics) (source, target string, ok bool) {
	if s.Object == nil {
		d.AddError("no_object", "active object is not an armature", "", "")
		return "", "", false
	}

	if len(s.Selected) != 2 {
		d.AddError("bad_selection", "select exactly two bones", "", "")
		return "", "", false
	}

	first, second := utils.Unpack2(s.Selected)
	if s.Active != first && s.Active != second {
		d.AddError("bad_selection", "active bone must be one of the selected bones", "", "")
		return "", "", false
	}

	source, target = first, second
	if source == s.Active {
		source, target = second, first
	}

	return source, target, true
}

// errCode maps an engine error to a stable diagnostic code.
func errCode(err error) string {
	switch {
	case errors.Is(err, anim.ErrNoAnimationData):
		return "no_animation_data"
	case errors.Is(err, anim.ErrUnsupportedProperty):
		return "unsupported_property"
	case errors.Is(err, anim.ErrAxisOutOfRange):
		return "axis_out_of_range"
	case errors.Is(err, anim.ErrChannelNotFound):
		return "channel_not_found"
	case errors.Is(err, ErrNoValidPairs):
		return "no_valid_pairs"
	default:
		return "operation_failed"
	}
}

// CopyOneAxis copies a single source location axis (0..2) from the
// non-active selected bone onto the active one, remapped through the
// chosen profile.
func (s *Session) CopyOneAxis(axis int, useSecondary bool) (Outcome, diag.Diagnostics) {
	var d diag.Diagnostics

	source, target, ok := s.sourceTarget(&d)
	if !ok {
		return Cancelled, d
	}

	report, err := TransferAxis(s.Object, source, target, anim.PropLocation, s.Config.Profile(useSecondary), axis)
	if err != nil {
		d.AddError(errCode(err), err.Error(), source, "")
		return Cancelled, d
	}

	d.Merge(report.Diagnostics)
	d.AddInfo("copy_done", fmt.Sprintf("keyframes for axis %d copied", axis), target, "")

	return Finished, d
}

// CopyAllAxes copies all three location axes from the non-active
// selected bone onto the active one, remapped through the chosen
// profile.
func (s *Session) CopyAllAxes(useSecondary bool) (Outcome, diag.Diagnostics) {
	var d diag.Diagnostics

	source, target, ok := s.sourceTarget(&d)
	if !ok {
		return Cancelled, d
	}

	report, err := Transfer(s.Object, source, target, anim.PropLocation, s.Config.Profile(useSecondary))
	if err != nil {
		d.AddError(errCode(err), err.Error(), source, "")
		return Cancelled, d
	}

	d.Merge(report.Diagnostics)
	d.AddInfo("copy_done", "keyframes for all axes copied successfully", target, "")

	return Finished, d
}

// FlipAxis negates the active bone's channel for (property, axis). A
// missing channel is a warning-level cancellation, matching the single
// call's failure without poisoning a batch caller.
func (s *Session) FlipAxis(property anim.Property, axis int) (Outcome, diag.Diagnostics) {
	var d diag.Diagnostics

	if s.Object == nil {
		d.AddError("no_object", "active object is not an armature", "", "")
		return Cancelled, d
	}

	if s.Active == "" {
		d.AddError("no_active_bone", "no active pose bone", "", "")
		return Cancelled, d
	}

	res, err := Flip(s.Object, s.Active, property, axis)
	if err != nil {
		if errors.Is(err, anim.ErrChannelNotFound) {
			d.AddWarning(errCode(err),
				fmt.Sprintf("no keyframes found for %s axis %d", property, axis),
				s.Active, "")

			return Cancelled, d
		}

		d.AddError(errCode(err), err.Error(), s.Active, "")

		return Cancelled, d
	}

	d.AddInfo("flip_done",
		fmt.Sprintf("flipped %s axis %d keyframes for %s (%d points)", property, axis, s.Active, res.Points),
		s.Active, "")

	return Finished, d
}

// SwapKeyframes exchanges the full keyframe state of the two selected
// bones across every transform property and axis.
func (s *Session) SwapKeyframes() (Outcome, diag.Diagnostics) {
	var d diag.Diagnostics

	source, target, ok := s.sourceTarget(&d)
	if !ok {
		return Cancelled, d
	}

	res, err := Swap(s.Object, source, target)
	if err != nil {
		d.AddError(errCode(err), err.Error(), source, "")
		return Cancelled, d
	}

	d.Merge(res.Diagnostics)

	return Finished, d
}

// RemapAllBones pairs the selected bones by the configured suffix and
// remaps each pair's location keyframes.
func (s *Session) RemapAllBones() (Outcome, diag.Diagnostics) {
	var d diag.Diagnostics

	if s.Object == nil {
		d.AddError("no_object", "active object is not an armature", "", "")
		return Cancelled, d
	}

	if common.IsEmpty(s.Selected) {
		d.AddError("bad_selection", "no bones selected", "", "")
		return Cancelled, d
	}

	report, err := RemapAll(s.Object, s.Selected, s.Config)
	if err != nil {
		if errors.Is(err, ErrNoValidPairs) {
			d.AddWarning(errCode(err), err.Error(), "", "")
			return Cancelled, d
		}

		d.AddError(errCode(err), err.Error(), "", "")

		return Cancelled, d
	}

	d.Merge(report.Diagnostics)
	d.AddInfo("remap_done", "remap all completed successfully", "", "")

	return Finished, d
}
