package ops

import (
	"fmt"

	"keyframe-remap/anim"
	"keyframe-remap/diag"
	"keyframe-remap/remap"
	"keyframe-remap/utils"
)

// AxisOutcome classifies what happened to one source axis during a
// transfer.
type AxisOutcome int

const (
	// AxisCopied means keyframes were remapped onto the target channel.
	AxisCopied AxisOutcome = iota
	// AxisNoSourceData means the source channel was absent or empty.
	AxisNoSourceData
	// AxisInvalidLabel means the profile's label for this axis did not
	// resolve.
	AxisInvalidLabel
)

// String returns a human-readable outcome name.
func (o AxisOutcome) String() string {
	switch o {
	case AxisCopied:
		return "copied"
	case AxisNoSourceData:
		return "no source data"
	case AxisInvalidLabel:
		return "invalid axis label"
	default:
		return "unknown"
	}
}

// AxisResult records the per-axis outcome of a transfer.
type AxisResult struct {
	// SourceIndex is the source axis the result describes.
	SourceIndex int
	// Label is the profile label applied to the axis.
	Label remap.AxisLabel
	// TargetIndex is the resolved target axis, or -1 when the label did
	// not resolve.
	TargetIndex int
	// Outcome classifies the result.
	Outcome AxisOutcome
	// Copied is the number of keyframes inserted on the target channel.
	Copied int
}

// TransferReport enumerates per-axis outcomes of one transfer call. It
// is observational: callers display it, they do not branch on it.
type TransferReport struct {
	SourceBone  string
	TargetBone  string
	Property    anim.Property
	Axes        []AxisResult
	Diagnostics diag.Diagnostics
}

// Copied returns the total number of keyframes copied across all axes.
func (r *TransferReport) Copied() int {
	total := 0
	for _, a := range r.Axes {
		total += a.Copied
	}

	return total
}

// Transfer copies the source bone's keyframes for every axis of the
// property onto the target bone, remapped through the profile. Only
// location is supported. Absent source axes and unresolvable labels are
// skipped with warnings; they never fail the call. Target channels are
// created lazily and, under the profile's replace-all policy, emptied
// before insertion. The source is never mutated.
func Transfer(obj *anim.Object, sourceBone, targetBone string, property anim.Property, profile remap.MappingProfile) (*TransferReport, error) {
	action, report, err := beginTransfer(obj, sourceBone, targetBone, property)
	if err != nil {
		return nil, err
	}

	labels := profile.Labels()
	for i := range labels {
		res := transferAxis(action, sourceBone, targetBone, property, labels[i], i, profile.ReplaceAll, &report.Diagnostics)
		report.Axes = append(report.Axes, res)
	}

	return report, nil
}

// TransferAxis copies a single source axis, remapped through the
// profile's label for that axis. It is the primitive Transfer loops
// over; hosts use it for the per-axis copy buttons.
func TransferAxis(obj *anim.Object, sourceBone, targetBone string, property anim.Property, profile remap.MappingProfile, axis int) (*TransferReport, error) {
	if !utils.IsInRange(0, axis, property.Components()-1) {
		return nil, fmt.Errorf("%w: %d", anim.ErrAxisOutOfRange, axis)
	}

	action, report, err := beginTransfer(obj, sourceBone, targetBone, property)
	if err != nil {
		return nil, err
	}

	res := transferAxis(action, sourceBone, targetBone, property, profile.Labels()[axis], axis, profile.ReplaceAll, &report.Diagnostics)
	report.Axes = append(report.Axes, res)

	return report, nil
}

// beginTransfer checks the transfer preconditions and allocates the
// report.
func beginTransfer(obj *anim.Object, sourceBone, targetBone string, property anim.Property) (*anim.Action, *TransferReport, error) {
	// Axis remapping is location-only: rotation and scale channels have
	// no meaningful signed-axis permutation here.
	if property != anim.PropLocation {
		return nil, nil, fmt.Errorf("%w: %s (only %s can be remapped)", anim.ErrUnsupportedProperty, property, anim.PropLocation)
	}

	action, err := obj.ActiveAction()
	if err != nil {
		return nil, nil, err
	}

	report := &TransferReport{
		SourceBone: sourceBone,
		TargetBone: targetBone,
		Property:   property,
	}

	return action, report, nil
}

// transferAxis performs the remapped copy of one source axis.
func transferAxis(action *anim.Action, sourceBone, targetBone string, property anim.Property, label remap.AxisLabel, index int, replaceAll bool, d *diag.Diagnostics) AxisResult {
	res := AxisResult{SourceIndex: index, Label: label, TargetIndex: -1}

	src := action.Find(sourceBone, property, index)
	if src == nil {
		res.Outcome = AxisNoSourceData
		d.AddWarning("no_source_data",
			fmt.Sprintf("no keyframe data found for axis index %d, skipping", index),
			sourceBone, "")

		return res
	}

	targetIndex, sign, err := label.Resolve()
	if err != nil {
		res.Outcome = AxisInvalidLabel
		d.AddWarning("invalid_axis_label",
			fmt.Sprintf("invalid axis mapping: %q", label),
			sourceBone, src.Path())

		return res
	}

	res.TargetIndex = targetIndex
	Logger().Info("mapping axis",
		"source_bone", sourceBone,
		"source_axis", index,
		"label", string(label),
		"target_axis", targetIndex,
		"sign", sign)

	// Snapshot before any target mutation so a replace-all clear cannot
	// destroy unread source points when the channels coincide.
	points := src.Snapshot()

	dst := action.GetOrCreate(targetBone, property, targetIndex)
	if replaceAll {
		dst.Clear()
	}

	if len(points) == 0 {
		res.Outcome = AxisNoSourceData
		d.AddWarning("no_source_data",
			fmt.Sprintf("no keyframe data found for axis index %d, skipping", index),
			sourceBone, src.Path())

		return res
	}

	for _, kp := range points {
		scaled := kp.Value * sign
		dst.Insert(kp.Frame, scaled)
		Logger().Debug("copied keyframe",
			"frame", kp.Frame,
			"source_value", kp.Value,
			"target_value", scaled,
			"target_axis", targetIndex)
		res.Copied++
	}

	res.Outcome = AxisCopied
	d.AddInfo("axis_copied",
		fmt.Sprintf("copied %d keyframes from axis %d to axis %d", res.Copied, index, targetIndex),
		sourceBone, dst.Path())

	return res
}
