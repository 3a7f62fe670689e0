// Package remap provides the axis mapping configuration for keyframe
// transfer: signed-axis labels, per-profile axis selections, and the
// YAML loader that turns a reviewable config file into profiles.
//
// Key capabilities:
//   - Resolve a signed-axis label ("Y-") to a target axis index and sign
//   - Primary/secondary mapping profiles with replace-all policy
//   - Mapper keywords and suffix rules for batch bone pairing
//
// YAML is a first-class feature: a mapping config is a small file an
// animator can review, version, and reuse across clips.
package remap
