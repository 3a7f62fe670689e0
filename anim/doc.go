// Package anim models the animated armature the engine operates on:
// an object with a pose of named bones and one active action holding
// per-(bone, property, axis) keyframe channels.
//
// Key capabilities:
//   - Locate channels by (bone, property, axis), lazily creating on write
//   - Time-ordered keyframe insertion with merge-at-frame semantics
//   - Full keyframe state: value, tangent handles, interpolation metadata
//
// Channels are plain in-memory structures. All mutation is synchronous
// and single-threaded; the host guarantees exclusive access while an
// operation runs.
package anim
