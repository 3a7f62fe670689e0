// Package ops implements the keyframe operations: remapped transfer
// between bones, in-place value flipping, full-state swapping, and
// suffix-driven batch remapping of selected bone pairs.
//
// Operation pipeline for a transfer:
//  1. Locate the source channel for each axis (absent axes are skipped
//     with a warning, never fatal)
//  2. Resolve the profile's axis label to a target axis index and sign
//  3. Get-or-create the target channel, clearing it under replace-all
//  4. Insert value*sign at each source frame, time-ordered
//
// The Session type carries the host's selection context and exposes the
// operator-style entry points. Every operation reports structured
// diagnostics; partial completion within a batch is success with
// warnings attached.
package ops
