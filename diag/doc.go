// Package diag provides structured diagnostics for keyframe operations:
// per-axis and per-pair warnings, fatal precondition errors, and the
// informational trail a host displays after a batch.
//
// Key capabilities:
//   - (severity, code, message) records with bone/channel context
//   - Accumulation across axes and bone pairs within one operation
//   - Collapse to a single error for callers that only care about failure
package diag
