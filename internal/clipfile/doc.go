// Package clipfile reads and writes animation clips as YAML so the CLI
// can drive the engine end-to-end: an object, its pose bones, and the
// active action's channels with full keyframe state.
//
// The file format mirrors the data model one-to-one; enum fields use
// their String names and may be omitted for defaults.
package clipfile
