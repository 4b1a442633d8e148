// Package spine2d provides reference-oracle tooling for validating 2D
// skeletal-animation runtimes.
//
// # Overview
//
// spine2d drives a known-correct animation engine through a scripted sequence
// of track operations and emits deterministic, numerically exact snapshots of
// the resulting pose, constraint state, and render geometry. An independent
// runtime implementation can be diffed against those snapshots field by field.
//
// The animation engine itself is out of scope: it is consumed through the
// adapter contract in the engine subpackage and supplied by a driver module
// that registers itself with engine.Register.
//
// # Architecture
//
// The toolkit is organized into:
//   - Root package: packed-color math shared by the render pipeline, logging.
//   - engine: the adapter contract (interfaces, enums, driver registry).
//   - scenario: the command interpreter that replays track operations.
//   - snapshot: pose/constraint serialization and active-constraint resolution.
//   - render: render-batch extraction and color reconciliation.
//   - introspect: static constraint/timeline reporting.
//   - compare: tolerance-based snapshot diffing.
//   - cmd/: one binary per tool.
//
// # Determinism
//
// Every floating-point value in a snapshot is emitted with full float32
// round-trip precision: snapshot documents type their numeric fields as
// float32 and encoding/json formats those with the shortest representation
// that parses back to the identical bits. Lossy formatting would invalidate
// the oracle's purpose.
package spine2d

// Version information
const (
	// Version is the current version of the toolkit
	Version = "0.4.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 4

	// VersionPatch is the patch version
	VersionPatch = 0
)
