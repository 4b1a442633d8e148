package engine

// AttachmentKind identifies the concrete shape of a slot attachment.
// The numeric values are part of the snapshot schema and must not be
// renumbered.
type AttachmentKind int

const (
	AttachmentUnknown     AttachmentKind = -1
	AttachmentRegion      AttachmentKind = 0
	AttachmentMesh        AttachmentKind = 1
	AttachmentClipping    AttachmentKind = 2
	AttachmentBoundingBox AttachmentKind = 3
	AttachmentPath        AttachmentKind = 4
	AttachmentPoint       AttachmentKind = 5
)

// String returns the snapshot type name for the attachment kind.
func (k AttachmentKind) String() string {
	switch k {
	case AttachmentRegion:
		return "region"
	case AttachmentMesh:
		return "mesh"
	case AttachmentClipping:
		return "clipping"
	case AttachmentBoundingBox:
		return "boundingbox"
	case AttachmentPath:
		return "path"
	case AttachmentPoint:
		return "point"
	default:
		return "unknown"
	}
}

// HasVertices reports whether attachments of this kind carry a deformable
// vertex set that can be projected into world space.
func (k AttachmentKind) HasVertices() bool {
	switch k {
	case AttachmentMesh, AttachmentPath, AttachmentBoundingBox, AttachmentClipping:
		return true
	default:
		return false
	}
}

// ConstraintKind identifies the concrete kind of a constraint.
type ConstraintKind int

const (
	ConstraintIK ConstraintKind = iota
	ConstraintTransform
	ConstraintPath
	ConstraintPhysics
	ConstraintSlider
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintIK:
		return "ik"
	case ConstraintTransform:
		return "transform"
	case ConstraintPath:
		return "path"
	case ConstraintPhysics:
		return "physics"
	case ConstraintSlider:
		return "slider"
	default:
		return "constraint"
	}
}

// BlendMode is the compositing mode of a render command.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdditive
	BlendMultiply
	BlendScreen
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendAdditive:
		return "additive"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// PhysicsMode selects how physics constraints participate in a world
// transform pass.
type PhysicsMode int

const (
	PhysicsNone PhysicsMode = iota
	PhysicsReset
	PhysicsUpdate
	PhysicsPoseMode
)

func (m PhysicsMode) String() string {
	switch m {
	case PhysicsNone:
		return "none"
	case PhysicsReset:
		return "reset"
	case PhysicsUpdate:
		return "update"
	case PhysicsPoseMode:
		return "pose"
	default:
		return "unknown"
	}
}

// ParsePhysicsMode maps the textual mode names used on the command line.
func ParsePhysicsMode(s string) (PhysicsMode, bool) {
	switch s {
	case "none":
		return PhysicsNone, true
	case "reset":
		return PhysicsReset, true
	case "update":
		return PhysicsUpdate, true
	case "pose":
		return PhysicsPoseMode, true
	default:
		return PhysicsNone, false
	}
}

// MixBlend controls how a track entry's animation mixes into the pose.
type MixBlend int

const (
	MixBlendSetup MixBlend = iota
	MixBlendFirst
	MixBlendReplace
	MixBlendAdd
)

func (b MixBlend) String() string {
	switch b {
	case MixBlendSetup:
		return "setup"
	case MixBlendFirst:
		return "first"
	case MixBlendReplace:
		return "replace"
	case MixBlendAdd:
		return "add"
	default:
		return "unknown"
	}
}

// ParseMixBlend maps the textual blend names used on the command line.
func ParseMixBlend(s string) (MixBlend, bool) {
	switch s {
	case "setup":
		return MixBlendSetup, true
	case "first":
		return MixBlendFirst, true
	case "replace":
		return MixBlendReplace, true
	case "add":
		return MixBlendAdd, true
	default:
		return MixBlendReplace, false
	}
}

// TimelineTarget classifies what a timeline's index binding refers to.
type TimelineTarget int

const (
	// TargetOther marks timelines without an index binding (events, draw
	// order, and similar).
	TargetOther TimelineTarget = iota
	TargetSlot
	TargetBone
	TargetConstraint
)

// PositionMode, SpacingMode and RotateMode are the path-constraint mode
// enums. Their numeric values are engine-defined and reported verbatim by
// the introspector.
type (
	PositionMode int
	SpacingMode  int
	RotateMode   int
)
