package engine

// UpdateRef is an opaque identity token for one entry of the skeleton's
// update-evaluation order. Tokens must be comparable and stable for the
// lifetime of the entity they denote; consumers use them only as map keys
// for identity-membership tests, never structurally.
type UpdateRef any

// Driver is the entry point a concrete engine binding implements.
// All loading returns either a value or an error, never both.
type Driver interface {
	// SetYDown switches the engine's global vertical-axis convention.
	SetYDown(down bool)

	// LoadAtlas parses atlas data from raw text.
	LoadAtlas(text string) (Atlas, error)

	// LoadSkeletonJSON parses skeleton data from JSON text against an atlas.
	// The path is used only for diagnostics.
	LoadSkeletonJSON(atlas Atlas, text string, path string) (SkeletonData, error)

	// LoadSkeletonBinary parses skeleton data from a versioned binary blob.
	LoadSkeletonBinary(atlas Atlas, data []byte, path string) (SkeletonData, error)

	// NewInstance constructs a skeleton instance plus animation-state pair
	// bound to one immutable skeleton data.
	NewInstance(data SkeletonData) (Instance, error)
}

// Atlas is a loaded texture atlas.
type Atlas interface {
	Pages() []AtlasPage
}

// AtlasPage describes one texture page of an atlas.
type AtlasPage interface {
	Name() string
	// PremultipliedAlpha reports whether the page's texture data was
	// exported with premultiplied alpha.
	PremultipliedAlpha() bool
}

// SkeletonData is the immutable, shared definition a skeleton instance is
// built from. Bone, slot, and constraint counts are fixed for its lifetime.
type SkeletonData interface {
	Bones() []BoneData
	Slots() []SlotData
	Constraints() []ConstraintData
	FindAnimation(name string) (AnimationData, bool)
}

// BoneData is a bone definition.
type BoneData interface {
	Name() string
}

// SlotData is a slot definition.
type SlotData interface {
	Name() string
	// Index is the slot's position in the skeleton data's slot list. Draw
	// order serializes these indices, not instance positions.
	Index() int
}

// AnimationData is one named animation with its timelines in definition
// order.
type AnimationData interface {
	Name() string
	Timelines() []TimelineData
}

// TimelineData describes one timeline of an animation for static analysis.
type TimelineData interface {
	// ClassName is the engine's concrete timeline type name.
	ClassName() string
	Target() TimelineTarget
	// TargetIndex returns the bound slot/bone/constraint index. ok is false
	// when the timeline targets a slot but the binding is not exposed by the
	// engine.
	TargetIndex() (idx int, ok bool)
}

// ConstraintData is the static configuration of a constraint. Kind-specific
// fields are reached by asserting to the matching *Data interface below.
type ConstraintData interface {
	Name() string
	Kind() ConstraintKind
	SkinRequired() bool
}

// IKPose carries the mixable parameters of an IK constraint, used both for
// the setup pose and the applied (runtime) pose.
type IKPose struct {
	Mix           float32
	Softness      float32
	BendDirection int
	Compress      bool
	Stretch       bool
}

// IKConstraintData is the static configuration of an IK constraint.
type IKConstraintData interface {
	ConstraintData
	SetupPose() IKPose
	Uniform() bool
}

// TransformPose carries the six mix ratios of a transform constraint.
type TransformPose struct {
	MixRotate float32
	MixX      float32
	MixY      float32
	MixScaleX float32
	MixScaleY float32
	MixShearY float32
}

// TransformConstraintData is the static configuration of a transform
// constraint.
type TransformConstraintData interface {
	ConstraintData
	SetupPose() TransformPose
	LocalSource() bool
	LocalTarget() bool
	Additive() bool
	Clamp() bool
}

// PathPose carries the mixable parameters of a path constraint.
type PathPose struct {
	Position  float32
	Spacing   float32
	MixRotate float32
	MixX      float32
	MixY      float32
}

// PathConstraintData is the static configuration of a path constraint.
type PathConstraintData interface {
	ConstraintData
	SetupPose() PathPose
	PositionMode() PositionMode
	SpacingMode() SpacingMode
	RotateMode() RotateMode
}

// PhysicsPose carries the mixable parameters of a physics constraint.
type PhysicsPose struct {
	Inertia     float32
	Strength    float32
	Damping     float32
	MassInverse float32
	Wind        float32
	Gravity     float32
	Mix         float32
}

// PhysicsConstraintData is the static configuration of a physics constraint.
type PhysicsConstraintData interface {
	ConstraintData
	SetupPose() PhysicsPose
}

// SliderPose carries the mixable parameters of a slider constraint.
type SliderPose struct {
	Time float32
	Mix  float32
}

// SliderConstraintData is the static configuration of a slider constraint.
type SliderConstraintData interface {
	ConstraintData
	SetupPose() SliderPose
	// Animation returns the bound animation, if any.
	Animation() (AnimationData, bool)
	// Bone returns the bound bone, if any.
	Bone() (BoneData, bool)
	// HasProperty reports whether the slider drives a bone property.
	HasProperty() bool
	Loop() bool
	Additive() bool
	Scale() float32
	Offset() float32
	Local() bool
}

// PhysicsState is the internal simulation state of one physics constraint.
// It is otherwise unobservable and is exactly what a reimplementation must
// match bit for bit.
type PhysicsState struct {
	UX, UY         float32
	CX, CY         float32
	TX, TY         float32
	XOffset        float32
	XVelocity      float32
	YOffset        float32
	YVelocity      float32
	RotateOffset   float32
	RotateVelocity float32
	ScaleOffset    float32
	ScaleVelocity  float32
	Remaining      float32
	LastTime       float32
	Reset          bool
}

// Instance owns one skeleton plus one animation-state machine bound to a
// shared skeleton data. It is single-threaded: no two operations may run
// concurrently against the same instance.
type Instance interface {
	Skeleton() Skeleton
	State() AnimationState

	// SetMix registers an explicit mix duration between two named animations
	// for future transitions.
	SetMix(from, to string, duration float32) error

	// Render produces the head of this frame's render-command list, or nil
	// when nothing is renderable. The list is regenerated on every call and
	// must not be retained across frames.
	Render() RenderCommand

	Close() error
}

// Skeleton is one mutable skeleton instance.
type Skeleton interface {
	Data() SkeletonData

	// SetupPose resets bones and slots to the setup (bind) pose.
	SetupPose()
	// SetupPoseSlots resets only the slots to the setup pose.
	SetupPoseSlots()

	// SetSkin switches the active skin by name. The update-evaluation cache
	// is stale afterwards until UpdateCache is called.
	SetSkin(name string) error
	// ClearSkin removes the active skin.
	ClearSkin()
	// UpdateCache rebuilds the update-evaluation order.
	UpdateCache()

	Bones() []Bone
	Slots() []Slot
	FindSlot(name string) (Slot, bool)
	// DrawOrder is a permutation of the skeleton's slots.
	DrawOrder() []Slot
	Constraints() []Constraint

	// UpdateOrder is the per-update evaluation order: exactly the bones and
	// constraints that will be evaluated this frame, as opaque identity
	// tokens. Membership is the sole source of truth for constraint
	// activity.
	UpdateOrder() []UpdateRef

	// Update advances skeleton-internal simulation time (physics) by dt
	// seconds.
	Update(dt float32)
	// UpdateWorldTransform recomputes world transforms under the given
	// physics mode.
	UpdateWorldTransform(mode PhysicsMode)
}

// WorldTransform is a bone's world pose: 2x2 affine matrix plus translation.
type WorldTransform struct {
	A, B, C, D     float32
	WorldX, WorldY float32
}

// LocalPose is a bone's applied local pose.
type LocalPose struct {
	X, Y     float32
	Rotation float32
	ScaleX   float32
	ScaleY   float32
	ShearX   float32
	ShearY   float32
}

// Bone is one bone instance.
type Bone interface {
	Data() BoneData
	// Active reports whether the bone currently contributes to the
	// hierarchy (it may be skin-gated out).
	Active() bool
	World() WorldTransform
	Applied() LocalPose
	// UpdateRef is the identity token under which this bone appears in the
	// update-evaluation order.
	UpdateRef() UpdateRef
}

// Color is a straight (non-packed) RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Slot is one slot instance with its applied pose.
type Slot interface {
	Data() SlotData
	Color() Color
	// DarkColor returns the tint-black color and whether the slot has one.
	// The color value is reported even when absent.
	DarkColor() (Color, bool)
	SequenceIndex() int
	// Attachment returns the current attachment, if any.
	Attachment() (Attachment, bool)
}

// Attachment is the renderable or geometric shape bound to a slot.
type Attachment interface {
	Name() string
	Kind() AttachmentKind
}

// VertexAttachment is implemented by attachments whose kind carries a
// deformable vertex set (mesh, path, bounding box, clipping).
type VertexAttachment interface {
	Attachment
	// WorldVertices computes the attachment's vertex positions in world
	// space for the given skeleton and slot, flattened as x,y pairs.
	WorldVertices(skel Skeleton, slot Slot) []float32
}

// Constraint is one constraint instance. Kind-specific applied poses are
// reached by asserting to the matching view below.
type Constraint interface {
	Data() ConstraintData
	Kind() ConstraintKind
	// UpdateRef is the identity token under which this constraint appears
	// in the update-evaluation order.
	UpdateRef() UpdateRef
}

// IKConstraint is the runtime view of an IK constraint.
type IKConstraint interface {
	Constraint
	AppliedPose() IKPose
}

// TransformConstraint is the runtime view of a transform constraint.
type TransformConstraint interface {
	Constraint
	AppliedPose() TransformPose
}

// PathConstraint is the runtime view of a path constraint.
type PathConstraint interface {
	Constraint
	AppliedPose() PathPose
}

// PhysicsConstraint is the runtime view of a physics constraint.
type PhysicsConstraint interface {
	Constraint
	AppliedPose() PhysicsPose
	// SimulationState exposes the constraint's internal simulation state.
	SimulationState() PhysicsState
}

// AnimationState is the animation-state machine of one instance.
type AnimationState interface {
	// SetAnimation replaces the current animation on a track.
	SetAnimation(track int, name string, loop bool) (TrackEntry, error)
	// AddAnimation queues an animation after the current track content.
	AddAnimation(track int, name string, loop bool, delay float32) (TrackEntry, error)
	// SetEmptyAnimation replaces the track with an empty animation, fading
	// out the current content over mixDuration.
	SetEmptyAnimation(track int, mixDuration float32) TrackEntry
	// AddEmptyAnimation queues an empty animation after delay.
	AddEmptyAnimation(track int, mixDuration, delay float32) TrackEntry

	// Update advances the state machine by dt seconds.
	Update(dt float32)
	// Apply poses the skeleton from the current state.
	Apply(skel Skeleton)
}

// TrackEntry is one scheduled animation playback with its own mixing and
// blend parameters.
type TrackEntry interface {
	SetAlpha(alpha float32)
	SetEventThreshold(threshold float32)
	SetAlphaAttachmentThreshold(threshold float32)
	SetMixAttachmentThreshold(threshold float32)
	SetMixDrawOrderThreshold(threshold float32)
	SetHoldPrevious(hold bool)
	SetMixBlend(blend MixBlend)
	SetReverse(reverse bool)
	SetShortestRotation(shortest bool)
	ResetRotationDirections()
}

// RenderCommand is one draw batch: a contiguous run of triangles sharing a
// texture page and blend mode. Commands form a forward-only linked sequence
// for one frame.
type RenderCommand interface {
	// Texture is an opaque texture-page identifier.
	Texture() int
	BlendMode() BlendMode
	// Positions holds two floats per vertex.
	Positions() []float32
	// UVs holds two floats per vertex.
	UVs() []float32
	// Colors holds one packed AARRGGBB color per vertex.
	Colors() []uint32
	// DarkColors holds one packed AARRGGBB dark color per vertex.
	DarkColors() []uint32
	// Indices holds three vertex indices per triangle.
	Indices() []uint16
	// Next returns the following command, or nil at the end of the list.
	Next() RenderCommand
}
