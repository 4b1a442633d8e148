// Package enginetest provides a scripted in-memory engine implementing the
// adapter contract. Fixtures are assembled with the World builder; every
// engine call is appended to World.Calls so tests can assert both the
// observable state and the exact call sequence the tooling issued.
package enginetest

import (
	"fmt"

	"github.com/lego290/spine2d/engine"
)

// World is one scripted engine fixture. The zero value is usable; add bones,
// slots, constraints, and animations through the builder methods.
type World struct {
	// Calls records every engine call in order, one line per call.
	Calls []string

	Bones       []*Bone
	Slots       []*Slot
	Constraints []*Constraint
	Animations  map[string]*Animation

	// Skins is the set of known skin names. A nil map accepts any name.
	Skins map[string]bool

	// DrawOrderIndexes permutes the slots for DrawOrder. Nil means slot
	// order.
	DrawOrderIndexes []int

	// ExcludedFromUpdate removes individual entities from the reported
	// update-evaluation order. Keys are the entities' update refs.
	ExcludedFromUpdate map[engine.UpdateRef]bool

	// Draws is the canned render-command list returned by Instance.Render.
	Draws []Draw

	// PMAPages flags one atlas page per entry as premultiplied or not.
	PMAPages []bool

	// AtlasErr and SkeletonErr, when non-empty, fail the respective load.
	AtlasErr    string
	SkeletonErr string

	// Entries collects the track entries handed out by the animation
	// state, in creation order.
	Entries []*Entry

	YDown bool
}

func (w *World) log(format string, args ...any) {
	w.Calls = append(w.Calls, fmt.Sprintf(format, args...))
}

// AddBone appends a bone with an identity world transform and setup local
// pose. The returned bone can be mutated to script poses.
func (w *World) AddBone(name string) *Bone {
	b := &Bone{
		name:       name,
		ActiveFlag: true,
		WorldPose:  engine.WorldTransform{A: 1, D: 1},
		LocalPose:  engine.LocalPose{ScaleX: 1, ScaleY: 1},
	}
	w.Bones = append(w.Bones, b)
	return b
}

// AddSlot appends a slot with the default tint and no attachment.
func (w *World) AddSlot(name string) *Slot {
	s := &Slot{
		name:     name,
		index:    len(w.Slots),
		Tint:     engine.Color{R: 1, G: 1, B: 1, A: 1},
		SeqIndex: -1,
	}
	w.Slots = append(w.Slots, s)
	return s
}

// AddConstraint appends a constraint of the given kind. Pose and data fields
// are scripted directly on the returned value.
func (w *World) AddConstraint(name string, kind engine.ConstraintKind) *Constraint {
	c := &Constraint{name: name, kind: kind}
	w.Constraints = append(w.Constraints, c)
	return c
}

// AddAnimation registers a named animation (so SetAnimation accepts it) and
// returns it for timeline scripting.
func (w *World) AddAnimation(name string) *Animation {
	if w.Animations == nil {
		w.Animations = make(map[string]*Animation)
	}
	a := &Animation{name: name}
	w.Animations[name] = a
	return a
}

// Bone fakes both the bone instance and its data.
type Bone struct {
	name       string
	ActiveFlag bool
	WorldPose  engine.WorldTransform
	LocalPose  engine.LocalPose
}

var (
	_ engine.Bone     = (*Bone)(nil)
	_ engine.BoneData = (*Bone)(nil)
)

func (b *Bone) Name() string                 { return b.name }
func (b *Bone) Data() engine.BoneData        { return b }
func (b *Bone) Active() bool                 { return b.ActiveFlag }
func (b *Bone) World() engine.WorldTransform { return b.WorldPose }
func (b *Bone) Applied() engine.LocalPose    { return b.LocalPose }
func (b *Bone) UpdateRef() engine.UpdateRef  { return b }

// Slot fakes both the slot instance and its data.
type Slot struct {
	name     string
	index    int
	Tint     engine.Color
	Dark     engine.Color
	HasDark  bool
	SeqIndex int
	Att      engine.Attachment
}

var (
	_ engine.Slot     = (*Slot)(nil)
	_ engine.SlotData = (*Slot)(nil)
)

func (s *Slot) Name() string          { return s.name }
func (s *Slot) Index() int            { return s.index }
func (s *Slot) Data() engine.SlotData { return s }
func (s *Slot) Color() engine.Color   { return s.Tint }
func (s *Slot) DarkColor() (engine.Color, bool) {
	return s.Dark, s.HasDark
}
func (s *Slot) SequenceIndex() int { return s.SeqIndex }
func (s *Slot) Attachment() (engine.Attachment, bool) {
	if s.Att == nil {
		return nil, false
	}
	return s.Att, true
}

// Attachment is a scripted attachment. When Vertices is non-nil it also
// serves as a vertex attachment.
type Attachment struct {
	AttName  string
	AttKind  engine.AttachmentKind
	Vertices []float32
}

var _ engine.VertexAttachment = (*Attachment)(nil)

func (a *Attachment) Name() string                { return a.AttName }
func (a *Attachment) Kind() engine.AttachmentKind { return a.AttKind }
func (a *Attachment) WorldVertices(engine.Skeleton, engine.Slot) []float32 {
	return a.Vertices
}

// Constraint is the scripted backing store for one constraint of any kind.
// The engine-facing runtime and data views are per-kind wrappers over it,
// mirroring how a real binding surfaces RTTI casts; the wrapper is chosen by
// the scripted kind, and the constraint's update ref is the backing pointer
// so identity survives wrapping.
type Constraint struct {
	name          string
	kind          engine.ConstraintKind
	RequiresSkin  bool

	IK      engine.IKPose
	IKSetup engine.IKPose
	Uniform bool

	Transform      engine.TransformPose
	TransformSetup engine.TransformPose
	LocalSource    bool
	LocalTarget    bool
	Additive       bool
	Clamp          bool

	Path      engine.PathPose
	PathSetup engine.PathPose
	PosMode   engine.PositionMode
	SpaceMode engine.SpacingMode
	RotMode   engine.RotateMode

	Physics      engine.PhysicsPose
	PhysicsSetup engine.PhysicsPose
	Sim          engine.PhysicsState

	Slider        engine.SliderPose
	SliderSetup   engine.SliderPose
	SliderAnim    *Animation
	SliderBone    *Bone
	SliderHasProp bool
	SliderLoop    bool
	SliderAdd     bool
	SliderScale   float32
	SliderOffset  float32
	SliderLocal   bool
}

// View returns the runtime view matching the constraint's kind.
func (c *Constraint) View() engine.Constraint {
	switch c.kind {
	case engine.ConstraintIK:
		return ikView{c}
	case engine.ConstraintTransform:
		return transformView{c}
	case engine.ConstraintPath:
		return pathView{c}
	case engine.ConstraintPhysics:
		return physicsView{c}
	default:
		return sliderView{c}
	}
}

// DataView returns the data view matching the constraint's kind.
func (c *Constraint) DataView() engine.ConstraintData {
	switch c.kind {
	case engine.ConstraintIK:
		return ikData{c}
	case engine.ConstraintTransform:
		return transformData{c}
	case engine.ConstraintPath:
		return pathData{c}
	case engine.ConstraintPhysics:
		return physicsData{c}
	default:
		return sliderData{c}
	}
}

type ikView struct{ *Constraint }

func (v ikView) Data() engine.ConstraintData  { return v.Constraint.DataView() }
func (v ikView) Kind() engine.ConstraintKind  { return v.kind }
func (v ikView) UpdateRef() engine.UpdateRef  { return v.Constraint }
func (v ikView) AppliedPose() engine.IKPose   { return v.IK }

type transformView struct{ *Constraint }

func (v transformView) Data() engine.ConstraintData       { return v.Constraint.DataView() }
func (v transformView) Kind() engine.ConstraintKind       { return v.kind }
func (v transformView) UpdateRef() engine.UpdateRef       { return v.Constraint }
func (v transformView) AppliedPose() engine.TransformPose { return v.Transform }

type pathView struct{ *Constraint }

func (v pathView) Data() engine.ConstraintData  { return v.Constraint.DataView() }
func (v pathView) Kind() engine.ConstraintKind  { return v.kind }
func (v pathView) UpdateRef() engine.UpdateRef  { return v.Constraint }
func (v pathView) AppliedPose() engine.PathPose { return v.Path }

type physicsView struct{ *Constraint }

func (v physicsView) Data() engine.ConstraintData          { return v.Constraint.DataView() }
func (v physicsView) Kind() engine.ConstraintKind          { return v.kind }
func (v physicsView) UpdateRef() engine.UpdateRef          { return v.Constraint }
func (v physicsView) AppliedPose() engine.PhysicsPose      { return v.Physics }
func (v physicsView) SimulationState() engine.PhysicsState { return v.Sim }

type sliderView struct{ *Constraint }

func (v sliderView) Data() engine.ConstraintData { return v.Constraint.DataView() }
func (v sliderView) Kind() engine.ConstraintKind { return v.kind }
func (v sliderView) UpdateRef() engine.UpdateRef { return v.Constraint }

var (
	_ engine.IKConstraint        = ikView{}
	_ engine.TransformConstraint = transformView{}
	_ engine.PathConstraint      = pathView{}
	_ engine.PhysicsConstraint   = physicsView{}
	_ engine.Constraint          = sliderView{}
)

type ikData struct{ c *Constraint }

func (d ikData) Name() string                { return d.c.name }
func (d ikData) Kind() engine.ConstraintKind { return d.c.kind }
func (d ikData) SkinRequired() bool          { return d.c.RequiresSkin }
func (d ikData) SetupPose() engine.IKPose    { return d.c.IKSetup }
func (d ikData) Uniform() bool               { return d.c.Uniform }

type transformData struct{ c *Constraint }

func (d transformData) Name() string                   { return d.c.name }
func (d transformData) Kind() engine.ConstraintKind    { return d.c.kind }
func (d transformData) SkinRequired() bool             { return d.c.RequiresSkin }
func (d transformData) SetupPose() engine.TransformPose { return d.c.TransformSetup }
func (d transformData) LocalSource() bool              { return d.c.LocalSource }
func (d transformData) LocalTarget() bool              { return d.c.LocalTarget }
func (d transformData) Additive() bool                 { return d.c.Additive }
func (d transformData) Clamp() bool                    { return d.c.Clamp }

type pathData struct{ c *Constraint }

func (d pathData) Name() string                     { return d.c.name }
func (d pathData) Kind() engine.ConstraintKind      { return d.c.kind }
func (d pathData) SkinRequired() bool               { return d.c.RequiresSkin }
func (d pathData) SetupPose() engine.PathPose       { return d.c.PathSetup }
func (d pathData) PositionMode() engine.PositionMode { return d.c.PosMode }
func (d pathData) SpacingMode() engine.SpacingMode  { return d.c.SpaceMode }
func (d pathData) RotateMode() engine.RotateMode    { return d.c.RotMode }

type physicsData struct{ c *Constraint }

func (d physicsData) Name() string                 { return d.c.name }
func (d physicsData) Kind() engine.ConstraintKind  { return d.c.kind }
func (d physicsData) SkinRequired() bool           { return d.c.RequiresSkin }
func (d physicsData) SetupPose() engine.PhysicsPose { return d.c.PhysicsSetup }

type sliderData struct{ c *Constraint }

func (d sliderData) Name() string                { return d.c.name }
func (d sliderData) Kind() engine.ConstraintKind { return d.c.kind }
func (d sliderData) SkinRequired() bool          { return d.c.RequiresSkin }
func (d sliderData) SetupPose() engine.SliderPose { return d.c.SliderSetup }
func (d sliderData) Animation() (engine.AnimationData, bool) {
	if d.c.SliderAnim == nil {
		return nil, false
	}
	return d.c.SliderAnim, true
}
func (d sliderData) Bone() (engine.BoneData, bool) {
	if d.c.SliderBone == nil {
		return nil, false
	}
	return d.c.SliderBone, true
}
func (d sliderData) HasProperty() bool { return d.c.SliderHasProp }
func (d sliderData) Loop() bool        { return d.c.SliderLoop }
func (d sliderData) Additive() bool    { return d.c.SliderAdd }
func (d sliderData) Scale() float32    { return d.c.SliderScale }
func (d sliderData) Offset() float32   { return d.c.SliderOffset }
func (d sliderData) Local() bool       { return d.c.SliderLocal }

var (
	_ engine.IKConstraintData        = ikData{}
	_ engine.TransformConstraintData = transformData{}
	_ engine.PathConstraintData      = pathData{}
	_ engine.PhysicsConstraintData   = physicsData{}
	_ engine.SliderConstraintData    = sliderData{}
)

// Animation fakes AnimationData.
type Animation struct {
	name  string
	lines []*Timeline
}

var _ engine.AnimationData = (*Animation)(nil)

func (a *Animation) Name() string { return a.name }
func (a *Animation) Timelines() []engine.TimelineData {
	out := make([]engine.TimelineData, len(a.lines))
	for i, t := range a.lines {
		out[i] = t
	}
	return out
}

// AddTimeline appends a timeline description.
func (a *Animation) AddTimeline(class string, target engine.TimelineTarget, idx int) *Timeline {
	t := &Timeline{Class: class, Tgt: target, Idx: idx, IdxOK: true}
	a.lines = append(a.lines, t)
	return t
}

// Timeline fakes TimelineData.
type Timeline struct {
	Class string
	Tgt   engine.TimelineTarget
	Idx   int
	IdxOK bool
}

var _ engine.TimelineData = (*Timeline)(nil)

func (t *Timeline) ClassName() string             { return t.Class }
func (t *Timeline) Target() engine.TimelineTarget { return t.Tgt }
func (t *Timeline) TargetIndex() (int, bool)      { return t.Idx, t.IdxOK }

// Draw is one canned render command.
type Draw struct {
	Page       int
	Blend      engine.BlendMode
	Positions  []float32
	UVs        []float32
	Colors     []uint32
	DarkColors []uint32
	Indices    []uint16
}
