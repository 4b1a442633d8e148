// Package snapshot captures a skeleton's post-update pose as a single JSON
// document: bones, slots, draw order, and per-kind constraint lists with
// their applied poses and frame-accurate active flags.
//
// All floating-point fields are float32 so that encoding/json emits the
// shortest representation that round-trips at single precision.
package snapshot

import (
	"encoding/json"
	"io"

	"github.com/lego290/spine2d"
	"github.com/lego290/spine2d/engine"
)

// Run modes reported in the document header.
const (
	ModeLegacy   = "legacy"
	ModeScenario = "scenario"
)

// Meta is the document header describing how the pose was produced.
type Meta struct {
	Mode      string
	Animation string
	Time      float32
	YDown     bool
}

// Document is one pose snapshot. Field order is part of the schema.
type Document struct {
	Mode                 string           `json:"mode"`
	Animation            string           `json:"animation"`
	Time                 float32          `json:"time"`
	YDown                int              `json:"yDown"`
	Bones                []BoneEntry      `json:"bones"`
	Slots                []SlotEntry      `json:"slots"`
	DrawOrder            []int            `json:"drawOrder"`
	IKConstraints        []IKEntry        `json:"ikConstraints"`
	TransformConstraints []TransformEntry `json:"transformConstraints"`
	PathConstraints      []PathEntry      `json:"pathConstraints"`
	PhysicsConstraints   []PhysicsEntry   `json:"physicsConstraints"`
	Debug                *Debug           `json:"debug,omitempty"`
}

// BoneEntry is one bone's world matrix and applied local pose.
type BoneEntry struct {
	I      int        `json:"i"`
	Name   string     `json:"name"`
	Active int        `json:"active"`
	World  WorldEntry `json:"world"`
	Local  LocalEntry `json:"applied"`
}

// WorldEntry is a 2x2 affine matrix plus translation.
type WorldEntry struct {
	A float32 `json:"a"`
	B float32 `json:"b"`
	C float32 `json:"c"`
	D float32 `json:"d"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// LocalEntry is a bone's applied local pose.
type LocalEntry struct {
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Rotation float32 `json:"rotation"`
	ScaleX   float32 `json:"scaleX"`
	ScaleY   float32 `json:"scaleY"`
	ShearX   float32 `json:"shearX"`
	ShearY   float32 `json:"shearY"`
}

// SlotEntry is one slot's applied pose and attachment identity.
type SlotEntry struct {
	I             int              `json:"i"`
	Name          string           `json:"name"`
	Color         [4]float32       `json:"color"`
	HasDark       int              `json:"hasDark"`
	DarkColor     [4]float32       `json:"darkColor"`
	SequenceIndex int              `json:"sequenceIndex"`
	Attachment    *AttachmentEntry `json:"attachment"`
}

// AttachmentEntry identifies a slot's current attachment.
type AttachmentEntry struct {
	Name     string `json:"name"`
	Type     int    `json:"type"`
	TypeName string `json:"typeName"`
}

// IKEntry is one IK constraint's applied pose.
type IKEntry struct {
	I             int     `json:"i"`
	Name          string  `json:"name"`
	Mix           float32 `json:"mix"`
	Softness      float32 `json:"softness"`
	BendDirection int     `json:"bendDirection"`
	Active        int     `json:"active"`
}

// TransformEntry is one transform constraint's applied pose.
type TransformEntry struct {
	I         int     `json:"i"`
	Name      string  `json:"name"`
	MixRotate float32 `json:"mixRotate"`
	MixX      float32 `json:"mixX"`
	MixY      float32 `json:"mixY"`
	MixScaleX float32 `json:"mixScaleX"`
	MixScaleY float32 `json:"mixScaleY"`
	MixShearY float32 `json:"mixShearY"`
	Active    int     `json:"active"`
}

// PathEntry is one path constraint's applied pose.
type PathEntry struct {
	I         int     `json:"i"`
	Name      string  `json:"name"`
	Position  float32 `json:"position"`
	Spacing   float32 `json:"spacing"`
	MixRotate float32 `json:"mixRotate"`
	MixX      float32 `json:"mixX"`
	MixY      float32 `json:"mixY"`
	Active    int     `json:"active"`
}

// PhysicsEntry is one physics constraint's applied pose plus its full
// internal simulation state. The simulation state is otherwise unobservable;
// a reimplementation must match it bit for bit.
type PhysicsEntry struct {
	I              int     `json:"i"`
	Name           string  `json:"name"`
	Inertia        float32 `json:"inertia"`
	Strength       float32 `json:"strength"`
	Damping        float32 `json:"damping"`
	MassInverse    float32 `json:"massInverse"`
	Wind           float32 `json:"wind"`
	Gravity        float32 `json:"gravity"`
	Mix            float32 `json:"mix"`
	Reset          int     `json:"reset"`
	UX             float32 `json:"ux"`
	UY             float32 `json:"uy"`
	CX             float32 `json:"cx"`
	CY             float32 `json:"cy"`
	TX             float32 `json:"tx"`
	TY             float32 `json:"ty"`
	XOffset        float32 `json:"xOffset"`
	XVelocity      float32 `json:"xVelocity"`
	YOffset        float32 `json:"yOffset"`
	YVelocity      float32 `json:"yVelocity"`
	RotateOffset   float32 `json:"rotateOffset"`
	RotateVelocity float32 `json:"rotateVelocity"`
	ScaleOffset    float32 `json:"scaleOffset"`
	ScaleVelocity  float32 `json:"scaleVelocity"`
	Remaining      float32 `json:"remaining"`
	LastTime       float32 `json:"lastTime"`
	Active         int     `json:"active"`
}

// Debug carries the optional diagnostics block. Pointer fields distinguish
// "absent" (key omitted) from "present but null".
type Debug struct {
	Slot          *string    `json:"slot,omitempty"`
	WorldVertices *[]float32 `json:"worldVertices,omitempty"`
	UpdateCache   *[]string  `json:"updateCache,omitempty"`
}

// Option toggles an optional extension of the capture.
type Option func(*capture)

// WithSlotVertices requests the named slot's computed world-space vertex
// positions in the debug block. Slots without a vertex-bearing attachment
// report null.
func WithSlotVertices(slotName string) Option {
	return func(c *capture) { c.slotVertices = &slotName }
}

// WithUpdateCacheDump requests a human-readable dump of the
// update-evaluation order in the debug block.
func WithUpdateCacheDump() Option {
	return func(c *capture) { c.updateCache = true }
}

type capture struct {
	slotVertices *string
	updateCache  bool
}

// Capture serializes the skeleton's current pose.
func Capture(skel engine.Skeleton, meta Meta, opts ...Option) *Document {
	var c capture
	for _, opt := range opts {
		opt(&c)
	}

	active := CaptureActiveSet(skel)

	yDown := 0
	if meta.YDown {
		yDown = 1
	}
	doc := &Document{
		Mode:      meta.Mode,
		Animation: meta.Animation,
		Time:      meta.Time,
		YDown:     yDown,
	}

	bones := skel.Bones()
	doc.Bones = make([]BoneEntry, 0, len(bones))
	for i, bone := range bones {
		doc.Bones = append(doc.Bones, captureBone(i, bone))
	}

	slots := skel.Slots()
	doc.Slots = make([]SlotEntry, 0, len(slots))
	for i, slot := range slots {
		doc.Slots = append(doc.Slots, captureSlot(i, slot))
	}

	order := skel.DrawOrder()
	doc.DrawOrder = make([]int, 0, len(order))
	for _, slot := range order {
		doc.DrawOrder = append(doc.DrawOrder, slot.Data().Index())
	}

	doc.IKConstraints = make([]IKEntry, 0)
	doc.TransformConstraints = make([]TransformEntry, 0)
	doc.PathConstraints = make([]PathEntry, 0)
	doc.PhysicsConstraints = make([]PhysicsEntry, 0)
	for _, cst := range skel.Constraints() {
		captureConstraint(doc, cst, active)
	}

	if c.slotVertices != nil || c.updateCache {
		doc.Debug = &Debug{}
		if c.slotVertices != nil {
			doc.Debug.Slot = c.slotVertices
			doc.Debug.WorldVertices = captureSlotVertices(skel, *c.slotVertices)
		}
		if c.updateCache {
			labels := captureUpdateCacheLabels(skel)
			doc.Debug.UpdateCache = &labels
		}
	}

	spine2d.Logger().Debug("captured snapshot",
		"bones", len(doc.Bones), "slots", len(doc.Slots),
		"constraints", len(doc.IKConstraints)+len(doc.TransformConstraints)+
			len(doc.PathConstraints)+len(doc.PhysicsConstraints))
	return doc
}

func captureBone(i int, bone engine.Bone) BoneEntry {
	active := 0
	if bone.Active() {
		active = 1
	}
	world := bone.World()
	local := bone.Applied()
	return BoneEntry{
		I:      i,
		Name:   bone.Data().Name(),
		Active: active,
		World: WorldEntry{
			A: world.A, B: world.B, C: world.C, D: world.D,
			X: world.WorldX, Y: world.WorldY,
		},
		Local: LocalEntry{
			X: local.X, Y: local.Y, Rotation: local.Rotation,
			ScaleX: local.ScaleX, ScaleY: local.ScaleY,
			ShearX: local.ShearX, ShearY: local.ShearY,
		},
	}
}

func captureSlot(i int, slot engine.Slot) SlotEntry {
	color := slot.Color()
	dark, hasDark := slot.DarkColor()
	hasDarkFlag := 0
	if hasDark {
		hasDarkFlag = 1
	}
	entry := SlotEntry{
		I:             i,
		Name:          slot.Data().Name(),
		Color:         [4]float32{color.R, color.G, color.B, color.A},
		HasDark:       hasDarkFlag,
		DarkColor:     [4]float32{dark.R, dark.G, dark.B, dark.A},
		SequenceIndex: slot.SequenceIndex(),
	}
	if att, ok := slot.Attachment(); ok {
		entry.Attachment = &AttachmentEntry{
			Name:     att.Name(),
			Type:     int(att.Kind()),
			TypeName: att.Kind().String(),
		}
	}
	return entry
}

func captureConstraint(doc *Document, cst engine.Constraint, active ActiveSet) {
	flag := 0
	if active.Active(cst.UpdateRef()) {
		flag = 1
	}
	name := cst.Data().Name()
	switch c := cst.(type) {
	case engine.IKConstraint:
		pose := c.AppliedPose()
		doc.IKConstraints = append(doc.IKConstraints, IKEntry{
			I:             len(doc.IKConstraints),
			Name:          name,
			Mix:           pose.Mix,
			Softness:      pose.Softness,
			BendDirection: pose.BendDirection,
			Active:        flag,
		})
	case engine.TransformConstraint:
		pose := c.AppliedPose()
		doc.TransformConstraints = append(doc.TransformConstraints, TransformEntry{
			I:         len(doc.TransformConstraints),
			Name:      name,
			MixRotate: pose.MixRotate,
			MixX:      pose.MixX,
			MixY:      pose.MixY,
			MixScaleX: pose.MixScaleX,
			MixScaleY: pose.MixScaleY,
			MixShearY: pose.MixShearY,
			Active:    flag,
		})
	case engine.PathConstraint:
		pose := c.AppliedPose()
		doc.PathConstraints = append(doc.PathConstraints, PathEntry{
			I:         len(doc.PathConstraints),
			Name:      name,
			Position:  pose.Position,
			Spacing:   pose.Spacing,
			MixRotate: pose.MixRotate,
			MixX:      pose.MixX,
			MixY:      pose.MixY,
			Active:    flag,
		})
	case engine.PhysicsConstraint:
		pose := c.AppliedPose()
		sim := c.SimulationState()
		reset := 0
		if sim.Reset {
			reset = 1
		}
		doc.PhysicsConstraints = append(doc.PhysicsConstraints, PhysicsEntry{
			I:              len(doc.PhysicsConstraints),
			Name:           name,
			Inertia:        pose.Inertia,
			Strength:       pose.Strength,
			Damping:        pose.Damping,
			MassInverse:    pose.MassInverse,
			Wind:           pose.Wind,
			Gravity:        pose.Gravity,
			Mix:            pose.Mix,
			Reset:          reset,
			UX:             sim.UX,
			UY:             sim.UY,
			CX:             sim.CX,
			CY:             sim.CY,
			TX:             sim.TX,
			TY:             sim.TY,
			XOffset:        sim.XOffset,
			XVelocity:      sim.XVelocity,
			YOffset:        sim.YOffset,
			YVelocity:      sim.YVelocity,
			RotateOffset:   sim.RotateOffset,
			RotateVelocity: sim.RotateVelocity,
			ScaleOffset:    sim.ScaleOffset,
			ScaleVelocity:  sim.ScaleVelocity,
			Remaining:      sim.Remaining,
			LastTime:       sim.LastTime,
			Active:         flag,
		})
	}
}

// captureSlotVertices returns a pointer to the vertex slice, or a pointer to
// a nil slice when the slot is missing or its attachment carries no
// vertices. The latter serializes as an explicit null.
func captureSlotVertices(skel engine.Skeleton, slotName string) *[]float32 {
	var verts []float32
	slot, ok := skel.FindSlot(slotName)
	if !ok {
		return &verts
	}
	att, ok := slot.Attachment()
	if !ok || !att.Kind().HasVertices() {
		return &verts
	}
	va, ok := att.(engine.VertexAttachment)
	if !ok {
		return &verts
	}
	verts = va.WorldVertices(skel, slot)
	if verts == nil {
		verts = make([]float32, 0)
	}
	return &verts
}

func captureUpdateCacheLabels(skel engine.Skeleton) []string {
	names := make(map[engine.UpdateRef]string)
	for _, bone := range skel.Bones() {
		names[bone.UpdateRef()] = "bone " + bone.Data().Name()
	}
	for _, cst := range skel.Constraints() {
		names[cst.UpdateRef()] = cst.Kind().String() + " " + cst.Data().Name()
	}

	order := skel.UpdateOrder()
	labels := make([]string, 0, len(order))
	for _, ref := range order {
		label, ok := names[ref]
		if !ok {
			label = "<unknown>"
		}
		labels = append(labels, label)
	}
	return labels
}

// Encode writes the document as one JSON line. HTML escaping is disabled so
// names like the scenario sentinel survive byte for byte.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}
