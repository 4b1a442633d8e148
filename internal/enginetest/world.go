package enginetest

import (
	"errors"
	"fmt"

	"github.com/lego290/spine2d/engine"
)

// Driver exposes a World through the engine.Driver contract.
type Driver struct{ W *World }

var _ engine.Driver = (*Driver)(nil)

// NewDriver wraps a scripted world as a driver.
func NewDriver(w *World) *Driver { return &Driver{W: w} }

func (d *Driver) SetYDown(down bool) {
	d.W.YDown = down
	d.W.log("driver.setYDown %v", down)
}

func (d *Driver) LoadAtlas(text string) (engine.Atlas, error) {
	if d.W.AtlasErr != "" {
		return nil, errors.New(d.W.AtlasErr)
	}
	d.W.log("driver.loadAtlas %d bytes", len(text))
	return &Atlas{w: d.W}, nil
}

func (d *Driver) LoadSkeletonJSON(_ engine.Atlas, text string, path string) (engine.SkeletonData, error) {
	if d.W.SkeletonErr != "" {
		return nil, errors.New(d.W.SkeletonErr)
	}
	d.W.log("driver.loadSkeletonJSON %s %d bytes", path, len(text))
	return &SkeletonData{w: d.W}, nil
}

func (d *Driver) LoadSkeletonBinary(_ engine.Atlas, data []byte, path string) (engine.SkeletonData, error) {
	if d.W.SkeletonErr != "" {
		return nil, errors.New(d.W.SkeletonErr)
	}
	d.W.log("driver.loadSkeletonBinary %s %d bytes", path, len(data))
	return &SkeletonData{w: d.W}, nil
}

func (d *Driver) NewInstance(data engine.SkeletonData) (engine.Instance, error) {
	sd, ok := data.(*SkeletonData)
	if !ok || sd.w != d.W {
		return nil, errors.New("enginetest: foreign skeleton data")
	}
	d.W.log("driver.newInstance")
	return &Instance{w: d.W}, nil
}

// Atlas fakes a loaded atlas with one page per PMAPages entry.
type Atlas struct{ w *World }

var _ engine.Atlas = (*Atlas)(nil)

func (a *Atlas) Pages() []engine.AtlasPage {
	out := make([]engine.AtlasPage, len(a.w.PMAPages))
	for i, pma := range a.w.PMAPages {
		out[i] = page{name: fmt.Sprintf("page%d", i), pma: pma}
	}
	return out
}

type page struct {
	name string
	pma  bool
}

func (p page) Name() string             { return p.name }
func (p page) PremultipliedAlpha() bool { return p.pma }

// SkeletonData fakes the immutable skeleton data of a world.
type SkeletonData struct{ w *World }

var _ engine.SkeletonData = (*SkeletonData)(nil)

// Data returns the world's skeleton data handle directly, for tests that
// bypass the driver.
func (w *World) Data() *SkeletonData { return &SkeletonData{w: w} }

func (d *SkeletonData) Bones() []engine.BoneData {
	out := make([]engine.BoneData, len(d.w.Bones))
	for i, b := range d.w.Bones {
		out[i] = b
	}
	return out
}

func (d *SkeletonData) Slots() []engine.SlotData {
	out := make([]engine.SlotData, len(d.w.Slots))
	for i, s := range d.w.Slots {
		out[i] = s
	}
	return out
}

func (d *SkeletonData) Constraints() []engine.ConstraintData {
	out := make([]engine.ConstraintData, len(d.w.Constraints))
	for i, c := range d.w.Constraints {
		out[i] = c.DataView()
	}
	return out
}

func (d *SkeletonData) FindAnimation(name string) (engine.AnimationData, bool) {
	a, ok := d.w.Animations[name]
	if !ok {
		return nil, false
	}
	return a, true
}

// Instance fakes one skeleton + animation-state pair.
type Instance struct {
	w      *World
	closed bool
}

var _ engine.Instance = (*Instance)(nil)

// Start builds an instance over the world without going through the driver,
// for tests that need only the session surface.
func Start(w *World) *Instance { return &Instance{w: w} }

func (in *Instance) Skeleton() engine.Skeleton    { return &Skeleton{w: in.w} }
func (in *Instance) State() engine.AnimationState { return &State{w: in.w} }

func (in *Instance) SetMix(from, to string, duration float32) error {
	if in.w.Animations != nil {
		if _, ok := in.w.Animations[from]; !ok {
			return fmt.Errorf("animation not found: %s", from)
		}
		if _, ok := in.w.Animations[to]; !ok {
			return fmt.Errorf("animation not found: %s", to)
		}
	}
	in.w.log("instance.setMix %s %s %v", from, to, duration)
	return nil
}

func (in *Instance) Render() engine.RenderCommand {
	in.w.log("instance.render")
	var head, tail *renderCommand
	for i := range in.w.Draws {
		rc := &renderCommand{draw: &in.w.Draws[i]}
		if head == nil {
			head = rc
		} else {
			tail.next = rc
		}
		tail = rc
	}
	if head == nil {
		return nil
	}
	return head
}

func (in *Instance) Close() error {
	in.closed = true
	in.w.log("instance.close")
	return nil
}

// Skeleton fakes the mutable skeleton surface over a world.
type Skeleton struct{ w *World }

var _ engine.Skeleton = (*Skeleton)(nil)

func (s *Skeleton) Data() engine.SkeletonData { return &SkeletonData{w: s.w} }

func (s *Skeleton) SetupPose()      { s.w.log("skeleton.setupPose") }
func (s *Skeleton) SetupPoseSlots() { s.w.log("skeleton.setupPoseSlots") }

func (s *Skeleton) SetSkin(name string) error {
	if s.w.Skins != nil && !s.w.Skins[name] {
		return fmt.Errorf("skin not found: %s", name)
	}
	s.w.log("skeleton.setSkin %s", name)
	return nil
}

func (s *Skeleton) ClearSkin()   { s.w.log("skeleton.clearSkin") }
func (s *Skeleton) UpdateCache() { s.w.log("skeleton.updateCache") }

func (s *Skeleton) Bones() []engine.Bone {
	out := make([]engine.Bone, len(s.w.Bones))
	for i, b := range s.w.Bones {
		out[i] = b
	}
	return out
}

func (s *Skeleton) Slots() []engine.Slot {
	out := make([]engine.Slot, len(s.w.Slots))
	for i, sl := range s.w.Slots {
		out[i] = sl
	}
	return out
}

func (s *Skeleton) FindSlot(name string) (engine.Slot, bool) {
	for _, sl := range s.w.Slots {
		if sl.name == name {
			return sl, true
		}
	}
	return nil, false
}

func (s *Skeleton) DrawOrder() []engine.Slot {
	if s.w.DrawOrderIndexes == nil {
		return s.Slots()
	}
	out := make([]engine.Slot, len(s.w.DrawOrderIndexes))
	for i, idx := range s.w.DrawOrderIndexes {
		out[i] = s.w.Slots[idx]
	}
	return out
}

func (s *Skeleton) Constraints() []engine.Constraint {
	out := make([]engine.Constraint, len(s.w.Constraints))
	for i, c := range s.w.Constraints {
		out[i] = c.View()
	}
	return out
}

func (s *Skeleton) UpdateOrder() []engine.UpdateRef {
	var out []engine.UpdateRef
	for _, b := range s.w.Bones {
		if !s.w.ExcludedFromUpdate[b.UpdateRef()] {
			out = append(out, b.UpdateRef())
		}
	}
	for _, c := range s.w.Constraints {
		if !s.w.ExcludedFromUpdate[engine.UpdateRef(c)] {
			out = append(out, engine.UpdateRef(c))
		}
	}
	return out
}

func (s *Skeleton) Update(dt float32) { s.w.log("skeleton.update %v", dt) }

func (s *Skeleton) UpdateWorldTransform(mode engine.PhysicsMode) {
	s.w.log("skeleton.updateWorldTransform %s", mode)
}

// State fakes the animation-state machine over a world.
type State struct{ w *World }

var _ engine.AnimationState = (*State)(nil)

func (st *State) SetAnimation(track int, name string, loop bool) (engine.TrackEntry, error) {
	if st.w.Animations != nil {
		if _, ok := st.w.Animations[name]; !ok {
			return nil, fmt.Errorf("animation not found: %s", name)
		}
	}
	st.w.log("state.setAnimation %d %s %v", track, name, loop)
	return st.newEntry(), nil
}

func (st *State) AddAnimation(track int, name string, loop bool, delay float32) (engine.TrackEntry, error) {
	if st.w.Animations != nil {
		if _, ok := st.w.Animations[name]; !ok {
			return nil, fmt.Errorf("animation not found: %s", name)
		}
	}
	st.w.log("state.addAnimation %d %s %v %v", track, name, loop, delay)
	return st.newEntry(), nil
}

func (st *State) SetEmptyAnimation(track int, mixDuration float32) engine.TrackEntry {
	st.w.log("state.setEmptyAnimation %d %v", track, mixDuration)
	return st.newEntry()
}

func (st *State) AddEmptyAnimation(track int, mixDuration, delay float32) engine.TrackEntry {
	st.w.log("state.addEmptyAnimation %d %v %v", track, mixDuration, delay)
	return st.newEntry()
}

func (st *State) Update(dt float32) { st.w.log("state.update %v", dt) }

func (st *State) Apply(engine.Skeleton) { st.w.log("state.apply") }

func (st *State) newEntry() *Entry {
	e := &Entry{w: st.w}
	st.w.Entries = append(st.w.Entries, e)
	return e
}

// Entry records every track-entry mutation.
type Entry struct {
	w *World

	Alpha                    float32
	EventThreshold           float32
	AlphaAttachmentThreshold float32
	MixAttachmentThreshold   float32
	MixDrawOrderThreshold    float32
	HoldPrevious             bool
	MixBlendValue            engine.MixBlend
	Reverse                  bool
	ShortestRotation         bool
	RotationDirectionsReset  bool
}

var _ engine.TrackEntry = (*Entry)(nil)

func (e *Entry) SetAlpha(v float32) {
	e.Alpha = v
	e.w.log("entry.setAlpha %v", v)
}

func (e *Entry) SetEventThreshold(v float32) {
	e.EventThreshold = v
	e.w.log("entry.setEventThreshold %v", v)
}

func (e *Entry) SetAlphaAttachmentThreshold(v float32) {
	e.AlphaAttachmentThreshold = v
	e.w.log("entry.setAlphaAttachmentThreshold %v", v)
}

func (e *Entry) SetMixAttachmentThreshold(v float32) {
	e.MixAttachmentThreshold = v
	e.w.log("entry.setMixAttachmentThreshold %v", v)
}

func (e *Entry) SetMixDrawOrderThreshold(v float32) {
	e.MixDrawOrderThreshold = v
	e.w.log("entry.setMixDrawOrderThreshold %v", v)
}

func (e *Entry) SetHoldPrevious(v bool) {
	e.HoldPrevious = v
	e.w.log("entry.setHoldPrevious %v", v)
}

func (e *Entry) SetMixBlend(v engine.MixBlend) {
	e.MixBlendValue = v
	e.w.log("entry.setMixBlend %s", v)
}

func (e *Entry) SetReverse(v bool) {
	e.Reverse = v
	e.w.log("entry.setReverse %v", v)
}

func (e *Entry) SetShortestRotation(v bool) {
	e.ShortestRotation = v
	e.w.log("entry.setShortestRotation %v", v)
}

func (e *Entry) ResetRotationDirections() {
	e.RotationDirectionsReset = true
	e.w.log("entry.resetRotationDirections")
}

// renderCommand adapts one canned Draw to the linked-list contract.
type renderCommand struct {
	draw *Draw
	next *renderCommand
}

var _ engine.RenderCommand = (*renderCommand)(nil)

func (c *renderCommand) Texture() int                { return c.draw.Page }
func (c *renderCommand) BlendMode() engine.BlendMode { return c.draw.Blend }
func (c *renderCommand) Positions() []float32        { return c.draw.Positions }
func (c *renderCommand) UVs() []float32              { return c.draw.UVs }
func (c *renderCommand) Colors() []uint32            { return c.draw.Colors }
func (c *renderCommand) DarkColors() []uint32        { return c.draw.DarkColors }
func (c *renderCommand) Indices() []uint16           { return c.draw.Indices }

func (c *renderCommand) Next() engine.RenderCommand {
	if c.next == nil {
		return nil
	}
	return c.next
}
