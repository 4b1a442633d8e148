// Package scenario interprets ordered command lists against a skeleton
// instance. Commands mirror the textual surface of the oracle tools: track
// mutations, per-entry tweaks, skin and physics switches, and time steps.
// The package also implements the single-shot mode used when a bare
// animation name and absolute time are given instead of a command list.
package scenario

import "github.com/lego290/spine2d/engine"

// SentinelAnimation is the animation name reported for scenario runs, where
// no single animation describes the resulting pose.
const SentinelAnimation = "<scenario>"

// Command is one scenario command. The concrete types below form a closed
// set; a Runner applies them in order.
type Command interface{ isCommand() }

// SetSkin switches the active skin. The name "none" clears the skin. Either
// way the update-evaluation cache is rebuilt.
type SetSkin struct{ Name string }

// Physics selects the physics-stepping mode used by subsequent Step
// commands.
type Physics struct{ Mode engine.PhysicsMode }

// Mix registers an explicit mix duration between two named animations.
type Mix struct {
	From     string
	To       string
	Duration float32
}

// Set replaces the current animation on a track and becomes the target of
// subsequent entry commands.
type Set struct {
	Track     int
	Animation string
	Loop      bool
}

// Add queues an animation after the current content of a track.
type Add struct {
	Track     int
	Animation string
	Loop      bool
	Delay     float32
}

// SetEmpty replaces a track with an empty animation, fading out the current
// content.
type SetEmpty struct {
	Track       int
	MixDuration float32
}

// AddEmpty queues an empty animation after a delay.
type AddEmpty struct {
	Track       int
	MixDuration float32
	Delay       float32
}

// Step advances the animation state and the skeleton by Delta seconds and
// recomputes world transforms under the current physics mode.
type Step struct{ Delta float32 }

func (SetSkin) isCommand()  {}
func (Physics) isCommand()  {}
func (Mix) isCommand()      {}
func (Set) isCommand()      {}
func (Add) isCommand()      {}
func (SetEmpty) isCommand() {}
func (AddEmpty) isCommand() {}
func (Step) isCommand()     {}

// entryCommand is a command that mutates the most recently created track
// entry. flag is the textual command name used in diagnostics.
type entryCommand interface {
	Command
	flag() string
	apply(e engine.TrackEntry)
}

// EntryAlpha sets the current entry's alpha.
type EntryAlpha struct{ Alpha float32 }

// EntryEventThreshold sets the current entry's event mixing threshold.
type EntryEventThreshold struct{ Threshold float32 }

// EntryAlphaAttachmentThreshold sets the current entry's alpha-attachment
// mixing threshold.
type EntryAlphaAttachmentThreshold struct{ Threshold float32 }

// EntryMixAttachmentThreshold sets the current entry's mix-attachment
// mixing threshold.
type EntryMixAttachmentThreshold struct{ Threshold float32 }

// EntryMixDrawOrderThreshold sets the current entry's mix-draw-order mixing
// threshold.
type EntryMixDrawOrderThreshold struct{ Threshold float32 }

// EntryHoldPrevious sets the current entry's hold-previous flag.
type EntryHoldPrevious struct{ Hold bool }

// EntryMixBlend sets the current entry's mix-blend mode.
type EntryMixBlend struct{ Blend engine.MixBlend }

// EntryReverse sets the current entry's reverse flag.
type EntryReverse struct{ Reverse bool }

// EntryShortestRotation sets the current entry's shortest-rotation flag.
type EntryShortestRotation struct{ Shortest bool }

// EntryResetRotationDirections clears the current entry's rotation-direction
// memory.
type EntryResetRotationDirections struct{}

func (EntryAlpha) isCommand()                    {}
func (EntryEventThreshold) isCommand()           {}
func (EntryAlphaAttachmentThreshold) isCommand() {}
func (EntryMixAttachmentThreshold) isCommand()   {}
func (EntryMixDrawOrderThreshold) isCommand()    {}
func (EntryHoldPrevious) isCommand()             {}
func (EntryMixBlend) isCommand()                 {}
func (EntryReverse) isCommand()                  {}
func (EntryShortestRotation) isCommand()         {}
func (EntryResetRotationDirections) isCommand()  {}

func (EntryAlpha) flag() string                    { return "--entry-alpha" }
func (EntryEventThreshold) flag() string           { return "--entry-event-threshold" }
func (EntryAlphaAttachmentThreshold) flag() string { return "--entry-alpha-attachment-threshold" }
func (EntryMixAttachmentThreshold) flag() string   { return "--entry-mix-attachment-threshold" }
func (EntryMixDrawOrderThreshold) flag() string    { return "--entry-mix-draw-order-threshold" }
func (EntryHoldPrevious) flag() string             { return "--entry-hold-previous" }
func (EntryMixBlend) flag() string                 { return "--entry-mix-blend" }
func (EntryReverse) flag() string                  { return "--entry-reverse" }
func (EntryShortestRotation) flag() string         { return "--entry-shortest-rotation" }
func (EntryResetRotationDirections) flag() string  { return "--entry-reset-rotation-directions" }

func (c EntryAlpha) apply(e engine.TrackEntry)          { e.SetAlpha(c.Alpha) }
func (c EntryEventThreshold) apply(e engine.TrackEntry) { e.SetEventThreshold(c.Threshold) }
func (c EntryAlphaAttachmentThreshold) apply(e engine.TrackEntry) {
	e.SetAlphaAttachmentThreshold(c.Threshold)
}
func (c EntryMixAttachmentThreshold) apply(e engine.TrackEntry) {
	e.SetMixAttachmentThreshold(c.Threshold)
}
func (c EntryMixDrawOrderThreshold) apply(e engine.TrackEntry) {
	e.SetMixDrawOrderThreshold(c.Threshold)
}
func (c EntryHoldPrevious) apply(e engine.TrackEntry)     { e.SetHoldPrevious(c.Hold) }
func (c EntryMixBlend) apply(e engine.TrackEntry)         { e.SetMixBlend(c.Blend) }
func (c EntryReverse) apply(e engine.TrackEntry)          { e.SetReverse(c.Reverse) }
func (c EntryShortestRotation) apply(e engine.TrackEntry) { e.SetShortestRotation(c.Shortest) }
func (EntryResetRotationDirections) apply(e engine.TrackEntry) {
	e.ResetRotationDirections()
}

var (
	_ entryCommand = EntryAlpha{}
	_ entryCommand = EntryEventThreshold{}
	_ entryCommand = EntryAlphaAttachmentThreshold{}
	_ entryCommand = EntryMixAttachmentThreshold{}
	_ entryCommand = EntryMixDrawOrderThreshold{}
	_ entryCommand = EntryHoldPrevious{}
	_ entryCommand = EntryMixBlend{}
	_ entryCommand = EntryReverse{}
	_ entryCommand = EntryShortestRotation{}
	_ entryCommand = EntryResetRotationDirections{}
)
