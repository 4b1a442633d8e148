package scenario

import (
	"fmt"

	"github.com/lego290/spine2d"
	"github.com/lego290/spine2d/engine"
)

// Runner applies scenario commands to one skeleton instance, tracking the
// current physics mode, the most recently created track entry, and the total
// stepped time.
type Runner struct {
	inst  engine.Instance
	skel  engine.Skeleton
	state engine.AnimationState

	physics   engine.PhysicsMode
	elapsed   float32
	lastEntry engine.TrackEntry
}

// Option configures a Runner.
type Option func(*Runner)

// WithPhysicsMode sets the initial physics-stepping mode. The default is
// PhysicsNone; a Physics command overrides it.
func WithPhysicsMode(mode engine.PhysicsMode) Option {
	return func(r *Runner) { r.physics = mode }
}

// NewRunner binds a runner to an instance.
func NewRunner(inst engine.Instance, opts ...Option) *Runner {
	r := &Runner{
		inst:    inst,
		skel:    inst.Skeleton(),
		state:   inst.State(),
		physics: engine.PhysicsNone,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Elapsed is the sum of all Step deltas applied so far.
func (r *Runner) Elapsed() float32 { return r.elapsed }

// PhysicsMode is the physics-stepping mode currently in effect.
func (r *Runner) PhysicsMode() engine.PhysicsMode { return r.physics }

// Run resets the skeleton to the setup pose and applies the commands in
// order, stopping at the first failure.
func (r *Runner) Run(cmds []Command) error {
	r.skel.SetupPose()
	for _, cmd := range cmds {
		if err := r.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Apply executes a single command.
func (r *Runner) Apply(cmd Command) error {
	log := spine2d.Logger()
	switch c := cmd.(type) {
	case SetSkin:
		log.Debug("set skin", "name", c.Name)
		if c.Name == "none" {
			r.skel.ClearSkin()
		} else if err := r.skel.SetSkin(c.Name); err != nil {
			return err
		}
		r.skel.UpdateCache()
	case Physics:
		r.physics = c.Mode
	case Mix:
		return r.inst.SetMix(c.From, c.To, c.Duration)
	case Set:
		entry, err := r.state.SetAnimation(c.Track, c.Animation, c.Loop)
		if err != nil {
			return err
		}
		r.lastEntry = entry
	case Add:
		entry, err := r.state.AddAnimation(c.Track, c.Animation, c.Loop, c.Delay)
		if err != nil {
			return err
		}
		r.lastEntry = entry
	case SetEmpty:
		r.lastEntry = r.state.SetEmptyAnimation(c.Track, c.MixDuration)
	case AddEmpty:
		r.lastEntry = r.state.AddEmptyAnimation(c.Track, c.MixDuration, c.Delay)
	case Step:
		log.Debug("step", "dt", c.Delta, "physics", r.physics)
		r.state.Update(c.Delta)
		r.state.Apply(r.skel)
		r.skel.Update(c.Delta)
		r.skel.UpdateWorldTransform(r.physics)
		r.elapsed += c.Delta
	default:
		ec, ok := cmd.(entryCommand)
		if !ok {
			return fmt.Errorf("unknown command %T", cmd)
		}
		if r.lastEntry == nil {
			return fmt.Errorf("%s requires a preceding --set/--add command", ec.flag())
		}
		ec.apply(r.lastEntry)
	}
	return nil
}

// SingleShot is the simpler one-animation mode: set an animation on track 0,
// jump straight to an absolute time, and finalize the pose once.
type SingleShot struct {
	Animation string
	Time      float32
	Loop      bool

	// Skin, when HasSkin is set, is applied before the animation. The name
	// "none" clears the skin.
	Skin    string
	HasSkin bool

	Physics engine.PhysicsMode
}

// Run executes the single shot against an instance and returns the elapsed
// time, which equals the requested absolute time.
func (s SingleShot) Run(inst engine.Instance) (float32, error) {
	skel := inst.Skeleton()
	state := inst.State()

	skel.SetupPose()

	if s.HasSkin {
		if s.Skin == "none" {
			skel.ClearSkin()
		} else if err := skel.SetSkin(s.Skin); err != nil {
			return 0, err
		}
		skel.SetupPoseSlots()
		skel.UpdateCache()
	}

	if _, err := state.SetAnimation(0, s.Animation, s.Loop); err != nil {
		return 0, err
	}
	state.Update(s.Time)
	state.Apply(skel)
	skel.Update(s.Time)
	skel.UpdateWorldTransform(s.Physics)
	return s.Time, nil
}
