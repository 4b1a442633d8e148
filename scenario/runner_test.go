package scenario

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lego290/spine2d/engine"
	"github.com/lego290/spine2d/internal/enginetest"
)

func newWorld() *enginetest.World {
	w := &enginetest.World{Skins: map[string]bool{"battle": true}}
	w.AddAnimation("walk")
	w.AddAnimation("run")
	return w
}

func TestRunnerCallSequence(t *testing.T) {
	w := newWorld()
	r := NewRunner(enginetest.Start(w))

	cmds, err := Parse([]string{
		"--set-skin", "battle",
		"--mix", "walk", "run", "0.2",
		"--set", "0", "walk", "1",
		"--entry-alpha", "0.5",
		"--physics", "update",
		"--step", "0.25",
		"--step", "0.25",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := r.Run(cmds); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"skeleton.setupPose",
		"skeleton.setSkin battle",
		"skeleton.updateCache",
		"instance.setMix walk run 0.2",
		"state.setAnimation 0 walk true",
		"entry.setAlpha 0.5",
		"state.update 0.25",
		"state.apply",
		"skeleton.update 0.25",
		"skeleton.updateWorldTransform update",
		"state.update 0.25",
		"state.apply",
		"skeleton.update 0.25",
		"skeleton.updateWorldTransform update",
	}
	if !reflect.DeepEqual(w.Calls, want) {
		t.Errorf("call sequence:\ngot  %q\nwant %q", w.Calls, want)
	}
	if got := r.Elapsed(); got != 0.5 {
		t.Errorf("Elapsed() = %v, want 0.5", got)
	}
	if got := r.PhysicsMode(); got != engine.PhysicsUpdate {
		t.Errorf("PhysicsMode() = %v, want update", got)
	}
}

func TestRunnerClearSkin(t *testing.T) {
	w := newWorld()
	r := NewRunner(enginetest.Start(w))

	if err := r.Run([]Command{SetSkin{Name: "none"}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"skeleton.setupPose", "skeleton.clearSkin", "skeleton.updateCache"}
	if !reflect.DeepEqual(w.Calls, want) {
		t.Errorf("call sequence: got %q, want %q", w.Calls, want)
	}
}

func TestRunnerEntryWithoutTrack(t *testing.T) {
	tests := []struct {
		cmd  Command
		flag string
	}{
		{EntryAlpha{Alpha: 1}, "--entry-alpha"},
		{EntryHoldPrevious{Hold: true}, "--entry-hold-previous"},
		{EntryResetRotationDirections{}, "--entry-reset-rotation-directions"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			w := newWorld()
			r := NewRunner(enginetest.Start(w))
			err := r.Run([]Command{tt.cmd})
			if err == nil {
				t.Fatal("expected error")
			}
			want := tt.flag + " requires a preceding --set/--add command"
			if err.Error() != want {
				t.Errorf("error = %q, want %q", err, want)
			}
			// The entry must not have been touched.
			if len(w.Entries) != 0 {
				t.Errorf("entries created: %d", len(w.Entries))
			}
		})
	}
}

func TestRunnerEmptyAnimationsTargetEntryCommands(t *testing.T) {
	w := newWorld()
	r := NewRunner(enginetest.Start(w))

	err := r.Run([]Command{
		SetEmpty{Track: 0, MixDuration: 0.1},
		EntryHoldPrevious{Hold: true},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(w.Entries) != 1 || !w.Entries[0].HoldPrevious {
		t.Errorf("hold-previous not applied to the empty-animation entry")
	}
}

func TestRunnerUnknownAnimation(t *testing.T) {
	w := newWorld()
	r := NewRunner(enginetest.Start(w))

	err := r.Run([]Command{Set{Track: 0, Animation: "fly", Loop: true}})
	if err == nil || !strings.Contains(err.Error(), "fly") {
		t.Errorf("error = %v, want animation-not-found for fly", err)
	}
}

func TestRunnerUnknownSkin(t *testing.T) {
	w := newWorld()
	r := NewRunner(enginetest.Start(w))

	err := r.Run([]Command{SetSkin{Name: "casual"}})
	if err == nil || !strings.Contains(err.Error(), "casual") {
		t.Errorf("error = %v, want skin-not-found for casual", err)
	}
}

func TestSingleShot(t *testing.T) {
	w := newWorld()

	elapsed, err := SingleShot{Animation: "walk", Time: 1.5, Loop: true}.Run(enginetest.Start(w))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if elapsed != 1.5 {
		t.Errorf("elapsed = %v, want 1.5", elapsed)
	}
	want := []string{
		"skeleton.setupPose",
		"state.setAnimation 0 walk true",
		"state.update 1.5",
		"state.apply",
		"skeleton.update 1.5",
		"skeleton.updateWorldTransform none",
	}
	if !reflect.DeepEqual(w.Calls, want) {
		t.Errorf("call sequence:\ngot  %q\nwant %q", w.Calls, want)
	}
}

func TestSingleShotWithSkin(t *testing.T) {
	w := newWorld()

	_, err := SingleShot{
		Animation: "run",
		Time:      0.5,
		Loop:      false,
		Skin:      "battle",
		HasSkin:   true,
		Physics:   engine.PhysicsPoseMode,
	}.Run(enginetest.Start(w))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{
		"skeleton.setupPose",
		"skeleton.setSkin battle",
		"skeleton.setupPoseSlots",
		"skeleton.updateCache",
		"state.setAnimation 0 run false",
		"state.update 0.5",
		"state.apply",
		"skeleton.update 0.5",
		"skeleton.updateWorldTransform pose",
	}
	if !reflect.DeepEqual(w.Calls, want) {
		t.Errorf("call sequence:\ngot  %q\nwant %q", w.Calls, want)
	}
}
