// Package introspect reports the static configuration baked into skeleton
// data: constraint counts and setup poses, and per-animation timeline
// bindings with out-of-range index checks. It never instantiates a skeleton
// or advances time.
package introspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lego290/spine2d"
	"github.com/lego290/spine2d/engine"
)

// DumpConstraints writes the constraint census: total and per-kind counts,
// then one detail line per constraint in definition order. Physics
// constraints are counted but carry no detail line; their configuration is
// a runtime concern reported by the pose snapshot.
func DumpConstraints(w io.Writer, data engine.SkeletonData) error {
	constraints := data.Constraints()

	var counts [5]int
	for _, c := range constraints {
		kind := c.Kind()
		if kind >= engine.ConstraintIK && kind <= engine.ConstraintSlider {
			counts[kind]++
		}
	}

	p := printer{w: w}
	p.printf("Constraints total: %d\n", len(constraints))
	p.printf("IK constraints: %d\n", counts[engine.ConstraintIK])
	p.printf("Transform constraints: %d\n", counts[engine.ConstraintTransform])
	p.printf("Path constraints: %d\n", counts[engine.ConstraintPath])
	p.printf("Physics constraints: %d\n", counts[engine.ConstraintPhysics])
	p.printf("Slider constraints: %d\n", counts[engine.ConstraintSlider])

	for _, c := range constraints {
		switch cd := c.(type) {
		case engine.IKConstraintData:
			setup := cd.SetupPose()
			p.printf("  [ik] %s mix=%s softness=%s bend=%d compress=%d stretch=%d uniform=%d skin=%d\n",
				cd.Name(), ftoa(setup.Mix), ftoa(setup.Softness), setup.BendDirection,
				b2i(setup.Compress), b2i(setup.Stretch), b2i(cd.Uniform()), b2i(cd.SkinRequired()))
		case engine.TransformConstraintData:
			setup := cd.SetupPose()
			p.printf("  [transform] %s mixRotate=%s mixX=%s mixY=%s mixScaleX=%s mixScaleY=%s mixShearY=%s localSource=%d localTarget=%d additive=%d clamp=%d skin=%d\n",
				cd.Name(), ftoa(setup.MixRotate), ftoa(setup.MixX), ftoa(setup.MixY),
				ftoa(setup.MixScaleX), ftoa(setup.MixScaleY), ftoa(setup.MixShearY),
				b2i(cd.LocalSource()), b2i(cd.LocalTarget()), b2i(cd.Additive()), b2i(cd.Clamp()),
				b2i(cd.SkinRequired()))
		case engine.PathConstraintData:
			setup := cd.SetupPose()
			p.printf("  [path] %s position=%s spacing=%s mixRotate=%s mixX=%s mixY=%s positionMode=%d spacingMode=%d rotateMode=%d skin=%d\n",
				cd.Name(), ftoa(setup.Position), ftoa(setup.Spacing), ftoa(setup.MixRotate),
				ftoa(setup.MixX), ftoa(setup.MixY),
				int(cd.PositionMode()), int(cd.SpacingMode()), int(cd.RotateMode()),
				b2i(cd.SkinRequired()))
		case engine.SliderConstraintData:
			setup := cd.SetupPose()
			animName := "<null>"
			if anim, ok := cd.Animation(); ok {
				animName = anim.Name()
			}
			boneName := "<none>"
			if bone, ok := cd.Bone(); ok {
				boneName = bone.Name()
			}
			p.printf("  [slider] %s animation=%s time=%s mix=%s loop=%d additive=%d bone=%s property=%d scale=%s offset=%s local=%d skin=%d\n",
				cd.Name(), animName, ftoa(setup.Time), ftoa(setup.Mix),
				b2i(cd.Loop()), b2i(cd.Additive()), boneName, b2i(cd.HasProperty()),
				ftoa(cd.Scale()), ftoa(cd.Offset()), b2i(cd.Local()), b2i(cd.SkinRequired()))
		}
	}
	return p.err
}

// DumpAnimation writes one line per timeline of the named animation: its
// concrete class and the slot, bone, or constraint index it binds to.
// Indices outside the data's valid range are annotated inline; they are
// authored externally and can be stale relative to the data.
func DumpAnimation(w io.Writer, data engine.SkeletonData, name string) error {
	anim, ok := data.FindAnimation(name)
	if !ok {
		return fmt.Errorf("Missing animation: %s", name)
	}

	boneCount := len(data.Bones())
	slotCount := len(data.Slots())
	constraintCount := len(data.Constraints())

	timelines := anim.Timelines()
	p := printer{w: w}
	p.printf("Animation: %s\n", anim.Name())
	p.printf("Timelines: %d\n", len(timelines))
	for i, tl := range timelines {
		p.printf("  [%d] %s", i, tl.ClassName())
		switch tl.Target() {
		case engine.TargetSlot:
			idx, ok := tl.TargetIndex()
			if !ok {
				p.printf(" slotIndex=<unavailable>")
				break
			}
			p.printf(" slotIndex=%d", idx)
			if idx < 0 || idx >= slotCount {
				p.oob(tl.ClassName(), "slot", idx, slotCount)
			}
		case engine.TargetBone:
			idx, _ := tl.TargetIndex()
			p.printf(" boneIndex=%d", idx)
			if idx < 0 || idx >= boneCount {
				p.oob(tl.ClassName(), "bone", idx, boneCount)
			}
		case engine.TargetConstraint:
			idx, _ := tl.TargetIndex()
			p.printf(" constraintIndex=%d", idx)
			// Index -1 is a valid "all constraints" binding.
			if idx < -1 || idx >= constraintCount {
				p.oob(tl.ClassName(), "constraint", idx, constraintCount)
			}
		}
		p.printf("\n")
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) oob(class, target string, idx, count int) {
	p.printf(" (OOB!)")
	spine2d.Logger().Warn("out-of-range timeline binding",
		"timeline", class, "target", target, "index", idx, "count", count)
}

// ftoa formats a float with just enough digits to round-trip at single
// precision, matching the JSON oracles.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
