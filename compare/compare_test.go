package compare

import (
	"strings"
	"testing"
)

const refDoc = `{
	"mode":"legacy","animation":"idle","time":0,"yDown":0,
	"bones":[
		{"i":0,"name":"root","active":1,
		 "world":{"a":1,"b":0,"c":0,"d":1,"x":0,"y":0},
		 "applied":{"x":0,"y":0,"rotation":0,"scaleX":1,"scaleY":1,"shearX":0,"shearY":0}},
		{"i":1,"name":"arm","active":0,
		 "world":{"a":1,"b":0,"c":0,"d":1,"x":50,"y":0},
		 "applied":{"x":50,"y":0,"rotation":0,"scaleX":1,"scaleY":1,"shearX":0,"shearY":0}}
	],
	"slots":[
		{"i":0,"name":"front","color":[1,1,1,1],"hasDark":0,"darkColor":[0,0,0,0],
		 "sequenceIndex":-1,"attachment":{"name":"body","type":0,"typeName":"region"}}
	],
	"drawOrder":[0],
	"ikConstraints":[{"i":0,"name":"aim","mix":1,"softness":0,"bendDirection":1,"active":1}],
	"transformConstraints":[],
	"pathConstraints":[]
}`

func TestPoseIdentical(t *testing.T) {
	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(refDoc), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	report := out.String()
	for _, want := range []string{
		"diff >= 0.001: 0/2\n",
		"\nslot diff >= 0.001: 0/1\n",
		"\ndrawOrder: ok\n",
		"\nikConstraints diff >= 0.001: 0/1\n",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("missing %q in report:\n%s", want, report)
		}
	}
	if strings.Contains(report, "missing") {
		t.Errorf("nothing should be missing:\n%s", report)
	}
}

func TestPoseBoneDrift(t *testing.T) {
	cand := strings.Replace(refDoc, `"world":{"a":1,"b":0,"c":0,"d":1,"x":0,"y":0}`,
		`"world":{"a":1,"b":0,"c":0,"d":1,"x":0.5,"y":0}`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	report := out.String()
	if !strings.Contains(report, "diff >= 0.001: 1/2\n") {
		t.Errorf("drifted bone not counted:\n%s", report)
	}
	if !strings.Contains(report, "0.5\troot\n") {
		t.Errorf("worst offender line missing:\n%s", report)
	}
}

func TestPoseInactiveBonesSkipTransforms(t *testing.T) {
	// The inactive arm bone differs wildly in world x, but both sides agree
	// it is inactive, so the difference must not be reported.
	cand := strings.Replace(refDoc, `"world":{"a":1,"b":0,"c":0,"d":1,"x":50,"y":0}`,
		`"world":{"a":1,"b":0,"c":0,"d":1,"x":9000,"y":0}`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	if !strings.Contains(out.String(), "diff >= 0.001: 0/2\n") {
		t.Errorf("inactive bone transforms must not count:\n%s", out.String())
	}
}

func TestPoseActiveFlagMismatch(t *testing.T) {
	cand := strings.Replace(refDoc, `{"i":1,"name":"arm","active":0,`,
		`{"i":1,"name":"arm","active":1,`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	if !strings.Contains(out.String(), "1\tarm\n") {
		t.Errorf("active-flag mismatch not reported:\n%s", out.String())
	}
}

func TestPoseMissingBone(t *testing.T) {
	cand := `{"bones":[{"i":0,"name":"root","active":1,
		"world":{"a":1,"b":0,"c":0,"d":1,"x":0,"y":0},
		"applied":{"x":0,"y":0,"rotation":0,"scaleX":1,"scaleY":1,"shearX":0,"shearY":0}}]}`

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	report := out.String()
	if !strings.Contains(report, "missing bones: 1\n  arm\n") {
		t.Errorf("missing bone not reported:\n%s", report)
	}
}

func TestPoseDrawOrderMismatch(t *testing.T) {
	cand := strings.Replace(refDoc, `"drawOrder":[0]`, `"drawOrder":[0,1]`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	report := out.String()
	if !strings.Contains(report, "\ndrawOrder: mismatch\n  ref:  [0]\n  cand: [0,1]\n") {
		t.Errorf("draw order mismatch not reported:\n%s", report)
	}
}

func TestPoseSlotAttachmentDiff(t *testing.T) {
	cand := strings.Replace(refDoc, `"attachment":{"name":"body","type":0,"typeName":"region"}`,
		`"attachment":null`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	if !strings.Contains(out.String(), "\nslot diff >= 0.001: 1/1\n1\tfront\n") {
		t.Errorf("attachment mismatch not reported:\n%s", out.String())
	}
}

func TestPoseBoneDetail(t *testing.T) {
	cand := strings.Replace(refDoc, `"applied":{"x":0,"y":0,"rotation":0,"scaleX":1,"scaleY":1,"shearX":0,"shearY":0}},
		{"i":1`, `"applied":{"x":0,"y":0,"rotation":30,"scaleX":1,"scaleY":1,"shearX":0,"shearY":0}},
		{"i":1`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{Bone: "root"}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	report := out.String()
	if !strings.Contains(report, "\n--bone root: per-field diffs\n") {
		t.Errorf("per-field section missing:\n%s", report)
	}
	if !strings.Contains(report, "  applied.rotation\tdiff=30\tref=0\tcand=30\n") {
		t.Errorf("rotation diff line missing:\n%s", report)
	}
	if !strings.Contains(report, "\n--- bone ---\nname: root\n") {
		t.Errorf("final bone dump missing:\n%s", report)
	}
}

func TestPoseEpsAndTop(t *testing.T) {
	cand := strings.Replace(refDoc, `"world":{"a":1,"b":0,"c":0,"d":1,"x":0,"y":0}`,
		`"world":{"a":1,"b":0,"c":0,"d":1,"x":0.5,"y":0}`, 1)

	var out strings.Builder
	if err := Pose(&out, []byte(refDoc), []byte(cand), Options{Eps: 1, Top: 5}); err != nil {
		t.Fatalf("Pose: %v", err)
	}
	if !strings.Contains(out.String(), "diff >= 1: 0/2\n") {
		t.Errorf("eps not honored:\n%s", out.String())
	}
}
