// Package compare diffs two pose snapshot documents within a numeric
// tolerance. Bones, slots, and constraints are matched by name so the two
// documents may come from different implementations with different internal
// ordering; the draw order is compared exactly.
package compare

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// Options tunes a comparison.
type Options struct {
	// Eps is the tolerance below which a numeric difference is ignored.
	// Zero means the default of 1e-3.
	Eps float64

	// Top caps the number of worst offenders listed per section. Zero means
	// the default of 20.
	Top int

	// Bone, when set, adds a per-field breakdown for one named bone.
	Bone string
}

func (o Options) withDefaults() Options {
	if o.Eps == 0 {
		o.Eps = 1e-3
	}
	if o.Top == 0 {
		o.Top = 20
	}
	return o
}

// Pose compares a reference snapshot against a candidate one and writes a
// human-readable report. The report is purely informational; parity policy
// is the caller's call.
func Pose(w io.Writer, ref, cand []byte, opts Options) error {
	opts = opts.withDefaults()
	r := parsePose(ref)
	c := parsePose(cand)
	p := printer{w: w}

	compareBones(&p, r, c, opts)
	compareSlots(&p, r, c, opts)
	compareDrawOrder(&p, r, c)
	compareNamedMap(&p, "ikConstraints", r.ik, c.ik, opts,
		[]string{"mix", "softness", "bendDirection", "active"})
	compareNamedMap(&p, "transformConstraints", r.transform, c.transform, opts,
		[]string{"mixRotate", "mixX", "mixY", "mixScaleX", "mixScaleY", "mixShearY", "active"})
	compareNamedMap(&p, "pathConstraints", r.path, c.path, opts,
		[]string{"position", "spacing", "mixRotate", "mixX", "mixY", "active"})
	if opts.Bone != "" {
		dumpBone(&p, r, c, opts.Bone)
	}
	return p.err
}

type pose struct {
	root      gjson.Result
	bones     map[string]gjson.Result
	slots     map[string]gjson.Result
	ik        map[string]gjson.Result
	transform map[string]gjson.Result
	path      map[string]gjson.Result
}

func parsePose(data []byte) pose {
	root := gjson.ParseBytes(data)
	return pose{
		root:      root,
		bones:     namedMap(root, "bones"),
		slots:     namedMap(root, "slots"),
		ik:        namedMap(root, "ikConstraints"),
		transform: namedMap(root, "transformConstraints"),
		path:      namedMap(root, "pathConstraints"),
	}
}

func namedMap(root gjson.Result, key string) map[string]gjson.Result {
	out := make(map[string]gjson.Result)
	for _, item := range root.Get(key).Array() {
		name := item.Get("name")
		if name.Type != gjson.String {
			continue
		}
		out[name.Str] = item
	}
	return out
}

func compareBones(p *printer, r, c pose, opts Options) {
	names := unionNames(r.bones, c.bones)
	printMissing(p, "missing bones", names, r.bones, c.bones)

	worst := collectWorst(names, opts.Eps, func(n string) map[string]float64 {
		return diffBone(r.bones[n], c.bones[n])
	}, r.bones, c.bones)
	p.printf("diff >= %s: %d/%d\n", ftoa(opts.Eps), len(worst), len(names))
	printWorst(p, worst, opts.Top)

	if opts.Bone != "" {
		n := opts.Bone
		rb, rok := r.bones[n]
		cb, cok := c.bones[n]
		if !rok || !cok {
			p.printf("\n--bone %s: missing in one side\n", n)
			return
		}
		p.printf("\n--bone %s: per-field diffs\n", n)
		diffs := diffBone(rb, cb)
		keys := make([]string, 0, len(diffs))
		for k := range diffs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			d := diffs[k]
			if d < opts.Eps {
				continue
			}
			p.printf("  %s\tdiff=%.6g\tref=%s\tcand=%s\n", k, d, rawField(rb, k), rawField(cb, k))
		}
	}
}

// diffBone compares the active flags and, for bones active on both sides,
// the world matrix and applied pose. Inactive bones are not updated by the
// runtime, so their transforms carry no parity signal.
func diffBone(r, c gjson.Result) map[string]float64 {
	diffs := make(map[string]float64)
	rActive := int(r.Get("active").Float())
	cActive := int(c.Get("active").Float())
	diffs["active"] = boolDiff(rActive == cActive)
	if rActive == 0 && cActive == 0 {
		return diffs
	}
	rw, cw := r.Get("world"), c.Get("world")
	for _, k := range []string{"a", "b", "c", "d", "x", "y"} {
		diffs["world."+k] = abs(rw.Get(k).Float() - cw.Get(k).Float())
	}
	ra, ca := r.Get("applied"), c.Get("applied")
	for _, k := range []string{"x", "y", "rotation", "scaleX", "scaleY", "shearX", "shearY"} {
		diffs["applied."+k] = abs(ra.Get(k).Float() - ca.Get(k).Float())
	}
	return diffs
}

func compareSlots(p *printer, r, c pose, opts Options) {
	names := unionNames(r.slots, c.slots)
	if len(names) == 0 {
		return
	}
	printMissing(p, "\nmissing slots", names, r.slots, c.slots)

	worst := collectWorst(names, opts.Eps, func(n string) map[string]float64 {
		return diffSlot(r.slots[n], c.slots[n])
	}, r.slots, c.slots)
	p.printf("\nslot diff >= %s: %d/%d\n", ftoa(opts.Eps), len(worst), len(names))
	printWorst(p, worst, opts.Top)
}

func diffSlot(r, c gjson.Result) map[string]float64 {
	diffs := make(map[string]float64)
	rc := list4(r, "color")
	cc := list4(c, "color")
	for i, k := range []string{"r", "g", "b", "a"} {
		diffs["color."+k] = abs(rc[i] - cc[i])
	}
	diffs["hasDark"] = boolDiff(int(r.Get("hasDark").Float()) == int(c.Get("hasDark").Float()))
	rd := list4(r, "darkColor")
	cd := list4(c, "darkColor")
	for i, k := range []string{"r", "g", "b", "a"} {
		diffs["darkColor."+k] = abs(rd[i] - cd[i])
	}

	ra, ca := r.Get("attachment"), c.Get("attachment")
	switch {
	case ra.IsObject() && ca.IsObject():
		diffs["attachment.name"] = boolDiff(ra.Get("name").String() == ca.Get("name").String())
		if ra.Get("type").Exists() && ca.Get("type").Exists() {
			diffs["attachment.type"] = abs(ra.Get("type").Float() - ca.Get("type").Float())
		} else {
			diffs["attachment.type"] = 0
		}
	case ra.Type == gjson.Null && ca.Type == gjson.Null:
		diffs["attachment.name"] = 0
		diffs["attachment.type"] = 0
	default:
		diffs["attachment.name"] = 1
		diffs["attachment.type"] = 1
	}

	rsi := sequenceIndex(r)
	csi := sequenceIndex(c)
	diffs["sequenceIndex"] = boolDiff(rsi == csi)
	return diffs
}

func sequenceIndex(obj gjson.Result) int {
	v := obj.Get("sequenceIndex")
	if v.Type != gjson.Number {
		return -1
	}
	return int(v.Float())
}

func compareDrawOrder(p *printer, r, c pose) {
	rdo := r.root.Get("drawOrder")
	cdo := c.root.Get("drawOrder")
	if !rdo.Exists() && !cdo.Exists() {
		return
	}
	if rdo.Raw == cdo.Raw {
		p.printf("\ndrawOrder: ok\n")
		return
	}
	p.printf("\ndrawOrder: mismatch\n")
	p.printf("  ref:  %s\n", rawOrNull(rdo))
	p.printf("  cand: %s\n", rawOrNull(cdo))
}

func compareNamedMap(p *printer, label string, r, c map[string]gjson.Result, opts Options, keys []string) {
	names := unionNames(r, c)
	if len(names) == 0 {
		return
	}
	printMissing(p, "\nmissing "+label, names, r, c)

	worst := collectWorst(names, opts.Eps, func(n string) map[string]float64 {
		diffs := make(map[string]float64, len(keys))
		for _, k := range keys {
			diffs[k] = abs(r[n].Get(k).Float() - c[n].Get(k).Float())
		}
		return diffs
	}, r, c)
	p.printf("\n%s diff >= %s: %d/%d\n", label, ftoa(opts.Eps), len(worst), len(names))
	printWorst(p, worst, opts.Top)
}

func dumpBone(p *printer, r, c pose, name string) {
	p.printf("\n--- bone ---\n")
	p.printf("name: %s\n", name)
	p.printf("ref:  %s\n", indented(r.bones, name))
	p.printf("cand: %s\n", indented(c.bones, name))
}

// indented pretty-prints one named entry with sorted keys, or null when the
// entry is absent.
func indented(m map[string]gjson.Result, name string) string {
	item, ok := m[name]
	if !ok {
		return "null"
	}
	var v any
	if err := json.Unmarshal([]byte(item.Raw), &v); err != nil {
		return item.Raw
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return item.Raw
	}
	return string(out)
}

type offender struct {
	diff float64
	name string
}

func collectWorst(names []string, eps float64, diff func(string) map[string]float64,
	r, c map[string]gjson.Result) []offender {
	var worst []offender
	for _, n := range names {
		if _, ok := r[n]; !ok {
			continue
		}
		if _, ok := c[n]; !ok {
			continue
		}
		m := 0.0
		for _, d := range diff(n) {
			if d > m {
				m = d
			}
		}
		if m >= eps {
			worst = append(worst, offender{diff: m, name: n})
		}
	}
	sort.Slice(worst, func(i, j int) bool {
		if worst[i].diff != worst[j].diff {
			return worst[i].diff > worst[j].diff
		}
		return worst[i].name > worst[j].name
	})
	return worst
}

func printWorst(p *printer, worst []offender, top int) {
	for i, o := range worst {
		if i >= top {
			break
		}
		p.printf("%.6g\t%s\n", o.diff, o.name)
	}
}

func printMissing(p *printer, label string, names []string, r, c map[string]gjson.Result) {
	var missing []string
	for _, n := range names {
		_, inR := r[n]
		_, inC := c[n]
		if !inR || !inC {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return
	}
	p.printf("%s: %d\n", label, len(missing))
	for i, n := range missing {
		if i >= 20 {
			break
		}
		p.printf("  %s\n", n)
	}
}

func unionNames(r, c map[string]gjson.Result) []string {
	seen := make(map[string]bool, len(r)+len(c))
	var names []string
	for n := range r {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for n := range c {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func rawField(obj gjson.Result, key string) string {
	// Diff keys are "space.field", which is already gjson path syntax.
	return rawOrNull(obj.Get(key))
}

func rawOrNull(v gjson.Result) string {
	if !v.Exists() {
		return "null"
	}
	return v.Raw
}

func list4(obj gjson.Result, key string) [4]float64 {
	var out [4]float64
	arr := obj.Get(key).Array()
	if len(arr) != 4 {
		return out
	}
	for i, v := range arr {
		out[i] = v.Float()
	}
	return out
}

func boolDiff(equal bool) float64 {
	if equal {
		return 0
	}
	return 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
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
