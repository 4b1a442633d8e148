// Package render serializes one frame's render-command list as a JSON
// document of draw batches, reconciling packed vertex colors with the
// atlas's premultiplied-alpha convention.
package render

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

// Meta is the document header describing how the frame was produced.
type Meta struct {
	Mode    string
	YDown   bool
	Physics engine.PhysicsMode
	Anim    string
	Time    float32

	// Skin is the skin requested in legacy mode; nil serializes as null.
	Skin *string
}

// Document is one frame's geometry. Field order is part of the schema.
type Document struct {
	Mode    string  `json:"mode"`
	YDown   int     `json:"y_down"`
	PMA     int     `json:"pma"`
	Physics string  `json:"physics"`
	Skin    *string `json:"skin"`
	Anim    string  `json:"anim"`
	Time    float32 `json:"time"`
	Draws   []Draw  `json:"draws"`
}

// Draw is one batch: a run of triangles sharing a texture page and blend
// mode.
type Draw struct {
	Page        int       `json:"page"`
	Blend       string    `json:"blend"`
	NumVertices int       `json:"num_vertices"`
	NumIndices  int       `json:"num_indices"`
	Positions   []float32 `json:"positions"`
	UVs         []float32 `json:"uvs"`
	Colors      []uint32  `json:"colors"`
	DarkColors  []uint32  `json:"dark_colors"`
	Indices     []uint16  `json:"indices"`
}

// AtlasPremultiplied reports whether any page of the atlas uses
// premultiplied alpha. The flag is global: one premultiplied page switches
// color reconciliation for every draw.
func AtlasPremultiplied(atlas engine.Atlas) bool {
	for _, page := range atlas.Pages() {
		if page.PremultipliedAlpha() {
			return true
		}
	}
	return false
}

// Capture walks the instance's render-command list and builds the document.
func Capture(inst engine.Instance, atlas engine.Atlas, meta Meta) *Document {
	pma := AtlasPremultiplied(atlas)

	yDown := 0
	if meta.YDown {
		yDown = 1
	}
	pmaFlag := 0
	if pma {
		pmaFlag = 1
	}
	doc := &Document{
		Mode:    meta.Mode,
		YDown:   yDown,
		PMA:     pmaFlag,
		Physics: meta.Physics.String(),
		Skin:    meta.Skin,
		Anim:    meta.Anim,
		Time:    meta.Time,
		Draws:   make([]Draw, 0, 4),
	}
	for cmd := inst.Render(); cmd != nil; cmd = cmd.Next() {
		doc.Draws = append(doc.Draws, extractDraw(cmd, pma))
	}
	spine2d.Logger().Debug("captured frame", "draws", len(doc.Draws), "pma", pma)
	return doc
}

// extractDraw copies one command's buffers; the engine regenerates them
// every render call, so nothing may alias.
func extractDraw(cmd engine.RenderCommand, pma bool) Draw {
	positions := cmd.Positions()
	uvs := cmd.UVs()
	colors := cmd.Colors()
	darks := cmd.DarkColors()
	indices := cmd.Indices()

	d := Draw{
		Page:        cmd.Texture(),
		Blend:       cmd.BlendMode().String(),
		NumVertices: len(positions) / 2,
		NumIndices:  len(indices),
		Positions:   append(make([]float32, 0, len(positions)), positions...),
		UVs:         append(make([]float32, 0, len(uvs)), uvs...),
		Indices:     append(make([]uint16, 0, len(indices)), indices...),
	}

	d.Colors = make([]uint32, 0, len(colors))
	d.DarkColors = make([]uint32, 0, len(colors))
	for i, light := range colors {
		out := light
		if pma {
			out = spine2d.PremultiplyARGB(light)
		}
		d.Colors = append(d.Colors, out)

		var dark uint32
		if i < len(darks) {
			dark = darks[i]
		}
		// The dark encoding scales by the light alpha before the light
		// color's own premultiply transform.
		d.DarkColors = append(d.DarkColors, spine2d.EncodeDarkARGB(dark, light, pma))
	}
	return d
}

// Encode writes the document as one JSON line with HTML escaping disabled.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(d)
}
