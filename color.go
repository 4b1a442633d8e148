package spine2d

// Packed vertex colors use AARRGGBB channel order, the layout the engine's
// render commands carry and the downstream shader family consumes.

// PremultiplyARGB multiplies the R, G, and B channels of a packed AARRGGBB
// color by its own alpha channel. The per-channel math is float scaling
// followed by integer truncation, matching the reference renderer's
// cast-to-integer behavior bit for bit.
//
// A fully opaque color (alpha 255) is returned unchanged.
func PremultiplyARGB(c uint32) uint32 {
	a8 := uint8(c >> 24)
	a := float32(a8) / 255.0
	r8 := uint8(float32((c >> 16) & 0xff) * a)
	g8 := uint8(float32((c >> 8) & 0xff) * a)
	b8 := uint8(float32(c&0xff) * a)
	return uint32(a8)<<24 | uint32(r8)<<16 | uint32(g8)<<8 | uint32(b8)
}

// EncodeDarkARGB produces the shader-facing encoding of a slot's dark (tint
// black) color. The alpha channel of the result is not an opacity: two-color
// tint shaders repurpose it as a premultiplied-alpha switch.
//
// The rules, which must not be simplified:
//   - Dark RGB of zero means "no dark tint": the result is alpha 255, RGB 0,
//     regardless of the premultiply mode.
//   - Premultiplied mode: dark RGB is scaled by the light color's alpha (the
//     light color as produced by the engine, before PremultiplyARGB has been
//     applied to it) and the result's alpha is forced to 255.
//   - Straight mode: dark RGB passes through and the result's alpha is forced
//     to 0.
func EncodeDarkARGB(dark, light uint32, premultiplied bool) uint32 {
	if dark&0x00ffffff == 0 {
		return 0xff000000
	}

	r8 := uint8(dark >> 16)
	g8 := uint8(dark >> 8)
	b8 := uint8(dark)

	if premultiplied {
		a := float32(uint8(light>>24)) / 255.0
		r8 = uint8(float32(r8) * a)
		g8 = uint8(float32(g8) * a)
		b8 = uint8(float32(b8) * a)
		return 0xff000000 | uint32(r8)<<16 | uint32(g8)<<8 | uint32(b8)
	}

	return uint32(r8)<<16 | uint32(g8)<<8 | uint32(b8)
}
