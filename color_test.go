package spine2d

import "testing"

func TestPremultiplyARGB(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want uint32
	}{
		{name: "opaque white unchanged", in: 0xffffffff, want: 0xffffffff},
		{name: "opaque tint unchanged", in: 0xff123456, want: 0xff123456},
		{name: "fully transparent zeroes rgb", in: 0x00ff8040, want: 0x00000000},
		{name: "half alpha red", in: 0x80ff0000, want: 0x80800000},
		{name: "mid alpha mixed", in: 0x7f336699, want: 0x7f19324c},
		{name: "truncation of small channels", in: 0x7f030201, want: 0x7f010000},
		{name: "low alpha", in: 0x33aabbcc, want: 0x33222528},
		{name: "alpha one", in: 0x01ffffff, want: 0x01010101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PremultiplyARGB(tt.in); got != tt.want {
				t.Errorf("PremultiplyARGB(%#08x) = %#08x, want %#08x", tt.in, got, tt.want)
			}
		})
	}
}

func TestPremultiplyARGB_OpaqueIdentity(t *testing.T) {
	// Alpha 255 must leave every channel untouched, whatever the RGB content.
	for _, rgb := range []uint32{0x000000, 0x0000ff, 0x804020, 0xfefdfc, 0xffffff} {
		c := 0xff000000 | rgb
		if got := PremultiplyARGB(c); got != c {
			t.Errorf("PremultiplyARGB(%#08x) = %#08x, want identity", c, got)
		}
	}
}

func TestEncodeDarkARGB(t *testing.T) {
	tests := []struct {
		name          string
		dark, light   uint32
		premultiplied bool
		want          uint32
	}{
		{name: "zero rgb sentinel pma", dark: 0x00000000, light: 0x80ffffff, premultiplied: true, want: 0xff000000},
		{name: "zero rgb sentinel straight", dark: 0x00000000, light: 0x80ffffff, premultiplied: false, want: 0xff000000},
		{name: "zero rgb ignores dark alpha", dark: 0xcc000000, light: 0xffffffff, premultiplied: true, want: 0xff000000},
		{name: "pma scales by light alpha", dark: 0x00804020, light: 0x80ffffff, premultiplied: true, want: 0xff402010},
		{name: "straight passes rgb through", dark: 0x00804020, light: 0x80ffffff, premultiplied: false, want: 0x00804020},
		{name: "pma truncates small channels", dark: 0x12010203, light: 0x7f000000, premultiplied: true, want: 0xff000001},
		{name: "pma opaque light keeps rgb", dark: 0x00ffffff, light: 0xff123456, premultiplied: true, want: 0xffffffff},
		{name: "pma transparent light zeroes rgb", dark: 0x00ffffff, light: 0x00123456, premultiplied: true, want: 0xff000000},
		{name: "straight drops dark alpha", dark: 0xcc102030, light: 0x33445566, premultiplied: false, want: 0x00102030},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeDarkARGB(tt.dark, tt.light, tt.premultiplied)
			if got != tt.want {
				t.Errorf("EncodeDarkARGB(%#08x, %#08x, %v) = %#08x, want %#08x",
					tt.dark, tt.light, tt.premultiplied, got, tt.want)
			}
		})
	}
}

func TestEncodeDarkARGB_OpaqueLightKeepsRGB(t *testing.T) {
	// With a fully opaque light color the premultiplied transform must not
	// change the dark RGB channels, only the alpha convention.
	dark := uint32(0x00a1b2c3)
	pma := EncodeDarkARGB(dark, 0xff000000, true)
	straight := EncodeDarkARGB(dark, 0xff000000, false)
	if pma != 0xffa1b2c3 {
		t.Errorf("premultiplied = %#08x, want 0xffa1b2c3", pma)
	}
	if straight != 0x00a1b2c3 {
		t.Errorf("straight = %#08x, want 0x00a1b2c3", straight)
	}
}
