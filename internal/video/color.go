// Package video holds small data types shared between the VDP1 rasteriser
// and the VDP2 compositor: colour representations and the colour-offset
// saturating lookup described in spec.md §3.3/§4.3.
package video

// Color888 is an expanded, straight-alpha-free RGB triple as written to the
// final scanline output (spec.md §4.3 step 6: "write back a 32-bit RGB888
// pixel, alpha forced to 0xFF").
type Color888 struct {
	R, G, B uint8
}

// RGBA32 forces alpha to 0xff and packs the pixel as it would appear in a
// little-endian RGBA framebuffer (R in the lowest byte).
func (c Color888) RGBA32() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | 0xff<<24
}

// RGB555ToColor888 expands a 15-bit RGB555 value (red in bits 4:0, green in
// 9:5, blue in 14:10) to an 8-bit-per-channel colour, copying each
// channel's top three bits into its low three bits so that 0x1f maps to 0xff.
func RGB555ToColor888(v uint16) Color888 {
	r5 := uint8(v & 0x1f)
	g5 := uint8((v >> 5) & 0x1f)
	b5 := uint8((v >> 10) & 0x1f)
	return Color888{
		R: expand5to8(r5),
		G: expand5to8(g5),
		B: expand5to8(b5),
	}
}

func expand5to8(v uint8) uint8 {
	return (v << 3) | (v >> 2)
}

// Color888FromRGB888Word unpacks a 24-bit colour stored in the low 3 bytes
// of a 32-bit CRAM word (VDP2's 1024-entry x RGB888 CRAM mode).
func Color888FromRGB888Word(v uint32) Color888 {
	return Color888{
		R: uint8(v & 0xff),
		G: uint8((v >> 8) & 0xff),
		B: uint8((v >> 16) & 0xff),
	}
}

// ColorOffset is a signed 9-bit per-channel triple applied to a composed
// pixel (spec.md §3.3 colour-offset table).
type ColorOffset struct {
	R, G, B int16 // -256..255
}

func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Apply adds the offset to each channel, saturating to [0,255].
func (o ColorOffset) Apply(c Color888) Color888 {
	return Color888{
		R: saturate(int(c.R) + int(o.R)),
		G: saturate(int(c.G) + int(o.G)),
		B: saturate(int(c.B) + int(o.B)),
	}
}

// BlendMode selects how two layers' colours are combined during
// composition (spec.md §4.3 step 5).
type BlendMode int

const (
	// BlendSaturatedAdd adds channel values and clamps to 255.
	BlendSaturatedAdd BlendMode = iota
	// BlendHalf averages the two colours.
	BlendHalf
	// BlendRatio mixes by a configured ratio, front*ratio + back*(32-ratio), /32.
	BlendRatio
)

// Blend combines front (top) and back (second-from-top) colours according
// to mode. ratio is out of 32 and only used by BlendRatio.
func Blend(mode BlendMode, front, back Color888, ratio int) Color888 {
	switch mode {
	case BlendHalf:
		return Color888{
			R: uint8((int(front.R) + int(back.R)) / 2),
			G: uint8((int(front.G) + int(back.G)) / 2),
			B: uint8((int(front.B) + int(back.B)) / 2),
		}
	case BlendRatio:
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 32 {
			ratio = 32
		}
		inv := 32 - ratio
		return Color888{
			R: saturate((int(front.R)*ratio + int(back.R)*inv) / 32),
			G: saturate((int(front.G)*ratio + int(back.G)*inv) / 32),
			B: saturate((int(front.B)*ratio + int(back.B)*inv) / 32),
		}
	default: // BlendSaturatedAdd
		return Color888{
			R: saturate(int(front.R) + int(back.R)),
			G: saturate(int(front.G) + int(back.G)),
			B: saturate(int(front.B) + int(back.B)),
		}
	}
}

// Halve returns c with every channel halved, used for VDP2 sprite-shadow
// blending (spec.md §4.3 step 5).
func (c Color888) Halve() Color888 {
	return Color888{R: c.R / 2, G: c.G / 2, B: c.B / 2}
}
