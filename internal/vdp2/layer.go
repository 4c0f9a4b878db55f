package vdp2

import (
	"encoding/binary"

	"github.com/jetsetilly/saturncore/internal/video"
)

// ColorFormat selects how a bitmap layer's bytes are interpreted (spec.md
// §4.3: "colour formats palette16/256/2048, RGB555/888").
type ColorFormat int

const (
	FormatRGB555 ColorFormat = iota
	FormatRGB888
	FormatPalette256
	FormatPalette16
)

// CRAM is the colour RAM bank a palette-format layer indexes into. Entries
// are stored as RGB555 words, matching VDP2's default CRAM mode (spec.md's
// original_source supplement: "CRAM mode switch timing" — the alternate
// RGB888-per-entry mode is handled by storing RGB888Word entries and
// switching Format on the CRAM itself rather than duplicating the table).
type CRAM struct {
	entries  []uint16
	rgb888   bool
}

// NewCRAM allocates a CRAM bank of the given entry count.
func NewCRAM(size int) *CRAM { return &CRAM{entries: make([]uint16, size)} }

// Write sets entry i to an RGB555 value.
func (c *CRAM) Write(i int, v uint16) { c.entries[i%len(c.entries)] = v }

// SetMode switches between RGB555 (false) and RGB888 (true) CRAM entry
// width; in RGB888 mode each logical entry occupies two consecutive RGB555
// slots reinterpreted as a packed 24-bit colour, mirroring VDP2's real
// CRAM width-doubling behaviour.
func (c *CRAM) SetMode(rgb888 bool) { c.rgb888 = rgb888 }

func (c *CRAM) colorAt(i int) video.Color888 {
	if !c.rgb888 {
		return video.RGB555ToColor888(c.entries[i%len(c.entries)])
	}
	lo := c.entries[(i*2)%len(c.entries)]
	hi := c.entries[(i*2+1)%len(c.entries)]
	return video.Color888FromRGB888Word(uint32(lo) | uint32(hi)<<16)
}

// BitmapSource is a fixed-size bitmap layer fetched directly from VRAM
// (spec.md §4.3's bitmap fetch path; cell/character fetch is out of scope
// for this pass — see DESIGN.md).
type BitmapSource struct {
	VRAM   []byte
	Base   uint32
	Width  int
	Height int
	Format ColorFormat
	CRAM   *CRAM
}

func (b *BitmapSource) Pixel(x, y int) (video.Color888, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return video.Color888{}, true
	}

	switch b.Format {
	case FormatRGB555:
		off := b.Base + uint32((y*b.Width+x)*2)
		v := binary.BigEndian.Uint16(b.VRAM[off : off+2])
		return video.RGB555ToColor888(v), v&0x8000 == 0
	case FormatRGB888:
		off := b.Base + uint32((y*b.Width+x)*4)
		v := binary.BigEndian.Uint32(b.VRAM[off : off+4])
		return video.Color888FromRGB888Word(v), v&0x80000000 == 0
	case FormatPalette256:
		off := b.Base + uint32(y*b.Width+x)
		idx := b.VRAM[off]
		return b.CRAM.colorAt(int(idx)), idx == 0
	default: // FormatPalette16
		off := b.Base + uint32((y*b.Width+x)/2)
		raw := b.VRAM[off]
		var idx uint8
		if x%2 == 0 {
			idx = raw >> 4
		} else {
			idx = raw & 0xf
		}
		return b.CRAM.colorAt(int(idx)), idx == 0
	}
}

// FramebufferSource exposes a 16-bit-per-pixel framebuffer (VDP1's
// displayed bank) as a layer Source, grounding the sprite layer in spec.md
// §4.3 ("reads VDP1's displayed framebuffer").
type FramebufferSource struct {
	FB     []byte
	Width  int
	Height int
}

func (f *FramebufferSource) Pixel(x, y int) (video.Color888, bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return video.Color888{}, true
	}
	off := (y*f.Width + x) * 2
	if off+1 >= len(f.FB) {
		return video.Color888{}, true
	}
	v := binary.BigEndian.Uint16(f.FB[off : off+2])
	return video.RGB555ToColor888(v), v == 0
}
