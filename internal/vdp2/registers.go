// Package vdp2 implements the VDP2 background compositor (spec.md §2,
// §4.3): per-line parameter latching, window computation, the sprite layer
// sourced from VDP1's displayed framebuffer, up to six background layers,
// and final composition into an RGB888 scanline. Grounded on the teacher's
// hardware/television package, which is the closest analogue in the pack to
// "multiple signal sources composited per scanline into one displayed
// image" (television mixes TIA output with its own border/debug overlays
// per scanline; VDP2 mixes up to seven layers by priority).
package vdp2

import "github.com/jetsetilly/saturncore/internal/video"

// Layer identifies one of VDP2's compositing inputs.
type Layer int

const (
	LayerNBG0 Layer = iota
	LayerNBG1
	LayerNBG2
	LayerNBG3
	LayerRBG0
	LayerRBG1
	LayerSprite
	numLayers
)

// LayerState is the per-line latched configuration of one compositing
// input (spec.md §4.3: "per-line parameter latching").
type LayerState struct {
	Enabled       bool
	Priority      uint8 // 0 (lowest) - 7 (highest); ties broken by layer index, ascending
	ColorCalcOn   bool
	ColorRatio    int // out of 32, used with video.BlendRatio
	Source        Source
}

// Source is implemented by whatever produces pixels for a layer: a bitmap
// fetched from VRAM, or (for the sprite layer) a read of VDP1's displayed
// framebuffer.
type Source interface {
	// Pixel returns the colour at (x,y) and whether it is transparent (and
	// so does not occlude lower-priority layers).
	Pixel(x, y int) (c video.Color888, transparent bool)
}

// Registers holds VDP2's screen-wide configuration (spec.md §4.3).
type Registers struct {
	Layers [numLayers]LayerState

	BackColor uint16 // RGB555, used when no layer covers a pixel

	ColorOffset      video.ColorOffset
	ColorOffsetLayer [numLayers]bool // which layers the offset applies to

	Window [3]Window // 2 coordinate windows + sprite window, AND/OR + invert
}

// NewRegisters returns a Registers with every layer disabled and a black
// backdrop, matching VDP2's power-on-reset state.
func NewRegisters() *Registers {
	return &Registers{}
}
