package vdp2_test

import (
	"testing"

	"github.com/jetsetilly/saturncore/internal/vdp2"
	"github.com/jetsetilly/saturncore/internal/video"
	"github.com/jetsetilly/saturncore/test"
)

// TestBackdropOnlyFrame is seed scenario 3: every background and the sprite
// layer disabled, so every pixel on every line must equal the backdrop
// colour expanded from BackColor.
func TestBackdropOnlyFrame(t *testing.T) {
	regs := vdp2.NewRegisters()
	regs.BackColor = 0x1f00 // pure blue, RGB555

	c := vdp2.NewCompositor(regs)

	want := video.RGB555ToColor888(0x1f00).RGBA32()

	for y := 0; y < 4; y++ {
		line := c.RenderLine(y, 8)
		test.ExpectEquality(t, len(line), 8*4)
		for x := 0; x < 8; x++ {
			off := x * 4
			got := uint32(line[off]) | uint32(line[off+1])<<8 | uint32(line[off+2])<<16 | uint32(line[off+3])<<24
			test.ExpectEquality(t, got, want)
		}
	}
}

type constSource struct {
	color       video.Color888
	transparent bool
}

func (s constSource) Pixel(x, y int) (video.Color888, bool) { return s.color, s.transparent }

// TestSinglePlaneOverridesBackdrop checks that one enabled, opaque layer
// wins over the backdrop everywhere it covers.
func TestSinglePlaneOverridesBackdrop(t *testing.T) {
	regs := vdp2.NewRegisters()
	regs.BackColor = 0x1f00

	want := video.Color888{R: 10, G: 20, B: 30}
	regs.Layers[vdp2.LayerNBG0] = vdp2.LayerState{
		Enabled:  true,
		Priority: 1,
		Source:   constSource{color: want},
	}

	c := vdp2.NewCompositor(regs)
	line := c.RenderLine(0, 1)
	got := uint32(line[0]) | uint32(line[1])<<8 | uint32(line[2])<<16 | uint32(line[3])<<24
	test.ExpectEquality(t, got, want.RGBA32())
}

// TestPriorityOrdersLayersAboveIndex verifies that higher numeric priority
// wins regardless of layer index ordering.
func TestPriorityOrdersLayersAboveIndex(t *testing.T) {
	regs := vdp2.NewRegisters()

	low := video.Color888{R: 1, G: 1, B: 1}
	high := video.Color888{R: 9, G: 9, B: 9}

	// NBG3 has a higher layer index than NBG0, but higher priority, so it must
	// win even though NBG0 would win a pure index tie-break.
	regs.Layers[vdp2.LayerNBG0] = vdp2.LayerState{Enabled: true, Priority: 1, Source: constSource{color: low}}
	regs.Layers[vdp2.LayerNBG3] = vdp2.LayerState{Enabled: true, Priority: 5, Source: constSource{color: high}}

	c := vdp2.NewCompositor(regs)
	line := c.RenderLine(0, 1)
	got := uint32(line[0]) | uint32(line[1])<<8 | uint32(line[2])<<16 | uint32(line[3])<<24
	test.ExpectEquality(t, got, high.RGBA32())
}

// TestColorCalcBlendsTopTwoLayers checks BlendRatio composition between the
// top two priority layers when ColorCalcOn is set on the topmost.
func TestColorCalcBlendsTopTwoLayers(t *testing.T) {
	regs := vdp2.NewRegisters()

	top := video.Color888{R: 200, G: 200, B: 200}
	bottom := video.Color888{R: 0, G: 0, B: 0}

	regs.Layers[vdp2.LayerNBG0] = vdp2.LayerState{
		Enabled:     true,
		Priority:    5,
		Source:      constSource{color: top},
		ColorCalcOn: true,
		ColorRatio:  16, // half
	}
	regs.Layers[vdp2.LayerNBG1] = vdp2.LayerState{Enabled: true, Priority: 1, Source: constSource{color: bottom}}

	c := vdp2.NewCompositor(regs)
	line := c.RenderLine(0, 1)

	want := video.Blend(video.BlendRatio, top, bottom, 16)
	got := uint32(line[0]) | uint32(line[1])<<8 | uint32(line[2])<<16 | uint32(line[3])<<24
	test.ExpectEquality(t, got, want.RGBA32())
}

// TestTransparentPixelFallsThrough ensures a transparent layer does not
// occlude the backdrop (or a lower-priority layer).
func TestTransparentPixelFallsThrough(t *testing.T) {
	regs := vdp2.NewRegisters()
	regs.BackColor = 0x0300 // green channel only

	regs.Layers[vdp2.LayerNBG0] = vdp2.LayerState{
		Enabled:  true,
		Priority: 7,
		Source:   constSource{color: video.Color888{R: 255}, transparent: true},
	}

	c := vdp2.NewCompositor(regs)
	line := c.RenderLine(0, 1)
	want := video.RGB555ToColor888(0x0300).RGBA32()
	got := uint32(line[0]) | uint32(line[1])<<8 | uint32(line[2])<<16 | uint32(line[3])<<24
	test.ExpectEquality(t, got, want)
}

// TestWindowExcludesLayerOutsideRange checks a coordinate window narrows a
// layer's visible span.
func TestWindowExcludesLayerOutsideRange(t *testing.T) {
	regs := vdp2.NewRegisters()
	regs.BackColor = 0x0000

	layerColor := video.Color888{R: 50, G: 60, B: 70}
	regs.Layers[vdp2.LayerNBG0] = vdp2.LayerState{Enabled: true, Priority: 1, Source: constSource{color: layerColor}}

	c := vdp2.NewCompositor(regs)
	c.WindowSet[vdp2.LayerNBG0] = []vdp2.Window{{Enabled: true, Left: 2, Right: 4}}
	c.WindowLogic[vdp2.LayerNBG0] = vdp2.WindowLogicAND

	line := c.RenderLine(0, 8)

	atX := func(x int) uint32 {
		off := x * 4
		return uint32(line[off]) | uint32(line[off+1])<<8 | uint32(line[off+2])<<16 | uint32(line[off+3])<<24
	}

	backdrop := video.RGB555ToColor888(0x0000).RGBA32()
	test.ExpectEquality(t, atX(0), backdrop)
	test.ExpectEquality(t, atX(3), layerColor.RGBA32())
	test.ExpectEquality(t, atX(6), backdrop)
}

func TestCRAMPalette256RoundTrip(t *testing.T) {
	cram := vdp2.NewCRAM(256)
	cram.Write(5, 0x1f00)

	vram := make([]byte, 16)
	vram[0] = 5

	src := &vdp2.BitmapSource{
		VRAM:   vram,
		Width:  4,
		Height: 4,
		Format: vdp2.FormatPalette256,
		CRAM:   cram,
	}

	c, transparent := src.Pixel(0, 0)
	test.ExpectEquality(t, transparent, false)
	test.ExpectEquality(t, c.RGBA32(), video.RGB555ToColor888(0x1f00).RGBA32())
}

func TestCRAMPalette256IndexZeroIsTransparent(t *testing.T) {
	cram := vdp2.NewCRAM(256)
	vram := make([]byte, 16)

	src := &vdp2.BitmapSource{
		VRAM:   vram,
		Width:  4,
		Height: 4,
		Format: vdp2.FormatPalette256,
		CRAM:   cram,
	}

	_, transparent := src.Pixel(0, 0)
	test.ExpectEquality(t, transparent, true)
}
