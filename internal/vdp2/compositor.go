package vdp2

import "github.com/jetsetilly/saturncore/internal/video"

// Compositor composes every enabled layer into one RGB888 scanline per
// call to RenderLine (spec.md §4.3 steps 1-6: latch, window, sprite/BG
// fetch, compose, colour-offset, write-back).
type Compositor struct {
	Regs *Registers

	// WindowLogic[l] selects how the windows in WindowSet[l] combine for
	// layer l; WindowSet[l] holds the windows that restrict that layer.
	WindowLogic [numLayers]WindowLogic
	WindowSet   [numLayers][]Window

	// Interlaced/DoubleDensity record the interlace mode. RenderLine does
	// not read them: it returns the composed line and does not choose a
	// destination line for it.
	Interlaced     bool
	DoubleDensity  bool
}

// NewCompositor constructs a compositor over regs.
func NewCompositor(regs *Registers) *Compositor {
	return &Compositor{Regs: regs}
}

// candidate is one layer's resolved pixel at a given column, used to find
// the topmost non-transparent layers for composition.
type candidate struct {
	layer Layer
	state *LayerState
	color video.Color888
}

// RenderLine composes one scanline of width pixels into an RGB888 buffer
// (4 bytes per pixel, alpha forced to 0xff per spec.md §4.3 step 6).
func (c *Compositor) RenderLine(y, width int) []byte {
	out := make([]byte, width*4)
	backdrop := video.RGB555ToColor888(c.Regs.BackColor)

	for x := 0; x < width; x++ {
		pixel := c.resolvePixel(x, y, backdrop)
		off := x * 4
		v := pixel.RGBA32()
		out[off] = byte(v)
		out[off+1] = byte(v >> 8)
		out[off+2] = byte(v >> 16)
		out[off+3] = byte(v >> 24)
	}
	return out
}

// resolvePixel finds the up-to-three topmost non-transparent layers at
// (x,y) by priority descending, ties broken by ascending layer index
// (spec.md §4.3 step 4), after applying the colour offset table to any
// layer configured to receive it. When the topmost layer has ColorCalcOn,
// it is blended with the second by ColorRatio; the third is not used.
func (c *Compositor) resolvePixel(x, y int, backdrop video.Color888) video.Color888 {
	var candidates []candidate

	for l := Layer(0); l < numLayers; l++ {
		state := &c.Regs.Layers[l]
		if !state.Enabled || state.Source == nil {
			continue
		}
		if !Combine(c.WindowLogic[l], c.WindowSet[l], x) {
			continue
		}
		col, transparent := state.Source.Pixel(x, y)
		if transparent {
			continue
		}
		if c.Regs.ColorOffsetLayer[l] {
			col = c.Regs.ColorOffset.Apply(col)
		}
		candidates = append(candidates, candidate{layer: l, state: state, color: col})
	}

	if len(candidates) == 0 {
		return backdrop
	}

	sortByPriorityThenIndex(candidates)
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	top := candidates[0]
	if len(candidates) == 1 || !top.state.ColorCalcOn {
		return top.color
	}

	second := candidates[1]
	return video.Blend(video.BlendRatio, top.color, second.color, top.state.ColorRatio)
}

// sortByPriorityThenIndex is a small insertion sort: the candidate list
// never exceeds numLayers (7) entries, so this beats sort.Slice's overhead
// and keeps the comparison (descending priority, ascending layer index)
// inline and easy to read.
func sortByPriorityThenIndex(c []candidate) {
	for i := 1; i < len(c); i++ {
		j := i
		for j > 0 && less(c[j], c[j-1]) {
			c[j], c[j-1] = c[j-1], c[j]
			j--
		}
	}
}

func less(a, b candidate) bool {
	if a.state.Priority != b.state.Priority {
		return a.state.Priority > b.state.Priority
	}
	return a.layer < b.layer
}
