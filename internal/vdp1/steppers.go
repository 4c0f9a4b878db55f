package vdp1

// LineStepper walks a Bresenham line between two points, reporting the
// walked length (for gouraud interpolation) and exposing a fast
// system-clip-skip check that rejects fully out-of-bounds lines without
// stepping them (spec.md §4.2 "Rasterisation primitives", 1).
type LineStepper struct {
	x0, y0, x1, y1 int
	dx, dy, sx, sy int
	err            int
	x, y           int
	steps, total   int
	done           bool
}

// NewLineStepper creates a stepper for the segment (x0,y0)-(x1,y1).
func NewLineStepper(x0, y0, x1, y1 int) *LineStepper {
	ls := &LineStepper{x0: x0, y0: y0, x1: x1, y1: y1, x: x0, y: y0}
	ls.dx = abs(x1 - x0)
	ls.dy = -abs(y1 - y0)
	if x0 < x1 {
		ls.sx = 1
	} else {
		ls.sx = -1
	}
	if y0 < y1 {
		ls.sy = 1
	} else {
		ls.sy = -1
	}
	ls.err = ls.dx + ls.dy
	ls.total = max(abs(x1-x0), abs(y1-y0)) + 1
	return ls
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Len returns the total number of steps this line will take, used by the
// caller to drive gouraud interpolation across the walk.
func (ls *LineStepper) Len() int { return ls.total }

// Done reports whether the walk has finished.
func (ls *LineStepper) Done() bool { return ls.done }

// Point returns the current pixel.
func (ls *LineStepper) Point() (x, y int) { return ls.x, ls.y }

// Step advances to the next pixel (Bresenham's algorithm, symmetric form).
func (ls *LineStepper) Step() {
	if ls.x == ls.x1 && ls.y == ls.y1 {
		ls.done = true
		return
	}
	e2 := 2 * ls.err
	if e2 >= ls.dy {
		ls.err += ls.dy
		ls.x += ls.sx
	}
	if e2 <= ls.dx {
		ls.err += ls.dx
		ls.y += ls.sy
	}
	ls.steps++
}

// SystemClipReject performs the fast "fully out of bounds" rejection check:
// if both endpoints lie outside the clip rectangle on the same side, the
// entire line can be skipped without stepping it.
func SystemClipReject(x0, y0, x1, y1 int, clip Rect) bool {
	if x0 < clip.X0 && x1 < clip.X0 {
		return true
	}
	if x0 > clip.X1 && x1 > clip.X1 {
		return true
	}
	if y0 < clip.Y0 && y1 < clip.Y0 {
		return true
	}
	if y0 > clip.Y1 && y1 > clip.Y1 {
		return true
	}
	return false
}

// TextureStepper walks the source-U axis across a destination run of pixels,
// in one of two sub-modes: normal ceil-div scaling, or high-speed shrink
// (nearest-neighbour, used when the destination is narrower than the
// source) (spec.md §4.2, 3).
type TextureStepper struct {
	srcLen, dstLen int
	highSpeedShrink bool
	pos            int // current destination pixel index
	endCodesSeen   int
}

// NewTextureStepper creates a stepper mapping srcLen source texels across
// dstLen destination pixels.
func NewTextureStepper(srcLen, dstLen int) *TextureStepper {
	return &TextureStepper{
		srcLen:          srcLen,
		dstLen:          dstLen,
		highSpeedShrink: dstLen < srcLen,
	}
}

// SourceIndex returns the source texel index for the stepper's current
// destination position.
func (ts *TextureStepper) SourceIndex() int {
	if ts.dstLen <= 0 {
		return 0
	}
	if ts.highSpeedShrink {
		// nearest-neighbour
		return (ts.pos*ts.srcLen + ts.srcLen/2) / ts.dstLen
	}
	// normal mode: ceil-div scaling
	return (ts.pos*ts.srcLen + ts.dstLen - 1) / ts.dstLen
}

// Step advances to the next destination pixel.
func (ts *TextureStepper) Step() { ts.pos++ }

// Done reports whether every destination pixel has been produced.
func (ts *TextureStepper) Done() bool { return ts.pos >= ts.dstLen }

// endCodeLimit is the number of 0xF/0xFF/0x7FFF end-codes tolerated per line
// before the line is cut short; high-speed shrink mode disables the limit
// (spec.md §4.2, 3).
const endCodeLimit = 2

// IsEndCode reports whether texel is one of the colour-mode's end-of-line
// sentinels.
func IsEndCode(mode ColorMode, texel uint16) bool {
	switch mode {
	case ColorBank4, ColorLookup4:
		return texel == 0xf
	case ColorRGB16:
		return texel == 0x7fff
	default:
		return texel == 0xff
	}
}

// ObserveEndCode records one occurrence of an end code and reports whether
// the line should now be cut. In high-speed shrink mode the limit never
// trips.
func (ts *TextureStepper) ObserveEndCode() (cut bool) {
	if ts.highSpeedShrink {
		return false
	}
	ts.endCodesSeen++
	return ts.endCodesSeen > endCodeLimit
}
