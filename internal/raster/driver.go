package raster

// Callbacks is the set of hooks the raster driver invokes as it advances
// (spec.md §6.2).
type Callbacks interface {
	// RenderLine is dispatched exactly once per active display line, for
	// the line that has just finished (spec.md §4.1, §8: "exactly one line
	// render ... per scan"). It may be serviced inline or queued to a
	// render worker (spec.md §4.5); the driver does not care which.
	RenderLine(line int)

	// FrameComplete is the hook for a full raster frame's rendered pixel
	// buffer. Driver itself never calls it: it holds no pixel buffer.
	FrameComplete(pixels []byte, width, height int)

	// HBlankStateChange fires on every HBlank change, passing the VBlank
	// state current at that moment.
	HBlankStateChange(hblank, vblank bool)

	// VBlankStateChange fires on every VBlank transition.
	VBlankStateChange(vblank bool)

	// VBlankIn fires once, on the transition into VBlank (entering
	// BottomBorder). The driver expects the VDP1 frame-end latch to be
	// consulted here.
	VBlankIn()

	// VBlankOut fires once, on the transition out of VBlank (HBlank-end of
	// the last line). Framebuffer swap/erase is driven from here.
	VBlankOut()
}

// Driver is the raster phase state machine of spec.md §4.1.
type Driver struct {
	std       Standard
	callbacks Callbacks

	HCNT uint16
	VCNT uint16

	HPhase HPhase
	VPhase VPhase

	// FieldIsOdd is the interlace field parity. Forced to true in
	// non-interlaced mode (spec.md §4.1).
	FieldIsOdd  bool
	Interlaced  bool
	frameNum    int
	timing      Timing
	hblank      bool
	vblank      bool
	lastActive  int // line number of the active line most recently completed
}

// NewDriver creates a raster driver for the given standard. FieldIsOdd
// starts true; in non-interlaced mode it is pinned there by Advance.
func NewDriver(std Standard, callbacks Callbacks) *Driver {
	d := &Driver{
		std:        std,
		callbacks:  callbacks,
		FieldIsOdd: true,
	}
	d.timing = StandardTiming(std, d.FieldIsOdd)
	return d
}

// SetInterlaced toggles deinterlaced vs field-sequential vertical counting.
func (d *Driver) SetInterlaced(v bool) {
	d.Interlaced = v
	if !v {
		d.FieldIsOdd = true
	}
}

// Reset returns the driver to power-on state (hard or soft reset are
// identical for raster state per spec.md §3.5: registers/latches only).
func (d *Driver) Reset() {
	d.HCNT = 0
	d.VCNT = 0
	d.HPhase = HPhaseActive
	d.VPhase = VPhaseActive
	d.hblank = false
	d.vblank = false
	d.frameNum = 0
	if !d.Interlaced {
		d.FieldIsOdd = true
	}
	d.timing = StandardTiming(d.std, d.FieldIsOdd)
}

// Advance steps the driver by dots dot-clock cycles, firing callbacks for
// every phase boundary crossed.
func (d *Driver) Advance(dots int) {
	for i := 0; i < dots; i++ {
		d.tick()
	}
}

func (d *Driver) tick() {
	d.HCNT++

	switch d.HPhase {
	case HPhaseActive:
		if int(d.HCNT) >= d.timing.HActiveEnd {
			d.HPhase = HPhaseRightBorder
			d.enterRightBorder()
		}
	case HPhaseRightBorder:
		if int(d.HCNT) >= d.timing.HRightBorderEnd {
			d.HPhase = HPhaseSync
		}
	case HPhaseSync:
		if int(d.HCNT) >= d.timing.HSyncEnd {
			d.HPhase = HPhaseLeftBorder
		}
	case HPhaseLeftBorder:
		if int(d.HCNT) >= d.timing.HLeftBorderEnd {
			d.HCNT = 0
			d.HPhase = HPhaseActive
			d.enterLeftBorderDone()
		}
	}
}

// enterRightBorder asserts HBLANK and dispatches the render for the line
// that was just active (spec.md §4.1).
func (d *Driver) enterRightBorder() {
	if d.VPhase == VPhaseActive {
		d.lastActive = int(d.VCNT)
		d.callbacks.RenderLine(int(d.VCNT))
	}
	d.setHBlank(true)
}

// enterLeftBorderDone advances VCNT (respecting the skip region),
// de-asserts HBLANK, and on the VBlank-out transition consults the
// framebuffer swap/erase latches (spec.md §4.1).
func (d *Driver) enterLeftBorderDone() {
	d.setHBlank(false)
	d.advanceVCNT()
}

func (d *Driver) setHBlank(v bool) {
	if d.hblank != v {
		d.hblank = v
		d.callbacks.HBlankStateChange(d.hblank, d.vblank)
	}
}

func (d *Driver) setVBlank(v bool) {
	if d.vblank == v {
		return
	}
	d.vblank = v
	d.callbacks.VBlankStateChange(d.vblank)
	if v {
		d.callbacks.VBlankIn()
	}
}

func (d *Driver) advanceVCNT() {
	d.VCNT++

	switch d.VPhase {
	case VPhaseActive:
		if int(d.VCNT) >= d.timing.VActiveEnd {
			d.VPhase = VPhaseBottomBorder
			d.setVBlank(true)
		}
	case VPhaseBottomBorder:
		if int(d.VCNT) >= d.timing.VBottomBorderEnd {
			d.VPhase = VPhaseBlankingAndSync
		}
	case VPhaseBlankingAndSync:
		if int(d.VCNT) >= d.timing.VBlankSyncEnd {
			d.VPhase = VPhaseVCounterSkip
		}
	case VPhaseVCounterSkip:
		// the skip region compresses VCNT so that field totals match
		// 263/262 (NTSC) or 313/312 (PAL); VCNT itself is not rewound here,
		// it simply continues counting through a phase that has no
		// observable display effect.
		if int(d.VCNT) >= d.timing.VSkipEnd {
			d.VPhase = VPhaseTopBorder
		}
	case VPhaseTopBorder:
		if int(d.VCNT) >= d.timing.VTopBorderEnd {
			d.VPhase = VPhaseLastLine
		}
	case VPhaseLastLine:
		if int(d.VCNT) >= d.timing.VLastLineEnd {
			d.completeField()
		}
	}
}

func (d *Driver) completeField() {
	d.VCNT = 0
	d.VPhase = VPhaseActive
	d.frameNum++

	if d.Interlaced {
		d.FieldIsOdd = !d.FieldIsOdd
	}
	d.timing = StandardTiming(d.std, d.FieldIsOdd)

	d.setVBlank(false)
	d.callbacks.VBlankOut()
}

// FrameNum returns the number of fields completed since the last Reset.
func (d *Driver) FrameNum() int { return d.frameNum }

// VBlank reports whether the driver currently considers VBLANK asserted.
func (d *Driver) VBlank() bool { return d.vblank }

// HBlank reports whether the driver currently considers HBLANK asserted.
func (d *Driver) HBlank() bool { return d.hblank }
