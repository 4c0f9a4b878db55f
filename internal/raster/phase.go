// Package raster implements the phase-accurate raster timing driver
// described in spec.md §4.1: a state machine over HPhase x VPhase that
// gates VDP1/VDP2 work, schedules VBlank/HBlank callbacks, and maintains
// HCNT/VCNT. Grounded on the teacher's hardware/television package, whose
// job is the equivalent role for the 2600's much simpler raster.
package raster

// HPhase is a horizontal raster phase (spec.md §4.1).
type HPhase int

const (
	HPhaseActive HPhase = iota
	HPhaseRightBorder
	HPhaseSync
	HPhaseLeftBorder
)

func (p HPhase) String() string {
	switch p {
	case HPhaseActive:
		return "active"
	case HPhaseRightBorder:
		return "right-border"
	case HPhaseSync:
		return "hsync"
	case HPhaseLeftBorder:
		return "left-border"
	default:
		return "unknown"
	}
}

// VPhase is a vertical raster phase (spec.md §4.1).
type VPhase int

const (
	VPhaseActive VPhase = iota
	VPhaseBottomBorder
	VPhaseBlankingAndSync
	VPhaseVCounterSkip
	VPhaseTopBorder
	VPhaseLastLine
)

func (p VPhase) String() string {
	switch p {
	case VPhaseActive:
		return "active"
	case VPhaseBottomBorder:
		return "bottom-border"
	case VPhaseBlankingAndSync:
		return "blanking"
	case VPhaseVCounterSkip:
		return "vcounter-skip"
	case VPhaseTopBorder:
		return "top-border"
	case VPhaseLastLine:
		return "last-line"
	default:
		return "unknown"
	}
}

// Standard selects the broadcast standard, which governs total
// scanline/field counts (spec.md §3.1: 263/262 NTSC, 313/312 PAL).
type Standard int

const (
	NTSC Standard = iota
	PAL
)

// Timing gives the HCNT boundaries between horizontal phases and the VCNT
// boundaries between vertical phases for one (hres, vres, standard, parity)
// combination (spec.md §3.1 "Timing tables").
type Timing struct {
	// horizontal dot-clock boundaries, exclusive end of each phase
	HActiveEnd      int
	HRightBorderEnd int
	HSyncEnd        int
	HLeftBorderEnd  int // == total horizontal dots

	// vertical scanline boundaries, exclusive end of each phase
	VActiveEnd       int
	VBottomBorderEnd int
	VBlankSyncEnd    int
	VSkipEnd         int
	VTopBorderEnd    int
	VLastLineEnd     int // == total scanlines for this field
}

// HTotal is the total horizontal dot count for this timing.
func (t Timing) HTotal() int { return t.HLeftBorderEnd }

// VTotal is the total scanline count for this timing / field.
func (t Timing) VTotal() int { return t.VLastLineEnd }

// StandardTiming returns the timing table for a given standard, matching
// the 320x224-class hi-res mode used throughout the seed scenarios. Field
// parity changes the field total by one line (263/262 NTSC, 313/312 PAL);
// the split below spreads that difference over the blanking, skip and
// top-border phases (NTSC: 15/5/10 lines odd, 14/6/9 even).
func StandardTiming(std Standard, fieldIsOdd bool) Timing {
	const (
		hActive      = 320
		hRightBorder = 20
		hSync        = 40
		hLeftBorder  = 26
	)

	t := Timing{
		HActiveEnd:      hActive,
		HRightBorderEnd: hActive + hRightBorder,
		HSyncEnd:        hActive + hRightBorder + hSync,
		HLeftBorderEnd:  hActive + hRightBorder + hSync + hLeftBorder,

		VActiveEnd:       224,
		VBottomBorderEnd: 224 + 8,
	}

	var total int
	if std == PAL {
		total = 313
		if !fieldIsOdd {
			total = 312
		}
	} else {
		total = 263
		if !fieldIsOdd {
			total = 262
		}
	}

	// the skip region compresses the blanking/sync/skip band so that the
	// three trailing phases (blanking, skip, top-border) absorb whatever is
	// left after active+bottom-border+last-line are accounted for.
	const lastLine = 1
	remaining := total - t.VBottomBorderEnd - lastLine
	blankSync := remaining / 2
	skip := remaining - blankSync - (remaining / 3)
	if skip < 0 {
		skip = 0
	}
	top := remaining - blankSync - skip
	if top < 0 {
		top = 0
		skip = remaining - blankSync
	}

	t.VBlankSyncEnd = t.VBottomBorderEnd + blankSync
	t.VSkipEnd = t.VBlankSyncEnd + skip
	t.VTopBorderEnd = t.VSkipEnd + top
	t.VLastLineEnd = t.VTopBorderEnd + lastLine

	return t
}
