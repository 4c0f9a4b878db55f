package raster_test

import (
	"testing"

	"github.com/jetsetilly/saturncore/internal/raster"
	"github.com/jetsetilly/saturncore/test"
)

type countingCallbacks struct {
	renders      map[int]int
	vblankIns    int
	vblankOuts   int
	frameCount   int
}

func newCountingCallbacks() *countingCallbacks {
	return &countingCallbacks{renders: make(map[int]int)}
}

func (c *countingCallbacks) RenderLine(line int)                               { c.renders[line]++ }
func (c *countingCallbacks) FrameComplete(pixels []byte, width, height int)     { c.frameCount++ }
func (c *countingCallbacks) HBlankStateChange(hblank, vblank bool)              {}
func (c *countingCallbacks) VBlankStateChange(vblank bool)                      {}
func (c *countingCallbacks) VBlankIn()                                         { c.vblankIns++ }
func (c *countingCallbacks) VBlankOut()                                        { c.vblankOuts++ }

func TestExactlyOneRenderPerActiveLine(t *testing.T) {
	cb := newCountingCallbacks()
	d := raster.NewDriver(raster.NTSC, cb)

	// advance dot-by-dot until two whole fields have completed.
	for cb.vblankOuts < 2 {
		d.Advance(1)
	}

	for line := 0; line < 224; line++ {
		if cb.renders[line] != 2 {
			t.Fatalf("line %d rendered %d times across two fields, want 2", line, cb.renders[line])
		}
	}
	test.ExpectEquality(t, cb.vblankIns, 2)
}
