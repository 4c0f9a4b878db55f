package vdp1_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/saturncore/internal/vdp1"
	"github.com/jetsetilly/saturncore/test"
)

func writeCommand(vram []byte, addr uint32, ctrl, drawMode, color uint16, verts [4]vdp1.Vertex, jumpTarget uint32) {
	b := vram[addr : addr+32]
	binary.BigEndian.PutUint16(b[0:2], ctrl)
	binary.BigEndian.PutUint16(b[2:4], drawMode)
	binary.BigEndian.PutUint16(b[4:6], color)
	binary.BigEndian.PutUint16(b[6:8], 0)
	binary.BigEndian.PutUint16(b[8:10], 0)
	for i, v := range verts {
		off := 10 + i*4
		binary.BigEndian.PutUint16(b[off:off+2], uint16(v.X))
		binary.BigEndian.PutUint16(b[off+2:off+4], uint16(v.Y))
	}
	binary.BigEndian.PutUint16(b[26:28], 0)
	binary.BigEndian.PutUint16(b[28:30], uint16(jumpTarget>>3))
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// spec.md §8 seed scenario 2: a DrawNormalSprite whose quad lies entirely
// outside the system clip rectangle writes nothing to the draw framebuffer.
func TestSystemClipRejectsOutOfBoundsSprite(t *testing.T) {
	p := vdp1.NewProcessor(320, 224)
	p.HardReset()

	// end control word: type=0 (normal sprite), jump=next(0), end bit clear
	// on this record, but we terminate via a second "end" command.
	verts := [4]vdp1.Vertex{{X: -100, Y: -100}, {X: -50, Y: -100}, {X: -50, Y: -50}, {X: -100, Y: -50}}
	writeCommand(p.VRAM[:], 0, 0x0000, 0x0005, 0x7fff, verts, 0)
	// command at 32: end of frame
	binary.BigEndian.PutUint16(p.VRAM[32:34], 0x8000)

	err := p.RunFrame()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, allZero(p.DrawFB()), true)
}

// spec.md §8 invariant: a polygon whose four vertices are equal plots zero
// pixels and reports no clip error.
func TestDegenerateQuadPlotsNothing(t *testing.T) {
	p := vdp1.NewProcessor(320, 224)
	p.HardReset()

	verts := [4]vdp1.Vertex{{X: 10, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 10}}
	// type=4 (polygon)
	writeCommand(p.VRAM[:], 0, 0x0004, 0x0005, 0x7fff, verts, 0)
	binary.BigEndian.PutUint16(p.VRAM[32:34], 0x8000)

	err := p.RunFrame()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, allZero(p.DrawFB()), true)
}

func TestJumpAssignToZeroEndsFrame(t *testing.T) {
	p := vdp1.NewProcessor(320, 224)
	p.HardReset()

	var verts [4]vdp1.Vertex
	// jump=1 (assign) with target 0: infinite-loop safeguard ends the frame.
	writeCommand(p.VRAM[:], 0, 0x0010, 0x0000, 0, verts, 0)

	err := p.RunFrame()
	test.ExpectSuccess(t, err)
}

func TestSwapTogglesDisplayedBank(t *testing.T) {
	p := vdp1.NewProcessor(320, 224)
	p.HardReset()

	before := p.DisplayedBank()
	p.Swap()
	test.ExpectEquality(t, p.DisplayedBank(), before^1)
}
