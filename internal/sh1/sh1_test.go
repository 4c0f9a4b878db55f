package sh1_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/saturncore/internal/sh1"
	"github.com/jetsetilly/saturncore/test"
)

// flatBus is a minimal big-endian memory for exercising the core in
// isolation, grounded on the teacher's hardware/memory test doubles (a bare
// byte array standing in for the full bus during cpu-only tests).
type flatBus struct {
	mem [0x10000]byte
}

func (b *flatBus) ReadByte(addr uint32) (uint8, error) { return b.mem[addr&0xffff], nil }
func (b *flatBus) ReadWord(addr uint32) (uint16, error) {
	return binary.BigEndian.Uint16(b.mem[addr&0xffff:]), nil
}
func (b *flatBus) ReadLong(addr uint32) (uint32, error) {
	return binary.BigEndian.Uint32(b.mem[addr&0xffff:]), nil
}
func (b *flatBus) WriteByte(addr uint32, v uint8) error {
	b.mem[addr&0xffff] = v
	return nil
}
func (b *flatBus) WriteWord(addr uint32, v uint16) error {
	binary.BigEndian.PutUint16(b.mem[addr&0xffff:], v)
	return nil
}
func (b *flatBus) WriteLong(addr uint32, v uint32) error {
	binary.BigEndian.PutUint32(b.mem[addr&0xffff:], v)
	return nil
}

// spec.md §8 seed scenario 1: hard reset with the given ROM bytes at
// offsets 0 and 4 leaves PC at 0 and R15 at 0x00002000; the first Step
// executes the NOP at address 0 and advances PC to 2.
func TestResetThenStep(t *testing.T) {
	b := &flatBus{}
	copy(b.mem[0:8], []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x20, 0x00})

	core := sh1.NewCore(b)
	err := core.HardReset()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, core.CPU.PC, uint32(0))
	test.ExpectEquality(t, core.CPU.R[15], uint32(0x2000))

	cycles, err := core.CPU.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 1)
	test.ExpectEquality(t, core.CPU.PC, uint32(2))
}

// spec.md §8 seed scenario 4: an IRQ6 request at priority level 5 is
// accepted when SR.ILevel is 4, pushing SR and PC and loading PC from
// VBR+4*0x46.
func TestInterruptPriorityAcceptance(t *testing.T) {
	b := &flatBus{}
	core := sh1.NewCore(b)
	test.ExpectSuccess(t, core.HardReset())

	core.CPU.VBR = 0x1000
	core.CPU.SR.ILevel = 4
	core.CPU.R[15] = 0x3000
	binary.BigEndian.PutUint32(b.mem[0x1000+4*0x46:], 0xdeadbeef)

	core.INTC.SetLevel(sh1.SourceIRQ6, 5)
	core.INTC.Assert(sh1.SourceIRQ6)

	accepted, err := core.CPU.AcceptInterrupt()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, accepted, true)
	test.ExpectEquality(t, core.CPU.PC, uint32(0xdeadbeef))
	test.ExpectEquality(t, core.CPU.SR.ILevel, uint8(5))

	poppedPC, err := b.ReadLong(core.CPU.R[15])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, poppedPC, uint32(0))
}

// spec.md §8 delay-slot invariant: BRA always executes its delay slot
// instruction before the branch takes effect.
func TestBRADelaySlotAlwaysExecutes(t *testing.T) {
	b := &flatBus{}
	core := sh1.NewCore(b)
	test.ExpectSuccess(t, core.HardReset())

	// BRA +0 (branch to PC+4): opcode 1010 0000 0000 0000 at address 0.
	binary.BigEndian.PutUint16(b.mem[0:2], 0xa000)
	// delay slot: ADD #1,R0 -- 0111 0000 0000 0001
	binary.BigEndian.PutUint16(b.mem[2:4], 0x7001)

	_, err := core.CPU.Step() // executes BRA, schedules the delay slot
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, core.CPU.InDelaySlot(), true)
	test.ExpectEquality(t, core.CPU.PC, uint32(2))

	_, err = core.CPU.Step() // executes the delay slot, then takes the branch
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, core.CPU.R[0], uint32(1))
	test.ExpectEquality(t, core.CPU.PC, uint32(4))
	test.ExpectEquality(t, core.CPU.InDelaySlot(), false)
}

// spec.md §8 delay-slot invariant: BF/S only executes its delay slot when
// the branch condition holds.
func TestBFSDelaySlotOnlyWhenTaken(t *testing.T) {
	b := &flatBus{}
	core := sh1.NewCore(b)
	test.ExpectSuccess(t, core.HardReset())

	core.CPU.SR.T = true // condition false for BF/S (branches when T==0)

	// BF/S +0 -- 1000 1111 0000 0000
	binary.BigEndian.PutUint16(b.mem[0:2], 0x8f00)
	// delay slot: ADD #1,R0
	binary.BigEndian.PutUint16(b.mem[2:4], 0x7001)
	// fallthrough instruction: ADD #1,R0 again, at address 4
	binary.BigEndian.PutUint16(b.mem[4:6], 0x7001)

	_, err := core.CPU.Step()
	test.ExpectSuccess(t, err)
	// not taken, so the instruction at address 2 is not a delay slot.
	test.ExpectEquality(t, core.CPU.InDelaySlot(), false)

	_, err = core.CPU.Step()
	test.ExpectSuccess(t, err)
	// condition was false (T==true means BF/S does not take), so no jump:
	// PC simply continues to the next instruction.
	test.ExpectEquality(t, core.CPU.PC, uint32(4))
}

func TestIllegalInstructionReported(t *testing.T) {
	b := &flatBus{}
	core := sh1.NewCore(b)
	test.ExpectSuccess(t, core.HardReset())

	// 0xffff is not allocated to any definition.
	binary.BigEndian.PutUint16(b.mem[0:2], 0xffff)
	_, err := core.CPU.Step()
	test.ExpectFailure(t, err)
}
