package sh1

import "github.com/jetsetilly/saturncore/internal/bus"

// CPU is the SH-1 interpreter core (spec.md §4.4). It decodes one
// instruction per Step, threading a delay-slot flag through execution
// exactly as the teacher's 6507 core threads RDY-stall state through its
// Step loop, generalised to SH-1's branch-with-delay-slot semantics.
type CPU struct {
	Registers

	bus bus.CPUBus
	intc *INTC

	// pendingBranch/pendingTarget/pendingCall describe a branch whose delay
	// slot has not yet executed. delaySlotActive is true while Step is
	// executing that delay-slot instruction.
	delaySlotActive bool
	pendingBranch   bool
	pendingTarget   uint32
	pendingCall     bool
	pendingReturnPC uint32

	TotalCycles uint64
}

// NewCPU constructs a CPU wired to the given bus and interrupt controller.
func NewCPU(b bus.CPUBus, intc *INTC) *CPU {
	return &CPU{bus: b, intc: intc}
}

// HardReset zero-initialises the register file, sets PC to 0, and loads R15
// (the stack pointer) from the 32-bit vector at bus address 4, matching
// spec.md §8 seed scenario 1.
func (c *CPU) HardReset() error {
	c.Registers.Reset()
	c.delaySlotActive = false
	c.pendingBranch = false
	c.TotalCycles = 0

	sp, err := c.bus.ReadLong(4)
	if err != nil {
		return err
	}
	c.R[15] = sp
	return nil
}

// AcceptInterrupt checks the interrupt controller and, if a source is
// pending at a higher priority than SR.ILevel, performs the acceptance
// sequence: push SR then PC onto the stack pointed to by R15, raise
// SR.ILevel to the accepted source's priority, and load PC from the vector
// stored at VBR+4*vector (spec.md §8 seed scenario 4). It does nothing, and returns
// false, while a delay slot is pending — acceptance happens only at an
// instruction boundary that isn't itself inside one.
func (c *CPU) AcceptInterrupt() (bool, error) {
	if c.delaySlotActive {
		return false, nil
	}

	ok, vector, level := c.intc.Pending(c.SR.ILevel)
	if !ok {
		return false, nil
	}

	c.R[15] -= 4
	if err := c.bus.WriteLong(c.R[15], c.SR.Pack()); err != nil {
		return false, err
	}
	c.R[15] -= 4
	if err := c.bus.WriteLong(c.R[15], c.PC); err != nil {
		return false, err
	}

	pc, err := c.bus.ReadLong(c.VBR + 4*vector)
	if err != nil {
		return false, err
	}
	c.SR.ILevel = level
	c.PC = pc
	return true, nil
}

// InDelaySlot reports whether the next Step executes a pending delay-slot
// instruction; interrupts are not accepted in this state (spec.md §4.4).
func (c *CPU) InDelaySlot() bool { return c.delaySlotActive }

// Step decodes and executes exactly one instruction, returning the number
// of cycles it consumed.
func (c *CPU) Step() (int, error) {
	opcode, err := c.bus.ReadWord(c.PC)
	if err != nil {
		return 0, err
	}

	def, err := decodeAt(opcode, c.PC)
	if err != nil {
		return 0, err
	}

	executingSlot := c.delaySlotActive
	if executingSlot && def.branch(opcode) {
		// a branch instruction placed in another branch's delay slot is
		// illegal (spec.md §7 SlotIllegalInstruction).
		return 0, slotIllegalInstruction(opcode, c.PC)
	}

	args := def.args(opcode)
	res, err := def.exec(c, args, executingSlot)
	if err != nil {
		return 0, err
	}

	c.PC += 2
	c.TotalCycles += uint64(res.cycles)

	if executingSlot {
		c.delaySlotActive = false
		if c.pendingBranch {
			if c.pendingCall {
				c.PR = c.pendingReturnPC
			}
			c.PC = c.pendingTarget
		}
		c.pendingBranch = false
		return res.cycles, nil
	}

	switch res.branch {
	case branchAlways:
		// the return address for BSR/JSR is the instruction after the
		// delay slot, i.e. the current (pre-increment) PC plus 4.
		c.delaySlotActive = true
		c.pendingBranch = true
		c.pendingTarget = res.target
		c.pendingCall = res.isCall
		c.pendingReturnPC = c.PC + 2
	case branchIfConditionS:
		// the following instruction is a delay slot only when the branch
		// is taken; otherwise it executes as an ordinary instruction.
		if res.branchTake {
			c.delaySlotActive = true
			c.pendingBranch = true
			c.pendingTarget = res.target
			c.pendingCall = false
		}
	default:
		if res.jump {
			c.PC = res.target
		}
	}

	return res.cycles, nil
}

// branch reports whether d has delay-slot semantics, used to detect an
// illegal branch-in-delay-slot.
func (d *definition) branch(opcode uint16) bool {
	switch d.name {
	case "BRA", "BSR", "JMP", "JSR", "RTS", "RTE", "BF_S", "BT_S":
		return true
	}
	return false
}

func slotIllegalInstruction(opcode uint16, pc uint32) error {
	return curatedSlotIllegal(opcode, pc)
}
