package sh1

import "github.com/jetsetilly/saturncore/internal/curated"

// Args is the pre-extracted argument record handed to an instruction's
// executor, avoiding repeated bit-twiddling in the hot path (spec.md §4.4:
// "invoked with a pre-extracted argument record").
type Args struct {
	Rn, Rm uint8
	Imm    int32 // sign- or zero-extended immediate/displacement, per instruction
}

// branchKind classifies how an instruction with delay-slot semantics
// resolves its branch, used by the interpreter to decide whether the
// upcoming instruction executes in a delay slot (spec.md §8: "executes iff
// the branch is taken ... or iff the condition is true").
type branchKind int

const (
	branchNone         branchKind = iota
	branchAlways                  // BRA, BSR, JMP, JSR, RTS, RTE: slot always executes
	branchIfConditionS             // BF/S, BT/S: slot executes iff condition holds
)

// execResult is returned by an instruction's executor.
type execResult struct {
	cycles     int
	branch     branchKind
	branchTake bool // for branchIfConditionS: whether the condition held
	target     uint32
	isCall     bool // BSR/JSR: PR must be set to the instruction after the slot
	jump       bool // plain BF/BT (no delay slot): branch resolves immediately
}

// definition describes one decoded SH-1 instruction.
type definition struct {
	name string
	mask uint16
	code uint16
	args func(opcode uint16) Args
	exec func(c *CPU, a Args, inDelaySlot bool) (execResult, error)
}

var decodeTable [65536]*definition

func register(d definition) {
	for op := 0; op < 65536; op++ {
		if uint16(op)&d.mask == d.code {
			if decodeTable[op] != nil {
				// later, more specific definitions may legitimately refine
				// an earlier, broader one (e.g. a sub-opcode carved out of
				// a wildcard mask); last registration wins, matching the
				// generator convention of listing refinements after their
				// general case.
			}
			decodeTable[op] = &d
		}
	}
}

func rn(opcode uint16) uint8 { return uint8((opcode >> 8) & 0xf) }
func rm(opcode uint16) uint8 { return uint8((opcode >> 4) & 0xf) }

func signExtend8(v uint8) int32  { return int32(int8(v)) }
func signExtend12(v uint16) int32 {
	v &= 0xfff
	if v&0x800 != 0 {
		return int32(v) - 0x1000
	}
	return int32(v)
}

func init() {
	registerDataMovement()
	registerArithmetic()
	registerLogic()
	registerShifts()
	registerBranches()
	registerSystem()
}

// decodeAt looks up the definition for opcode, returning an
// IllegalInstruction error (carrying pc for diagnostics) if none matches
// (spec.md §7).
func decodeAt(opcode uint16, pc uint32) (*definition, error) {
	d := decodeTable[opcode]
	if d == nil {
		return nil, curated.Errorf(curated.IllegalInstruction, opcode, pc)
	}
	return d, nil
}
