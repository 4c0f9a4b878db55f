package sh1

import "github.com/jetsetilly/saturncore/internal/curated"

func curatedSlotIllegal(opcode uint16, pc uint32) error {
	return curated.Errorf(curated.SlotIllegalInstruction, opcode, pc)
}
