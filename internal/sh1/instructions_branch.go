package sh1

// registerBranches installs the branch family, each reporting its
// branchKind so the interpreter (cpu.go) knows whether the following
// instruction executes in a delay slot (spec.md §8 delay-slot invariant).
func registerBranches() {
	// BRA label -- 1010dddddddddddd (12-bit signed displacement, unconditional, delay slot)
	register(definition{
		name: "BRA", mask: 0xf000, code: 0xa000,
		args: func(op uint16) Args { return Args{Imm: signExtend12(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			target := c.PC + 4 + uint32(a.Imm*2)
			return execResult{cycles: 2, branch: branchAlways, target: target}, nil
		},
	})

	// BSR label -- 1011dddddddddddd (as BRA, but PR := return address)
	register(definition{
		name: "BSR", mask: 0xf000, code: 0xb000,
		args: func(op uint16) Args { return Args{Imm: signExtend12(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			target := c.PC + 4 + uint32(a.Imm*2)
			return execResult{cycles: 2, branch: branchAlways, target: target, isCall: true}, nil
		},
	})

	// JMP @Rm -- 0100mmmm00101011
	register(definition{
		name: "JMP", mask: 0xf0ff, code: 0x402b,
		args: func(op uint16) Args { return Args{Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			return execResult{cycles: 2, branch: branchAlways, target: c.R[a.Rm]}, nil
		},
	})

	// JSR @Rm -- 0100mmmm00001011
	register(definition{
		name: "JSR", mask: 0xf0ff, code: 0x400b,
		args: func(op uint16) Args { return Args{Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			return execResult{cycles: 2, branch: branchAlways, target: c.R[a.Rm], isCall: true}, nil
		},
	})

	// RTS -- 0000000000001011
	register(definition{
		name: "RTS", mask: 0xffff, code: 0x000b,
		args: func(op uint16) Args { return Args{} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			return execResult{cycles: 2, branch: branchAlways, target: c.PR}, nil
		},
	})

	// RTE -- 0000000000101011 (pop PC then SR from the stack, delay slot)
	register(definition{
		name: "RTE", mask: 0xffff, code: 0x002b,
		args: func(op uint16) Args { return Args{} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			pc, err := c.bus.ReadLong(c.R[15])
			if err != nil {
				return execResult{}, err
			}
			sr, err := c.bus.ReadLong(c.R[15] + 4)
			if err != nil {
				return execResult{}, err
			}
			c.R[15] += 8
			c.SR.Unpack(sr)
			return execResult{cycles: 4, branch: branchAlways, target: pc}, nil
		},
	})

	// BF label -- 10001011dddddddd (conditional, no delay slot)
	register(definition{
		name: "BF", mask: 0xff00, code: 0x8b00,
		args: func(op uint16) Args { return Args{Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			if !c.SR.T {
				return execResult{cycles: 3, jump: true, target: c.PC + 4 + uint32(a.Imm*2)}, nil
			}
			return execResult{cycles: 1}, nil
		},
	})

	// BT label -- 10001001dddddddd
	register(definition{
		name: "BT", mask: 0xff00, code: 0x8900,
		args: func(op uint16) Args { return Args{Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			if c.SR.T {
				return execResult{cycles: 3, jump: true, target: c.PC + 4 + uint32(a.Imm*2)}, nil
			}
			return execResult{cycles: 1}, nil
		},
	})

	// BF/S label -- 10001111dddddddd (delay slot executes only when the
	// branch is taken, i.e. T==0, per spec.md §8)
	register(definition{
		name: "BF_S", mask: 0xff00, code: 0x8f00,
		args: func(op uint16) Args { return Args{Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			take := !c.SR.T
			return execResult{cycles: 2, branch: branchIfConditionS, branchTake: take, target: c.PC + 4 + uint32(a.Imm*2)}, nil
		},
	})

	// BT/S label -- 10001101dddddddd
	register(definition{
		name: "BT_S", mask: 0xff00, code: 0x8d00,
		args: func(op uint16) Args { return Args{Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			take := c.SR.T
			return execResult{cycles: 2, branch: branchIfConditionS, branchTake: take, target: c.PC + 4 + uint32(a.Imm*2)}, nil
		},
	})
}
