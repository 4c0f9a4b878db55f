package sh1

// registerDataMovement installs MOV and its addressing-mode variants.
// Grounded on the teacher's per-opcode Definition idiom (hardware/cpu's
// instructions.Definitions table), generalised from an 8-bit flat opcode
// space to SH-1's mask/match decode.
func registerDataMovement() {
	// MOV Rm,Rn  -- 0110nnnnmmmm0011
	register(definition{
		name: "MOV",
		mask: 0xf00f, code: 0x6003,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] = c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})

	// MOV #imm,Rn -- 1110nnnniiiiiiii (sign-extended 8-bit immediate)
	register(definition{
		name: "MOV_IMM",
		mask: 0xf000, code: 0xe000,
		args: func(op uint16) Args { return Args{Rn: rn(op), Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] = uint32(a.Imm)
			return execResult{cycles: 1}, nil
		},
	})

	// MOV.L @Rm,Rn -- 0110nnnnmmmm0010
	register(definition{
		name: "MOV.L_LOAD",
		mask: 0xf00f, code: 0x6002,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			v, err := c.bus.ReadLong(c.R[a.Rm])
			if err != nil {
				return execResult{}, err
			}
			c.R[a.Rn] = v
			return execResult{cycles: 1}, nil
		},
	})

	// MOV.L Rm,@Rn -- 0010nnnnmmmm0010
	register(definition{
		name: "MOV.L_STORE",
		mask: 0xf00f, code: 0x2002,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			if err := c.bus.WriteLong(c.R[a.Rn], c.R[a.Rm]); err != nil {
				return execResult{}, err
			}
			return execResult{cycles: 1}, nil
		},
	})

	// MOV.L @Rm+,Rn -- 0110nnnnmmmm0110 (post-increment load)
	register(definition{
		name: "MOV.L_LOAD_INC",
		mask: 0xf00f, code: 0x6006,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			v, err := c.bus.ReadLong(c.R[a.Rm])
			if err != nil {
				return execResult{}, err
			}
			c.R[a.Rn] = v
			if a.Rm != a.Rn {
				c.R[a.Rm] += 4
			}
			return execResult{cycles: 1}, nil
		},
	})

	// MOV.L Rm,@-Rn -- 0010nnnnmmmm0110 (pre-decrement store)
	register(definition{
		name: "MOV.L_STORE_DEC",
		mask: 0xf00f, code: 0x2006,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			addr := c.R[a.Rn] - 4
			if err := c.bus.WriteLong(addr, c.R[a.Rm]); err != nil {
				return execResult{}, err
			}
			c.R[a.Rn] = addr
			return execResult{cycles: 1}, nil
		},
	})
}
