package sh1

// registerArithmetic installs ADD/SUB/CMP.
func registerArithmetic() {
	// ADD Rm,Rn -- 0011nnnnmmmm1100
	register(definition{
		name: "ADD",
		mask: 0xf00f, code: 0x300c,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] += c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})

	// ADD #imm,Rn -- 0111nnnniiiiiiii (sign-extended 8-bit immediate)
	register(definition{
		name: "ADD_IMM",
		mask: 0xf000, code: 0x7000,
		args: func(op uint16) Args { return Args{Rn: rn(op), Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] += uint32(a.Imm)
			return execResult{cycles: 1}, nil
		},
	})

	// SUB Rm,Rn -- 0011nnnnmmmm1000
	register(definition{
		name: "SUB",
		mask: 0xf00f, code: 0x3008,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] -= c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})

	// CMP/EQ Rm,Rn -- 0011nnnnmmmm0000
	register(definition{
		name: "CMP_EQ",
		mask: 0xf00f, code: 0x3000,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn] == c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})

	// CMP/EQ #imm,R0 -- 10001000iiiiiiii
	register(definition{
		name: "CMP_EQ_IMM",
		mask: 0xff00, code: 0x8800,
		args: func(op uint16) Args { return Args{Imm: signExtend8(uint8(op))} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = int32(c.R[0]) == a.Imm
			return execResult{cycles: 1}, nil
		},
	})

	// CMP/GT Rm,Rn -- 0011nnnnmmmm0111 (signed greater-than)
	register(definition{
		name: "CMP_GT",
		mask: 0xf00f, code: 0x3007,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = int32(c.R[a.Rn]) > int32(c.R[a.Rm])
			return execResult{cycles: 1}, nil
		},
	})

	// CMP/HI Rm,Rn -- 0011nnnnmmmm0110 (unsigned greater-than)
	register(definition{
		name: "CMP_HI",
		mask: 0xf00f, code: 0x3006,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn] > c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})
}
