package sh1

// registerShifts installs the single-register shift/rotate family.
func registerShifts() {
	// SHLL Rn -- 0100nnnn00000000 (shift left logical, MSB into T)
	register(definition{
		name: "SHLL", mask: 0xf0ff, code: 0x4000,
		args: func(op uint16) Args { return Args{Rn: rn(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn]&0x80000000 != 0
			c.R[a.Rn] <<= 1
			return execResult{cycles: 1}, nil
		},
	})

	// SHLR Rn -- 0100nnnn00000001 (shift right logical, LSB into T)
	register(definition{
		name: "SHLR", mask: 0xf0ff, code: 0x4001,
		args: func(op uint16) Args { return Args{Rn: rn(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn]&1 != 0
			c.R[a.Rn] >>= 1
			return execResult{cycles: 1}, nil
		},
	})

	// SHAL Rn -- 0100nnnn00100000 (shift left arithmetic)
	register(definition{
		name: "SHAL", mask: 0xf0ff, code: 0x4020,
		args: func(op uint16) Args { return Args{Rn: rn(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn]&0x80000000 != 0
			c.R[a.Rn] = uint32(int32(c.R[a.Rn]) << 1)
			return execResult{cycles: 1}, nil
		},
	})

	// SHAR Rn -- 0100nnnn00100001 (shift right arithmetic, sign-preserving)
	register(definition{
		name: "SHAR", mask: 0xf0ff, code: 0x4021,
		args: func(op uint16) Args { return Args{Rn: rn(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn]&1 != 0
			c.R[a.Rn] = uint32(int32(c.R[a.Rn]) >> 1)
			return execResult{cycles: 1}, nil
		},
	})
}
