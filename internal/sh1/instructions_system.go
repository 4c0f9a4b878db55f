package sh1

// registerSystem installs NOP and the control-register transfer instructions.
func registerSystem() {
	// NOP -- 0000000000000000
	register(definition{
		name: "NOP", mask: 0xffff, code: 0x0000,
		args: func(op uint16) Args { return Args{} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			return execResult{cycles: 1}, nil
		},
	})

	// LDC Rm,SR -- 0100mmmm00001110
	register(definition{
		name: "LDC_SR", mask: 0xf0ff, code: 0x400e,
		args: func(op uint16) Args { return Args{Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.Unpack(c.R[a.Rm])
			return execResult{cycles: 1}, nil
		},
	})

	// STC SR,Rn -- 0000nnnn00000010
	register(definition{
		name: "STC_SR", mask: 0xf0ff, code: 0x0002,
		args: func(op uint16) Args { return Args{Rn: rn(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] = c.SR.Pack()
			return execResult{cycles: 1}, nil
		},
	})

	// LDC Rm,VBR -- 0100mmmm00101110
	register(definition{
		name: "LDC_VBR", mask: 0xf0ff, code: 0x402e,
		args: func(op uint16) Args { return Args{Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.VBR = c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})

	// STC VBR,Rn -- 0000nnnn00100010
	register(definition{
		name: "STC_VBR", mask: 0xf0ff, code: 0x0022,
		args: func(op uint16) Args { return Args{Rn: rn(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] = c.VBR
			return execResult{cycles: 1}, nil
		},
	})
}
