package sh1

// registerLogic installs AND/OR/XOR/TST register-register forms.
func registerLogic() {
	register(definition{
		name: "AND", mask: 0xf00f, code: 0x2009,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] &= c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})
	register(definition{
		name: "OR", mask: 0xf00f, code: 0x200b,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] |= c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})
	register(definition{
		name: "XOR", mask: 0xf00f, code: 0x200a,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.R[a.Rn] ^= c.R[a.Rm]
			return execResult{cycles: 1}, nil
		},
	})
	// TST Rm,Rn -- 0010nnnnmmmm1000
	register(definition{
		name: "TST", mask: 0xf00f, code: 0x2008,
		args: func(op uint16) Args { return Args{Rn: rn(op), Rm: rm(op)} },
		exec: func(c *CPU, a Args, _ bool) (execResult, error) {
			c.SR.T = c.R[a.Rn]&c.R[a.Rm] == 0
			return execResult{cycles: 1}, nil
		},
	})
}
