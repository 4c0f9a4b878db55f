package sh1

import "github.com/jetsetilly/saturncore/internal/bus"

// PFC, TPC and BSC are thin register blocks for ports, the waveform timing
// pattern controller and the bus state controller: the surrounding system
// observes their register values (for configuring chip-select timing, pin
// direction, and so on) but this core does not model cycle-accurate bus
// wait-state insertion, which spec.md's Non-goals exclude.
type PFC struct{ PortDirection, PortData [8]uint8 }
type TPC struct{ NDER, PBDDR uint16 }
type BSC struct{ BCR1, BCR2, WCR1, WCR2 uint16 }

// Core bundles the CPU interpreter with its on-chip peripherals and drives
// them together from one Advance call, mirroring the teacher's top-level
// VCS struct that steps CPU and TIA in lockstep each call (hardware/vcs.go).
type Core struct {
	CPU *CPU

	INTC *INTC
	WDT  *WDT
	ITU0 *ITU
	DMAC *DMAC
	SCI  *SCI
	AD   *AD
	PFC  PFC
	TPC  TPC
	BSC  BSC
}

// NewCore constructs a fully wired SH-1 core over the given bus.
func NewCore(b bus.CPUBus) *Core {
	intc := NewINTC()
	c := &Core{
		CPU:  NewCPU(b, intc),
		INTC: intc,
		WDT:  NewWDT(),
		ITU0: NewITU(),
		DMAC: NewDMAC(),
		SCI:  NewSCI(),
		AD:   NewAD(),
	}
	return c
}

// HardReset resets the CPU and every on-chip peripheral to its
// power-on-reset state.
func (c *Core) HardReset() error {
	if err := c.CPU.HardReset(); err != nil {
		return err
	}
	c.WDT = NewWDT()
	c.ITU0 = NewITU()
	c.DMAC = NewDMAC()
	c.SCI = NewSCI()
	c.AD = NewAD()
	*c.INTC = *NewINTC()
	c.PFC = PFC{}
	c.TPC = TPC{}
	c.BSC = BSC{}
	return nil
}

// Step executes one CPU instruction, first giving the interrupt controller
// a chance to divert to a pending handler (spec.md §4.4: acceptance happens
// at an instruction boundary, never mid delay-slot-pair).
func (c *Core) Step() (int, error) {
	if _, err := c.CPU.AcceptInterrupt(); err != nil {
		return 0, err
	}
	return c.CPU.Step()
}

// Advance steps the CPU until at least cycles system clocks have elapsed.
// After every instruction it services the watchdog, then ITU channel 0, then
// polls both SCI channels. DMAC channels are not advanced here.
func (c *Core) Advance(cycles int) error {
	spent := 0
	for spent < cycles {
		n, err := c.Step()
		if err != nil {
			return err
		}
		spent += n

		switch c.WDT.AdvanceTo(uint32(n)) {
		case WDTEventIntervalTimerInterrupt:
			c.INTC.Assert(SourceWDT)
		case WDTEventWatchdogReset:
			if err := c.HardReset(); err != nil {
				return err
			}
			continue
		}

		if c.ITU0.Advance(uint16(n)) {
			c.INTC.Assert(SourceITU0)
		}

		c.SCI.Channels[0].Poll()
		c.SCI.Channels[1].Poll()
	}
	return nil
}
