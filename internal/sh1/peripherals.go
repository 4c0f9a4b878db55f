package sh1

// ITU models one channel of the integrated timer unit: a free-running
// counter compared against a general register, raising an interrupt on
// match. Grounded on the teacher's television-timing "compare and signal"
// idiom (hardware/television's frame-timing comparators), applied to the
// SH-1's on-chip timer rather than the raster beam.
type ITU struct {
	counter  uint16
	compare  uint16
	running  bool
	overflow bool
}

func NewITU() *ITU { return &ITU{} }

func (t *ITU) Start()             { t.running = true }
func (t *ITU) Stop()              { t.running = false }
func (t *ITU) SetCompare(v uint16) { t.compare = v }
func (t *ITU) Counter() uint16    { return t.counter }

// Advance ticks the counter by cycles system clocks, reporting whether a
// compare-match interrupt is now pending (cleared by the caller via
// AckMatch once serviced).
func (t *ITU) Advance(cycles uint16) (matched bool) {
	if !t.running {
		return false
	}
	for i := uint16(0); i < cycles; i++ {
		t.counter++
		if t.counter == t.compare {
			t.overflow = true
		}
	}
	return t.overflow
}

// AckMatch clears a pending compare-match condition once the interrupt has
// been accepted.
func (t *ITU) AckMatch() { t.overflow = false }

// DMACChannel is one of the DMA controller's four transfer channels.
type DMACChannel struct {
	Source, Dest uint32
	Count        uint32
	enabled      bool
}

// DMAC is the on-chip DMA controller (spec.md §4.4 peripheral list).
type DMAC struct {
	Channels [4]DMACChannel
}

func NewDMAC() *DMAC { return &DMAC{} }

// Enable arms a channel for transfer.
func (d *DMAC) Enable(ch int, source, dest, count uint32) {
	d.Channels[ch] = DMACChannel{Source: source, Dest: dest, Count: count, enabled: true}
}

// Step performs one word of a channel's transfer via bus, returning true
// once the channel's count reaches zero (transfer complete).
func (d *DMAC) Step(ch int, bus interface {
	ReadWord(uint32) (uint16, error)
	WriteWord(uint32, uint16) error
}) (done bool, err error) {
	c := &d.Channels[ch]
	if !c.enabled || c.Count == 0 {
		return true, nil
	}
	v, err := bus.ReadWord(c.Source)
	if err != nil {
		return false, err
	}
	if err := bus.WriteWord(c.Dest, v); err != nil {
		return false, err
	}
	c.Source += 2
	c.Dest += 2
	c.Count--
	if c.Count == 0 {
		c.enabled = false
		return true, nil
	}
	return false, nil
}

// SCIChannel is one serial communication interface channel, exposing the
// byte-at-a-time Rx/Tx callbacks the serial-bridge test harness drives
// (spec.md's CbSerialRx/Tx fixtures).
type SCIChannel struct {
	txData   uint8
	txFull   bool
	rxData   uint8
	rxFull   bool
	OnTx     func(b uint8)
	OnRxPoll func() (b uint8, ok bool)
}

func (s *SCIChannel) Transmit(b uint8) {
	s.txData = b
	s.txFull = true
	if s.OnTx != nil {
		s.OnTx(b)
		s.txFull = false
	}
}

func (s *SCIChannel) Poll() {
	if s.rxFull || s.OnRxPoll == nil {
		return
	}
	if b, ok := s.OnRxPoll(); ok {
		s.rxData = b
		s.rxFull = true
	}
}

func (s *SCIChannel) Receive() (b uint8, ok bool) {
	if !s.rxFull {
		return 0, false
	}
	s.rxFull = false
	return s.rxData, true
}

// SCI is the pair of on-chip serial channels.
type SCI struct {
	Channels [2]SCIChannel
}

func NewSCI() *SCI { return &SCI{} }

// AD is the 4-channel analogue-to-digital converter. The Saturn's SH-1
// ties these to the peripheral controller port, which this core's scope
// does not model past exposing raw sampled values: conversion timing is not
// modelled, and Read returns whatever SetSample last stored (masked to 10
// bits).
type AD struct {
	values [4]uint16
}

func NewAD() *AD { return &AD{} }

func (a *AD) SetSample(ch int, v uint16) { a.values[ch] = v & 0x3ff }
func (a *AD) Read(ch int) uint16         { return a.values[ch] }
