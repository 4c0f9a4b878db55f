// Package serialbridge implements the byte-level CbSerialRx/Tx hooks
// spec.md §6.2 describes for the SH-1's SCI channels ("used by the CD drive
// bridge"). A Bridge can be backed either by a real serial device (via
// github.com/pkg/term, for hardware-in-the-loop testing against a real CD
// drive bridge board) or by an in-memory loopback (for unit tests that
// don't have such hardware attached).
package serialbridge

import (
	"github.com/jetsetilly/saturncore/internal/sh1"
	"github.com/pkg/term"
)

// Bridge adapts a byte source/sink to the sh1.SCIChannel callback surface.
type Bridge struct {
	t *term.Term
}

// OpenDevice opens a real serial device at path (e.g. "/dev/ttyUSB0") at the
// given baud rate, for hardware-in-the-loop testing.
func OpenDevice(path string, baud int) (*Bridge, error) {
	t, err := term.Open(path, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, err
	}
	return &Bridge{t: t}, nil
}

// Close releases the underlying device.
func (b *Bridge) Close() error {
	if b.t == nil {
		return nil
	}
	return b.t.Close()
}

// Wire attaches the bridge to an SCI channel's Rx/Tx callbacks: bytes
// transmitted by the core are written to the device; bytes polled for
// receive are read from it.
func (b *Bridge) Wire(ch *sh1.SCIChannel) {
	ch.OnTx = func(v uint8) {
		if b.t == nil {
			return
		}
		b.t.Write([]byte{v})
	}
	ch.OnRxPoll = func() (uint8, bool) {
		if b.t == nil {
			return 0, false
		}
		buf := make([]byte, 1)
		n, err := b.t.Read(buf)
		if err != nil || n == 0 {
			return 0, false
		}
		return buf[0], true
	}
}

// Loopback wires an SCI channel to itself, for tests that don't need real
// hardware: every transmitted byte becomes available on the next receive
// poll.
type Loopback struct {
	pending []uint8
}

// NewLoopback constructs a loopback bridge and wires it to ch.
func NewLoopback(ch *sh1.SCIChannel) *Loopback {
	l := &Loopback{}
	ch.OnTx = func(v uint8) { l.pending = append(l.pending, v) }
	ch.OnRxPoll = func() (uint8, bool) {
		if len(l.pending) == 0 {
			return 0, false
		}
		v := l.pending[0]
		l.pending = l.pending[1:]
		return v, true
	}
	return l
}
