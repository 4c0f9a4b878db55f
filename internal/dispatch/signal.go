package dispatch

import "sync"

// Signal is a resettable one-shot rendezvous: one side calls Wait, the
// other calls Fire, and Reset rearms it for the next frame. Grounded on
// internal/assert's goroutine-ownership idiom, generalising the teacher's
// single-goroutine "callback returns when done" synchronisation into an
// explicit handoff between the emulation and render goroutines (spec.md §7:
// "four named rendezvous points").
type Signal struct {
	ch   chan struct{}
	once sync.Once
}

// NewSignal constructs an unarmed signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Fire releases every pending Wait call, and every later one until Reset.
// Firing an already-fired signal before it is reset is a no-op.
func (s *Signal) Fire() {
	s.once.Do(func() { close(s.ch) })
}

// Wait blocks until Fire is called.
func (s *Signal) Wait() {
	<-s.ch
}

// Reset rearms the signal for the next round.
func (s *Signal) Reset() {
	s.ch = make(chan struct{})
	s.once = sync.Once{}
}

// Signals bundles the four named rendezvous points the dispatcher's two
// goroutines use each frame and around save/load (spec.md §7):
//   - RenderFinished: render goroutine signals it has consumed every event
//     for the frame just completed.
//   - FramebufferSwap: emulation goroutine signals VDP1 has swapped
//     framebuffers, so the render goroutine may begin reading the new one.
//   - PreSaveSync: emulation goroutine signals the render goroutine to pause
//     before a save-state snapshot is taken, so the snapshot observes a
//     consistent pair of VRAM/register state and render progress.
//   - PostLoadSync: emulation goroutine signals the render goroutine that a
//     load has completed and it may resume.
type Signals struct {
	RenderFinished  *Signal
	FramebufferSwap *Signal
	PreSaveSync     *Signal
	PostLoadSync    *Signal
}

// NewSignals constructs the four rendezvous points, unarmed.
func NewSignals() *Signals {
	return &Signals{
		RenderFinished:  NewSignal(),
		FramebufferSwap: NewSignal(),
		PreSaveSync:     NewSignal(),
		PostLoadSync:    NewSignal(),
	}
}
