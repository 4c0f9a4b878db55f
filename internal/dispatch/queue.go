// Package dispatch implements the threaded render dispatcher of spec.md
// §4.5: a single-producer/single-consumer queue of render events plus the
// four named rendezvous signals the emulation and render goroutines use to
// stay in lockstep across frame boundaries and save/load barriers (spec.md
// §5, §7). Grounded on the teacher's hardware/vcs.go, which runs the CPU
// and television on the same goroutine and signals frame completion via a
// plain callback; the Saturn's two-goroutine regime generalises that single
// callback into an explicit queue plus the internal/assert ownership
// discipline for the one writer/one reader each side owns.
package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/saturncore/internal/assert"
	"github.com/jetsetilly/saturncore/internal/curated"
)

// EventKind distinguishes the events the emulation goroutine posts to the
// render goroutine (spec.md §4.5).
type EventKind int

const (
	EventVRAMWrite EventKind = iota
	EventCRAMWrite
	EventRegisterWrite
	EventSpriteFrameBegin
	EventSpriteSwap
	EventSpriteErase
	EventRenderLine
	EventOddField
	EventShutdown
)

// Event is one entry posted through the queue. Address/Data carry
// VRAM/CRAM/register writes; Line carries a per-line render request.
type Event struct {
	Kind    EventKind
	Address uint32
	Data    uint32
	Line    int
}

// Queue is a fixed-capacity single-producer/single-consumer ring buffer of
// Events. Capacity is rounded up to the next power of two. Like the
// teacher's ring-buffer logger it uses a fixed-size backing array with
// wrapping indices, but here overflow is an error rather than an overwrite, since a
// dropped VRAM write would silently corrupt the next frame (spec.md §4.5:
// "the queue does not drop events").
type Queue struct {
	buf   []Event
	mask  uint64
	head  uint64 // next slot the consumer reads
	tail  uint64 // next slot the producer writes
	shut  int32

	producer assert.Owner
	consumer assert.Owner

	notify chan struct{}
	once   sync.Once
}

// NewQueue constructs a queue whose capacity is the next power of two at or
// above size.
func NewQueue(size int) *Queue {
	cap := 1
	for cap < size {
		cap <<= 1
	}
	return &Queue{
		buf:    make([]Event, cap),
		mask:   uint64(cap - 1),
		notify: make(chan struct{}, 1),
	}
}

// Push enqueues an event. It must only ever be called from the emulation
// goroutine (spec.md §7's single-writer discipline); a call from any other
// goroutine panics via the ownership assertion rather than racing silently.
func (q *Queue) Push(e Event) error {
	if !q.producer.IsOwner() {
		panic("dispatch: Queue.Push called from a goroutine other than its bound producer")
	}
	q.producer.Bind()

	if atomic.LoadInt32(&q.shut) != 0 {
		return curated.Errorf(curated.QueueShutdown)
	}

	head := atomic.LoadUint64(&q.head)
	tail := q.tail
	if tail-head >= uint64(len(q.buf)) {
		return curated.Errorf(curated.QueueOverflow, len(q.buf))
	}

	q.buf[tail&q.mask] = e
	atomic.StoreUint64(&q.tail, tail+1)

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// Pop dequeues the next event, blocking until one is available. ok is false
// only once the queue has been shut down and drained.
func (q *Queue) Pop() (e Event, ok bool) {
	if !q.consumer.IsOwner() {
		panic("dispatch: Queue.Pop called from a goroutine other than its bound consumer")
	}
	q.consumer.Bind()

	for {
		head := q.head
		tail := atomic.LoadUint64(&q.tail)
		if head != tail {
			e = q.buf[head&q.mask]
			atomic.StoreUint64(&q.head, head+1)
			return e, true
		}
		if atomic.LoadInt32(&q.shut) != 0 {
			// an event pushed just before Shutdown may not have been
			// visible in the tail read above; drain it before reporting.
			if atomic.LoadUint64(&q.tail) != head {
				continue
			}
			return Event{}, false
		}
		<-q.notify
	}
}

// Len reports the number of events currently queued. Safe to call from any
// goroutine; the result is advisory, since head/tail may move concurrently.
func (q *Queue) Len() int {
	head := atomic.LoadUint64(&q.head)
	tail := atomic.LoadUint64(&q.tail)
	return int(tail - head)
}

// Shutdown marks the queue closed; any blocked or future Pop drains what
// remains and then returns ok=false, and any future Push reports
// QueueShutdown.
func (q *Queue) Shutdown() {
	q.once.Do(func() {
		atomic.StoreInt32(&q.shut, 1)
		select {
		case q.notify <- struct{}{}:
		default:
		}
	})
}
