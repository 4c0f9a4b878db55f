package dispatch_test

import (
	"testing"

	"github.com/jetsetilly/saturncore/internal/digest"
	"github.com/jetsetilly/saturncore/internal/dispatch"
	"github.com/jetsetilly/saturncore/test"
)

// spec.md §8 seed scenario 6: running the same sequence of per-line render
// data through the threaded dispatcher produces the same chained digest as
// folding it directly, single-threaded.
func TestThreadedEquivalence(t *testing.T) {
	const lines = 8
	const lineBytes = 16

	frames := make([][]byte, lines)
	for i := range frames {
		frames[i] = make([]byte, lineBytes)
		for j := range frames[i] {
			frames[i][j] = byte(i*31 + j*7)
		}
	}

	// single-threaded reference digest
	ref := digest.NewFrame(0, 0)
	for _, line := range frames {
		ref.Add(line)
	}

	// threaded: a producer goroutine posts RenderLine events carrying an
	// index into frames; the consumer folds them into its own digest in
	// the order it dequeues them (which, for a single-producer queue, is
	// the order they were pushed). The queue holds every line, since Push
	// reports overflow rather than waiting for the consumer.
	q := dispatch.NewQueue(lines)
	got := digest.NewFrame(0, 0)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			e, ok := q.Pop()
			if !ok {
				return
			}
			got.Add(frames[e.Line])
		}
	}()

	for i := range frames {
		err := q.Push(dispatch.Event{Kind: dispatch.EventRenderLine, Line: i})
		test.ExpectSuccess(t, err)
	}
	q.Shutdown()
	<-done

	test.ExpectEquality(t, got.Hash(), ref.Hash())
}

func TestSignalRendezvousAndReset(t *testing.T) {
	s := dispatch.NewSignal()
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	s.Fire()
	<-done

	// after Reset, a fresh Wait must block until the next Fire rather than
	// returning immediately because the old channel was left closed.
	s.Reset()
	secondDone := make(chan struct{})
	go func() {
		s.Wait()
		close(secondDone)
	}()

	select {
	case <-secondDone:
		t.Errorf("Wait returned before Fire was called after Reset")
	default:
	}

	s.Fire()
	<-secondDone
}

func TestQueueOverflowReported(t *testing.T) {
	q := dispatch.NewQueue(2)
	test.ExpectSuccess(t, q.Push(dispatch.Event{}))
	test.ExpectSuccess(t, q.Push(dispatch.Event{}))
	err := q.Push(dispatch.Event{})
	test.ExpectFailure(t, err)
}
