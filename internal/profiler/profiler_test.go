package profiler_test

import (
	"testing"

	"github.com/jetsetilly/saturncore/internal/profiler"
	"github.com/jetsetilly/saturncore/test"
)

type fixedSampler struct {
	cycles uint64
	depth  int
}

func (f fixedSampler) CPUCycles() uint64 { return f.cycles }
func (f fixedSampler) QueueDepth() int   { return f.depth }

func TestDashboardHistoryStartsEmpty(t *testing.T) {
	d := profiler.NewDashboard("127.0.0.1:0", fixedSampler{cycles: 10, depth: 2})
	test.ExpectEquality(t, len(d.History()), 0)
}

func TestDumpObjectGraphProducesDotSource(t *testing.T) {
	type node struct {
		Value int
		Next  *node
	}
	root := &node{Value: 1, Next: &node{Value: 2}}

	out, err := profiler.DumpObjectGraph(root)
	test.ExpectSuccess(t, err)
	if len(out) == 0 {
		t.Fatal("expected non-empty graphviz output")
	}
}
