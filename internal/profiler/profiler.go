// Package profiler wires the ambient observability tooling the teacher
// ships alongside the emulation core itself: a live statsview dashboard for
// runtime counters, and a memviz dump of the object graph for debugging
// leaks in long rewind sessions. Grounded on the pack's profiling idiom
// (statsview's viewer.SetConfiguration/Start pattern), applied here to the
// Saturn core's per-frame cycle counts and queue depth rather than the
// teacher's own metrics.
package profiler

import (
	"bytes"
	"os"
	"sync"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Sampler is polled once a second by a started Dashboard; its readings (CPU
// cycles, dispatch queue depth) are kept in the Dashboard's history.
type Sampler interface {
	CPUCycles() uint64
	QueueDepth() int
}

// Sample is one polled reading, retained so a caller (or a future custom
// statsview series) can read back the dashboard's recent history rather than
// only ever seeing the live web view.
type Sample struct {
	CPUCycles  uint64
	QueueDepth int
}

// Dashboard owns a statsview instance bound to a Sampler, polled on an
// interval and retained as a small ring of recent samples.
type Dashboard struct {
	view    *statsview.Viewer
	sampler Sampler

	mu      sync.Mutex
	history []Sample
	cap     int
}

// NewDashboard configures a statsview viewer listening on addr (e.g.
// "127.0.0.1:18066", the library's default).
func NewDashboard(addr string, s Sampler) *Dashboard {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	return &Dashboard{view: statsview.New(), sampler: s, cap: 60}
}

// Start begins serving the dashboard in the background, along with a poller
// that samples s.Sampler once per interval and retains the last minute or so
// of readings. It does not block; callers stop it by cancelling the process
// or, in tests, simply never calling Start.
func (d *Dashboard) Start() {
	go d.view.Start()
	if d.sampler != nil {
		go d.poll(time.Second)
	}
}

func (d *Dashboard) poll(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		d.record(Sample{CPUCycles: d.sampler.CPUCycles(), QueueDepth: d.sampler.QueueDepth()})
	}
}

func (d *Dashboard) record(s Sample) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.history = append(d.history, s)
	if len(d.history) > d.cap {
		d.history = d.history[len(d.history)-d.cap:]
	}
}

// History returns a copy of the most recently polled samples, oldest first.
func (d *Dashboard) History() []Sample {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Sample, len(d.history))
	copy(out, d.history)
	return out
}

// DumpObjectGraph renders root's reachable object graph as Graphviz dot
// source, for inspecting save-state/snapshot retention during development.
func DumpObjectGraph(root interface{}) (string, error) {
	var buf bytes.Buffer
	memviz.Map(&buf, root)
	return buf.String(), nil
}

// WriteObjectGraph renders root's object graph straight to a file.
func WriteObjectGraph(path string, root interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, root)
	return nil
}
