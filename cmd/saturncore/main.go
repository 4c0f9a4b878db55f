// Command saturncore wires the emulation core to its two front ends: an
// SDL2 presentation window for the composed VDP2 frame, and a bubbletea
// terminal status overlay reporting dispatch queue depth and CPU cycle
// counts. Grounded on the teacher's cmd/gopher2600 entry point, which plays
// the same role of parsing flags and handing off to the chosen GUI.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jetsetilly/saturncore/internal/dispatch"
	"github.com/jetsetilly/saturncore/internal/logger"
	"github.com/jetsetilly/saturncore/internal/presentation"
	"github.com/jetsetilly/saturncore/internal/prefs"
	"github.com/jetsetilly/saturncore/internal/profiler"
	"github.com/jetsetilly/saturncore/internal/tui"
	"github.com/jetsetilly/saturncore/internal/vdp2"
)

const (
	displayWidth  = 704 // VDP2 max horizontal resolution, spec.md §4.3
	displayHeight = 512
)

// dispatchSampler adapts a dispatch.Queue to profiler.Sampler.
type dispatchSampler struct {
	queue *dispatch.Queue
	cycle func() uint64
}

func (d dispatchSampler) CPUCycles() uint64 { return d.cycle() }
func (d dispatchSampler) QueueDepth() int   { return d.queue.Len() }

func main() {
	prefsPath := flag.String("prefs", "saturncore.prefs", "path to the preferences file")
	headless := flag.Bool("headless", false, "run without opening the SDL presentation window")
	statusAddr := flag.String("statusaddr", "127.0.0.1:18066", "address for the live statsview dashboard")
	flag.Parse()

	cfg, err := prefs.NewConfiguration(*prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "saturncore: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Load(); err != nil {
		logger.Logf("prefs", "using defaults: %v", err)
	}

	queue := dispatch.NewQueue(1024)
	var cycles uint64
	dashboard := profiler.NewDashboard(*statusAddr, dispatchSampler{queue: queue, cycle: func() uint64 { return cycles }})
	dashboard.Start()

	regs := vdp2.NewRegisters()
	compositor := vdp2.NewCompositor(regs)

	if *headless {
		runStatusOnly(dashboard)
		return
	}

	win, err := presentation.NewWindow("saturncore", displayWidth, displayHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "saturncore: %v\n", err)
		os.Exit(1)
	}
	defer win.Close()

	for !win.PollQuit() {
		frame := make([]byte, 0, displayWidth*displayHeight*4)
		for y := 0; y < displayHeight; y++ {
			frame = append(frame, compositor.RenderLine(y, displayWidth)...)
		}
		if err := win.Present(frame); err != nil {
			logger.Logf("saturncore", "present: %v", err)
			break
		}
	}
}

func runStatusOnly(dashboard *profiler.Dashboard) {
	p := tea.NewProgram(tui.NewStatus(dashboard))
	if err := p.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "saturncore: %v\n", err)
		os.Exit(1)
	}
}
