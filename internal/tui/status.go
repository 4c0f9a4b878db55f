// Package tui implements the terminal status display cmd/saturncore runs in
// headless mode, in place of the SDL presentation window: CPU cycle count
// and queue depth from the most recent profiler sample, refreshed on a tick. Grounded on the bubbletea Model in
// newhook-6502/monitor (tea.Tick-driven refresh, lipgloss border styling),
// adapted from a 6502 single-step debugger to a read-only live status
// readout over internal/profiler.Dashboard.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/saturncore/internal/profiler"
)

var (
	borderColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1).
			Width(40)

	titleStyle = lipgloss.NewStyle().Bold(true)
)

type tickMsg struct{}

func doTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// Status is a read-only bubbletea model that polls a profiler.Dashboard's
// history and renders its most recent sample.
type Status struct {
	dashboard *profiler.Dashboard
	latest    profiler.Sample
	haveAny   bool
}

// NewStatus returns a Status model polling dashboard.
func NewStatus(dashboard *profiler.Dashboard) Status {
	return Status{dashboard: dashboard}
}

func (s Status) Init() tea.Cmd { return doTick() }

func (s Status) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if h := s.dashboard.History(); len(h) > 0 {
			s.latest = h[len(h)-1]
			s.haveAny = true
		}
		return s, doTick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s Status) View() string {
	body := "waiting for first sample..."
	if s.haveAny {
		body = fmt.Sprintf("cpu cycles: %d\nqueue depth: %d", s.latest.CPUCycles, s.latest.QueueDepth)
	}
	return panelStyle.Render(titleStyle.Render("saturncore status") + "\n\n" + body)
}
