// Package tui is a terminal view of the hangar: one bar per panel line, the
// emergency indicator and the camera, with keys driving the scene.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/coreman2200/hangarbay/internal/app"
	"github.com/coreman2200/hangarbay/internal/drill"
	"github.com/coreman2200/hangarbay/internal/input"
	"github.com/coreman2200/hangarbay/internal/panel"
	"github.com/coreman2200/hangarbay/internal/scene"
)

const barWidth = 24

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	alarmStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
	calmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	stateStyle = map[panel.State]lipgloss.Style{
		panel.Idle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		panel.Opening: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		panel.Closing: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	}
)

// bubbletea key names mapped onto the scene's keys
var keys = map[string]input.Key{
	"w":      input.KeyW,
	"a":      input.KeyA,
	"s":      input.KeyS,
	"d":      input.KeyD,
	" ":      input.KeySpace,
	"esc":    input.KeyEscape,
	"pgup":   input.KeyPageUp,
	"pgdown": input.KeyPageDown,
}

type frameMsg struct {
	dt float32 // zero takes the delta from the core clock
}

type Model struct {
	core   *app.Core
	period time.Duration

	snap    scene.Snapshot
	frameID uint64
	calls   int
	err     error
}

func New(core *app.Core, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{core: core, period: time.Second / time.Duration(fps), snap: core.Scene.Snapshot()}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg.String())
	case tea.MouseMsg:
		// one cell is a coarse step, so scale up to cursor-like units
		m.core.Look(float64(msg.X)*8, float64(msg.Y)*8)
	case frameMsg:
		dt := msg.dt
		if dt == 0 {
			dt = m.core.Clock.Tick()
		}
		f, err := m.core.Step(dt)
		m.err = err
		if f != nil {
			m.frameID, m.calls = f.ID, len(f.Calls)
		}
		m.snap = m.core.Scene.Snapshot()
		if msg.dt != 0 {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) key(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "o":
		m.core.Command(input.OpenAll)
	case "c":
		m.core.Command(input.CloseAll)
	case "r":
		if err := m.core.RunDrill(drill.Plan{Kind: drill.Cycle}); err != nil {
			m.err = err
		}
	default:
		if key, ok := keys[k]; ok {
			if cmd, ok := input.Translate(key, input.Press); ok {
				m.core.Command(cmd)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("hangar bay"))
	b.WriteString(fmt.Sprintf("  frame %d  calls %d  policy %s\n\n", m.frameID, m.calls, m.snap.Policy))

	for _, l := range m.snap.Lines {
		b.WriteString(fmt.Sprintf("%-10s %s %s\n", l.Name, bar(l.Progress), stateStyle[l.State].Render(string(l.State))))
	}
	b.WriteString("\n")

	if m.snap.Emergency {
		b.WriteString(alarmStyle.Render("EMERGENCY"))
	} else {
		b.WriteString(calmStyle.Render("emergency off"))
	}
	mode := "fly"
	if m.snap.EditMode {
		mode = "edit"
	}
	p := m.snap.Camera.Position
	b.WriteString(fmt.Sprintf("  %s  cam (%.1f, %.1f, %.1f)\n", mode, p.X(), p.Y(), p.Z()))
	if m.core.DrillRunning() {
		b.WriteString("drill running\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("\npgdn/o open  pgup/c close  r drill  esc edit  wasd/space move  q quit"))
	return b.String()
}

func bar(progress float32) string {
	n := int(progress*barWidth + 0.5)
	if n > barWidth {
		n = barWidth
	}
	if n < 0 {
		n = 0
	}
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", barWidth-n) + "]"
}
