package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/hangarbay/internal/app"
	"github.com/coreman2200/hangarbay/internal/scene"
)

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := scene.DefaultConfig()
	cfg.Stars.Count = 0
	core, err := app.InitCore(app.Options{Scene: cfg, Log: zerolog.Nop()})
	require.NoError(t, err)
	return New(core, 30)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestPageDownOpensAndShowsAlarm(t *testing.T) {
	m := newModel(t)
	assert.Contains(t, m.View(), "emergency off")
	assert.Len(t, m.snap.Lines, 10)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	m = update(t, m, frameMsg{dt: 0.5})
	assert.True(t, m.snap.Emergency)
	assert.Equal(t, uint64(1), m.frameID)
	view := m.View()
	assert.Contains(t, view, "EMERGENCY")
	assert.Contains(t, view, "opening")
	assert.Contains(t, view, "row0-left")
}

func TestEscapeLeavesEditModeAndMoves(t *testing.T) {
	m := newModel(t)
	require.True(t, m.snap.EditMode)
	start := m.snap.Camera.Position

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m = update(t, m, frameMsg{dt: 0.03})
	assert.False(t, m.snap.EditMode)
	assert.InDelta(t, start.X()+1.1, m.snap.Camera.Position.X(), 1e-5)
	assert.Contains(t, m.View(), "fly")
}

func TestDrillKeyAndQuit(t *testing.T) {
	m := newModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, m.core.DrillRunning())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Error(t, m.err)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBar(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat(".", barWidth)+"]", bar(0))
	assert.Equal(t, "["+strings.Repeat("#", barWidth)+"]", bar(1))
	assert.Equal(t, "["+strings.Repeat("#", barWidth/2)+strings.Repeat(".", barWidth/2)+"]", bar(0.5))
}
