package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetcolor/internal/core"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	next   core.StepResult
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := g.next
	g.next = core.StepResult{State: res.State}
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.next.State }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, Options{
		Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1},
		Sound:  true,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	assert.NotNil(t, m.Init())
	assert.Equal(t, 1, g.resets)
}

func TestModelElapsedFromTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	t0 := time.Unix(100, 0)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))

	require.Len(t, g.frames, 3)
	assert.Equal(t, time.Duration(0), g.frames[0].Elapsed, "first tick has no delta")
	assert.Equal(t, 16*time.Millisecond, g.frames[1].Elapsed)
	assert.Equal(t, time.Duration(0), g.frames[2].Elapsed, "backwards clock is clamped")
}

func TestModelKeysReachNextTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))
	m, _ = update(t, m, TickMsg(time.Unix(2, 0)))

	require.Len(t, g.frames, 2)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotateRight}, g.frames[0].Actions)
	assert.Empty(t, g.frames[1].Actions, "input is cleared after a tick")
}

func TestModelSoundToggleAndBell(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	require.True(t, m.Sound())

	g.next = core.StepResult{Cues: []core.Cue{core.CueFinish}}
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))
	assert.True(t, strings.HasPrefix(m.View(), "\a"), "finish cue rings the bell")

	m, _ = update(t, m, TickMsg(time.Unix(2, 0)))
	assert.False(t, strings.HasPrefix(m.View(), "\a"), "bell is rung once")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.False(t, m.Sound())
	g.next = core.StepResult{Cues: []core.Cue{core.CueFinish}}
	m, _ = update(t, m, TickMsg(time.Unix(3, 0)))
	assert.False(t, strings.HasPrefix(m.View(), "\a"), "muted")
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	g.next = core.StepResult{Quit: true}
	m, cmd := update(t, m, TickMsg(time.Unix(1, 0)))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	m = newTestModel(g)
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Equal(t, 1, g.resets, "resize does not restart the game")
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 29, m.screen.Height(), "one row for help")
	assert.Contains(t, m.View(), "FAKE")
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewModel(g, Options{
		Config:        core.RuntimeConfig{ScreenW: 10, ScreenH: 3, TickRate: 60, Seed: 1},
		ScreenshotDir: dir,
	})

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "FAKE"))
}
