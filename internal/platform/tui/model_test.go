package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// stubGame records what the model asks of it.
type stubGame struct {
	ticks    int
	resets   int
	keys     []core.Key
	gameOver bool
	score    int
}

func (g *stubGame) ID() string             { return "stub" }
func (g *stubGame) Title() string          { return "Stub" }
func (g *stubGame) Tick()                  { g.ticks++ }
func (g *stubGame) HandleInput(k core.Key) { g.keys = append(g.keys, k) }

func (g *stubGame) Reset() {
	g.resets++
	g.gameOver = false
	g.score = 0
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.Text(0, 0, "stub", core.ColorWhite)
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, HighScore: g.score, GameOver: g.gameOver}
}

func newTestModel(g *stubGame, logs *bytes.Buffer) Model {
	cfg := core.DefaultConfig()
	return NewModel(g, cfg, Options{FPS: 60, Logger: log.New(logs)})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestFramesDriveTicks(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, &bytes.Buffer{})
	t0 := time.Unix(0, 0)

	m, cmd := update(t, m, FrameMsg(t0))
	if cmd == nil {
		t.Fatal("frame should schedule the next frame")
	}
	m, _ = update(t, m, FrameMsg(t0.Add(375*time.Millisecond)))
	if g.ticks != 3 {
		t.Errorf("ticks = %d, want 3", g.ticks)
	}
	_, _ = update(t, m, FrameMsg(t0.Add(400*time.Millisecond)))
	if g.ticks != 3 {
		t.Errorf("ticks = %d, want 3", g.ticks)
	}
}

func TestDirectionKeysForwarded(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, &bytes.Buffer{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runes("a"))
	_, _ = update(t, m, runes("x"))

	want := []core.Key{core.KeyUp, core.KeyLeft}
	if len(g.keys) != len(want) {
		t.Fatalf("keys = %v, want %v", g.keys, want)
	}
	for i := range want {
		if g.keys[i] != want[i] {
			t.Errorf("keys[%d] = %v, want %v", i, g.keys[i], want[i])
		}
	}
}

func TestPauseStopsTicksAndInput(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, &bytes.Buffer{})
	t0 := time.Unix(0, 0)

	m, _ = update(t, m, FrameMsg(t0))
	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, FrameMsg(t0.Add(time.Second)))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if g.ticks != 0 || len(g.keys) != 0 {
		t.Fatalf("paused model ticked %d times, forwarded %v", g.ticks, g.keys)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show pause marker")
	}

	// Resume: the paused second is not replayed.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, FrameMsg(t0.Add(2*time.Second)))
	_, _ = update(t, m, FrameMsg(t0.Add(2*time.Second+125*time.Millisecond)))
	if g.ticks != 1 {
		t.Errorf("ticks after resume = %d, want 1", g.ticks)
	}
}

func TestRestartOnlyWhenGameOver(t *testing.T) {
	g := &stubGame{}
	var logs bytes.Buffer
	m := newTestModel(g, &logs)

	m, _ = update(t, m, runes("r"))
	if g.resets != 0 {
		t.Fatalf("restart while playing reset the game")
	}

	g.gameOver = true
	g.score = 4
	m, _ = update(t, m, FrameMsg(time.Unix(0, 0)))
	if !strings.Contains(logs.String(), "game over") {
		t.Errorf("game over not logged: %q", logs.String())
	}

	_, _ = update(t, m, runes("r"))
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if !strings.Contains(logs.String(), "restart") {
		t.Errorf("restart not logged: %q", logs.String())
	}
}

func TestGameOverLoggedOnce(t *testing.T) {
	g := &stubGame{gameOver: true}
	var logs bytes.Buffer
	m := newTestModel(g, &logs)
	t0 := time.Unix(0, 0)

	for i := range 5 {
		m, _ = update(t, m, FrameMsg(t0.Add(time.Duration(i)*time.Second)))
	}
	if n := strings.Count(logs.String(), "game over"); n != 1 {
		t.Errorf("game over logged %d times, want 1", n)
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		g := &stubGame{}
		m := newTestModel(g, &bytes.Buffer{})

		m, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", msg)
		}
		if m.View() != "" {
			t.Errorf("%s: view after quit should be empty", msg)
		}
	}
}

func TestResizeReservesFooter(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, &bytes.Buffer{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runes("?"))
	if m.screen.Height() >= 39 {
		t.Errorf("full help should take more rows, screen height %d", m.screen.Height())
	}
	if g.resets != 0 {
		t.Error("resize must not reset the game")
	}
}

func TestViewRendersGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g, &bytes.Buffer{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Errorf("view missing game output: %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("view missing help footer: %q", view)
	}
}
