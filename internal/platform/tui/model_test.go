package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets   []core.RuntimeConfig
	resizes  [][2]int
	steps    [][]core.Action
	next     core.StepResult
	rendered int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(input core.InputFrame) core.StepResult {
	var actions []core.Action
	for a := core.ActionUp; a <= core.ActionQuit; a++ {
		if input.Has(a) {
			actions = append(actions, a)
		}
	}
	g.steps = append(g.steps, actions)
	return g.next
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorNone)
}

func (g *fakeGame) State() core.GameState { return g.next.State }

// resizableGame also implements Resizer.
type resizableGame struct {
	fakeGame
}

func (g *resizableGame) Resize(w, h int) {
	g.resizes = append(g.resizes, [2]int{w, h})
}

func newTestModel(g Game) Model {
	r := lipgloss.NewRenderer(io.Discard)
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 7}, nil, r)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestNewModelReservesFooter(t *testing.T) {
	m := newTestModel(&fakeGame{})

	if m.screen.Width() != 40 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, expected 40x11", m.screen.Width(), m.screen.Height())
	}
	if m.config.Tick != core.DefaultTick {
		t.Errorf("Tick = %v, expected default", m.config.Tick)
	}
}

func TestNewModelPicksSeed(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{}, nil, nil)
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if len(g.resets) != 1 {
		t.Fatalf("Reset called %d times, expected 1", len(g.resets))
	}
	if got := g.resets[0]; got.ScreenW != 40 || got.ScreenH != 11 || got.Seed != 7 {
		t.Errorf("Reset config = %+v", got)
	}
}

func TestKeysFeedNextTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runeKey('r'))
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should re-arm the loop")
	}
	if len(g.steps) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.steps))
	}
	got := g.steps[0]
	if len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionRestart {
		t.Errorf("actions = %v, expected [Up Restart]", got)
	}

	// Input is consumed by the tick
	update(t, m, TickMsg(time.Now()))
	if len(g.steps[1]) != 0 {
		t.Errorf("second tick saw stale actions %v", g.steps[1])
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := newTestModel(&fakeGame{})
			m, cmd := update(t, m, msg)

			if !m.quitting {
				t.Error("model should be quitting")
			}
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command returned %T, expected tea.QuitMsg", cmd())
			}
			if m.View() != "" {
				t.Error("View should be empty after quit")
			}
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(&fakeGame{})

	short := m.View()
	if lines := strings.Count(short, "\n") + 1; lines != 12 {
		t.Errorf("short help view has %d lines, expected 12", lines)
	}

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should show the full help")
	}
	full := m.View()
	if lines := strings.Count(full, "\n") + 1; lines != 12 {
		t.Errorf("full help view has %d lines, expected 12", lines)
	}
	if !strings.Contains(full, "move up") {
		t.Errorf("full help missing bindings:\n%s", full)
	}

	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should hide the full help again")
	}
}

func TestViewRendersGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if g.rendered != 1 {
		t.Errorf("Render called %d times, expected 1", g.rendered)
	}
	if !strings.HasPrefix(view, "fake") {
		t.Errorf("view should start with the game, got %q", view)
	}
	if !strings.Contains(view, "restart") {
		t.Errorf("view should end with the help footer, got %q", view)
	}
}

func TestResizeResetsPlainGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if len(g.resets) != 1 || g.resets[0].ScreenH != 29 {
		t.Errorf("resets = %+v, expected one reset at height 29", g.resets)
	}
}

func TestResizeUsesResizer(t *testing.T) {
	g := &resizableGame{}
	m := newTestModel(g)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resets) != 0 {
		t.Errorf("Reset called %d times, expected the game to resize in place", len(g.resets))
	}
	if len(g.resizes) != 1 || g.resizes[0] != [2]int{100, 29} {
		t.Errorf("resizes = %v, expected [[100 29]]", g.resizes)
	}
}

func TestTickLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	g := &fakeGame{next: core.StepResult{
		State: core.GameState{Score: 3, GameOver: true},
		Events: []core.Event{
			{Kind: core.EventGameOver, Score: 3, Length: 9, Cause: "wall"},
		},
	}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 1}, logger, nil)

	m, _ = update(t, m, TickMsg(time.Now()))

	if !m.gameState.GameOver || m.gameState.Score != 3 {
		t.Errorf("gameState = %+v, expected the step result", m.gameState)
	}
	out := buf.String()
	for _, want := range []string{"game_over", "cause=wall", "score=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
