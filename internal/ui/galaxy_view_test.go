package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/galaxy-bg/internal/config"
	"github.com/litescript/galaxy-bg/internal/galaxy"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(showStatus bool) GalaxyModel {
	cfg := config.Default()
	cfg.Seed = 42
	cfg.ShowStatus = showStatus
	m := NewGalaxyModel(cfg, nil)
	m.now = func() time.Time { return epoch }
	return m
}

func update(t *testing.T, m GalaxyModel, msg tea.Msg) (GalaxyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GalaxyModel)
	if !ok {
		t.Fatalf("Update returned %T, want GalaxyModel", next)
	}
	return gm, cmd
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGalaxyModel_IdleUntilSized(t *testing.T) {
	m := newTestModel(false)

	if m.View() != "Initializing..." {
		t.Errorf("View() before size = %q", m.View())
	}
	m, _ = update(t, m, FrameMsg(epoch))
	if st := m.Stats(); st.State != "idle" || st.Tick != 0 {
		t.Errorf("stats before size = %+v, want idle", st)
	}
}

func TestGalaxyModel_WindowSizeStartsAnimator(t *testing.T) {
	m := newTestModel(false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	st := m.Stats()
	if st.State != "running" {
		t.Fatalf("state = %s, want running", st.State)
	}
	if st.Width != 800 || st.Height != 480 {
		t.Errorf("surface = %dx%d, want 800x480", st.Width, st.Height)
	}
	if st.Stars != galaxy.StarCount {
		t.Errorf("stars = %d, want %d", st.Stars, galaxy.StarCount)
	}
}

func TestGalaxyModel_StatusLineTakesARow(t *testing.T) {
	m := newTestModel(true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if st := m.Stats(); st.Height != 29*16 {
		t.Errorf("surface height = %d, want %d", st.Height, 29*16)
	}
	if !strings.Contains(m.View(), "galaxy-bg") {
		t.Error("status line missing from view")
	}

	m, _ = update(t, m, key("s"))
	if st := m.Stats(); st.Height != 30*16 {
		t.Errorf("surface height after hiding status = %d, want %d", st.Height, 30*16)
	}
	if strings.Contains(m.View(), "galaxy-bg") {
		t.Error("status line still shown after toggle")
	}
}

func TestGalaxyModel_FrameTicksAndReschedules(t *testing.T) {
	m := newTestModel(false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	var cmd tea.Cmd
	for i := 1; i <= 5; i++ {
		m, cmd = update(t, m, FrameMsg(epoch.Add(time.Duration(i)*33*time.Millisecond)))
		if cmd == nil {
			t.Fatalf("frame %d did not schedule the next frame", i)
		}
	}
	if st := m.Stats(); st.Tick != 5 {
		t.Errorf("tick = %d, want 5", st.Tick)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 24 {
		t.Errorf("view lines = %d, want 24", lines)
	}
	if m.fps < 25 || m.fps > 35 {
		t.Errorf("fps = %.1f, want about 30", m.fps)
	}
}

func TestGalaxyModel_PauseStopsTicks(t *testing.T) {
	m := newTestModel(true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, FrameMsg(epoch.Add(time.Millisecond)))

	m, _ = update(t, m, key(" "))
	if !m.paused {
		t.Fatal("space did not pause")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("status line does not show paused")
	}

	m, _ = update(t, m, FrameMsg(epoch.Add(time.Second)))
	if st := m.Stats(); st.Tick != 1 {
		t.Errorf("tick while paused = %d, want 1", st.Tick)
	}

	m.now = func() time.Time { return epoch.Add(2 * time.Second) }
	m, _ = update(t, m, key("p"))
	if m.paused {
		t.Fatal("p did not resume")
	}
	if m.pausedFor != 2*time.Second {
		t.Errorf("pausedFor = %v, want 2s", m.pausedFor)
	}
	m, _ = update(t, m, FrameMsg(epoch.Add(3*time.Second)))
	if st := m.Stats(); st.Tick != 2 {
		t.Errorf("tick after resume = %d, want 2", st.Tick)
	}
}

func TestGalaxyModel_ResizeRepopulates(t *testing.T) {
	m := newTestModel(false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})

	st := m.Stats()
	if st.Width != 400 || st.Height != 320 || st.Stars != galaxy.StarCount {
		t.Errorf("stats after resize = %+v", st)
	}
	for i, s := range m.anim.Stars() {
		if s.X < 0 || s.X >= 400 || s.Y < 0 || s.Y >= 320 {
			t.Errorf("star %d at (%v, %v) outside 400x320", i, s.X, s.Y)
		}
	}
}

func TestGalaxyModel_ReseedUsesNextSeed(t *testing.T) {
	m := newTestModel(false)
	var seeds []uint64
	m.sources = func(seed uint64) galaxy.Source {
		seeds = append(seeds, seed)
		return galaxy.NewSource(seed)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = update(t, m, key("r"))
	m, _ = update(t, m, key("r"))

	if len(seeds) != 2 || seeds[0] != 43 || seeds[1] != 44 {
		t.Errorf("seeds = %v, want [43 44]", seeds)
	}
	if st := m.Stats(); st.Stars != galaxy.StarCount {
		t.Errorf("stars after reseed = %d", st.Stars)
	}
}

func TestGalaxyModel_Quit(t *testing.T) {
	m := newTestModel(false)
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, m, k)
		if cmd == nil {
			t.Fatalf("%s returned no command", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k.String())
		}
	}
}
