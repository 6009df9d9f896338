// Package ui hosts the galaxy animator in a Bubble Tea program.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/galaxy-bg/internal/canvas"
	"github.com/litescript/galaxy-bg/internal/config"
	"github.com/litescript/galaxy-bg/internal/galaxy"
	"github.com/litescript/galaxy-bg/internal/logging"
	"github.com/litescript/galaxy-bg/internal/version"
)

const (
	statusHeight = 1
	fpsSmoothing = 0.1 // EMA weight of the newest frame
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2DD4BF")) // teal
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))                  // muted purple
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42"))             // orange
)

// FrameMsg drives one animation tick.
type FrameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// GalaxyModel hosts the animator on a terminal canvas.
type GalaxyModel struct {
	cfg    config.Config
	log    *logging.Logger
	anim   *galaxy.Animator
	canvas *canvas.Canvas

	now     func() time.Time
	sources func(seed uint64) galaxy.Source

	width      int
	height     int
	ready      bool
	paused     bool
	showStatus bool

	start     time.Time
	pausedAt  time.Time
	pausedFor time.Duration
	lastFrame time.Time
	fps       float64
	reseeds   uint64

	rendered string
}

// NewGalaxyModel creates the model. The animator stays idle until the first
// window size arrives.
func NewGalaxyModel(cfg config.Config, log *logging.Logger) GalaxyModel {
	if log == nil {
		log = logging.Discard()
	}
	c := canvas.New(0, 0, cfg.CanvasOptions())
	return GalaxyModel{
		cfg:        cfg,
		log:        log.With("ui"),
		anim:       galaxy.New(c, galaxy.NewSource(cfg.Seed)),
		canvas:     c,
		now:        time.Now,
		sources:    galaxy.NewSource,
		showStatus: cfg.ShowStatus,
	}
}

// Init implements tea.Model.
func (m GalaxyModel) Init() tea.Cmd {
	return frameCmd(m.cfg.FrameInterval())
}

// Update implements tea.Model.
func (m GalaxyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "p":
			m = m.togglePause()
		case "r":
			m = m.reseed()
		case "s":
			m.showStatus = !m.showStatus
			m = m.layout()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m = m.layout()

	case FrameMsg:
		m = m.frame(time.Time(msg))
		return m, frameCmd(m.cfg.FrameInterval())
	}

	return m, nil
}

// layout sizes the canvas to the window and starts or resizes the animator.
func (m GalaxyModel) layout() GalaxyModel {
	if !m.ready {
		return m
	}
	rows := m.height
	if m.showStatus {
		rows -= statusHeight
	}
	if rows < 0 {
		rows = 0
	}
	m.canvas.Resize(m.width, rows)
	w, h := m.canvas.SurfaceSize()

	if m.anim.State() == galaxy.StateIdle {
		if m.anim.Start() {
			m.start = m.now()
			m.log.Info("started on %dx%d cells (%dx%d px)", m.width, rows, w, h)
		}
	} else {
		m.anim.Resize(w, h)
		m.log.Debug("resized to %dx%d cells (%dx%d px)", m.width, rows, w, h)
	}
	m.rendered = m.canvas.String()
	return m
}

func (m GalaxyModel) frame(t time.Time) GalaxyModel {
	if m.paused || m.anim.State() != galaxy.StateRunning {
		return m
	}

	if !m.lastFrame.IsZero() {
		if dt := t.Sub(m.lastFrame).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps += (inst - m.fps) * fpsSmoothing
			}
		}
	}
	m.lastFrame = t

	elapsed := t.Sub(m.start) - m.pausedFor
	if elapsed < 0 {
		elapsed = 0
	}
	m.canvas.Draw(m.anim.Tick(elapsed))
	m.rendered = m.canvas.String()
	return m
}

func (m GalaxyModel) togglePause() GalaxyModel {
	now := m.now()
	if m.paused {
		m.pausedFor += now.Sub(m.pausedAt)
		m.paused = false
		m.lastFrame = time.Time{}
		m.log.Debug("resumed after %s", now.Sub(m.pausedAt).Round(time.Millisecond))
	} else {
		m.paused = true
		m.pausedAt = now
		m.log.Debug("paused at tick %d", m.anim.Stats().Tick)
	}
	return m
}

func (m GalaxyModel) reseed() GalaxyModel {
	m.reseeds++
	seed := m.cfg.Seed
	if seed != 0 {
		seed += m.reseeds
	}
	m.anim.Reseed(m.sources(seed))
	m.log.Debug("reseeded (%d)", m.reseeds)
	return m
}

// View implements tea.Model.
func (m GalaxyModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if !m.showStatus {
		return m.rendered
	}
	if m.rendered == "" {
		return m.renderStatus()
	}
	return m.rendered + "\n" + m.renderStatus()
}

func (m GalaxyModel) renderStatus() string {
	st := m.anim.Stats()
	sep := dimStyle.Render(" | ")

	line := titleStyle.Render("✦ galaxy-bg") + dimStyle.Render(" v"+version.Version) + sep +
		dimStyle.Render(fmt.Sprintf("tick %d", st.Tick)) + sep +
		dimStyle.Render(fmt.Sprintf("stars %d", st.Stars)) + sep +
		accentStyle.Render(fmt.Sprintf("shooting %d", st.ShootingStars)) + sep +
		dimStyle.Render(fmt.Sprintf("%.1f fps", m.fps)) + sep +
		dimStyle.Render(fmt.Sprintf("%dx%dpx", st.Width, st.Height))

	if m.paused {
		line += sep + accentStyle.Render("paused")
	}
	line += sep + dimStyle.Render("space: pause | r: reseed | s: status | q: quit")
	return line
}

// Stats exposes the animator counters.
func (m GalaxyModel) Stats() galaxy.Stats {
	return m.anim.Stats()
}
