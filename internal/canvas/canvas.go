// Package canvas rasterizes galaxy frames onto a grid of terminal cells.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/galaxy-bg/internal/galaxy"
)

const (
	glyphBlank      = ' '
	glyphStarSmall  = '·' // radius < 1.0
	glyphStarMedium = '•' // radius < 1.8
	glyphStarLarge  = '✦'
	glyphTrailHead  = '✸'
	glyphHoriz      = '─'
	glyphVert       = '│'
	glyphFall       = '╲' // down-right in screen space
	glyphRise       = '╱'
)

// Options controls how surface pixels map onto cells.
type Options struct {
	// CellWidth and CellHeight are the surface pixels covered by one cell.
	CellWidth  float64
	CellHeight float64

	Background colorful.Color

	// GlowGain scales glow alpha; terminal colour depth swallows the faint
	// gradients a pixel surface shows.
	GlowGain float64
}

// DefaultOptions returns an 8x16 pixel cell over a near-black background.
func DefaultOptions() Options {
	bg, _ := colorful.Hex("#05060d")
	return Options{
		CellWidth:  8,
		CellHeight: 16,
		Background: bg,
		GlowGain:   4,
	}
}

// Cell is one rasterized terminal cell.
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color

	// weight is the alpha of whatever currently owns the glyph.
	weight float64
}

// Canvas is a cols x rows grid of cells.
type Canvas struct {
	cols  int
	rows  int
	opts  Options
	cells []Cell
}

// New creates a canvas. Non-positive cell sizes fall back to the defaults.
func New(cols, rows int, opts Options) *Canvas {
	def := DefaultOptions()
	if opts.CellWidth <= 0 {
		opts.CellWidth = def.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = def.CellHeight
	}
	c := &Canvas{opts: opts}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid dimensions and blanks every cell.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols = cols
	c.rows = rows
	c.cells = make([]Cell, cols*rows)
	c.clear()
}

// Dims returns the grid size in cells.
func (c *Canvas) Dims() (cols, rows int) {
	return c.cols, c.rows
}

// SurfaceSize returns the pixel surface the grid represents.
func (c *Canvas) SurfaceSize() (width, height int) {
	return int(float64(c.cols) * c.opts.CellWidth), int(float64(c.rows) * c.opts.CellHeight)
}

// Size implements galaxy.Target.
func (c *Canvas) Size() (int, int) {
	return c.SurfaceSize()
}

// Cell returns the cell at col, row. Out of range returns a zero Cell.
func (c *Canvas) Cell(col, row int) Cell {
	if !c.inBounds(col, row) {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) inBounds(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

// Draw applies every command in the frame in order.
func (c *Canvas) Draw(f galaxy.Frame) {
	for _, cmd := range f.Commands {
		switch cmd := cmd.(type) {
		case galaxy.Clear:
			c.clear()
		case galaxy.RadialGlow:
			c.glow(cmd)
		case galaxy.Circle:
			c.circle(cmd)
		case galaxy.Trail:
			c.trail(cmd)
		}
	}
}

func (c *Canvas) clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: glyphBlank, Fg: c.opts.Background, Bg: c.opts.Background}
	}
}

func (c *Canvas) glow(g galaxy.RadialGlow) {
	if g.Radius <= 0 {
		return
	}
	peak := math.Min(1, g.Alpha*c.opts.GlowGain)
	for row := 0; row < c.rows; row++ {
		py := (float64(row) + 0.5) * c.opts.CellHeight
		for col := 0; col < c.cols; col++ {
			px := (float64(col) + 0.5) * c.opts.CellWidth
			d := math.Hypot(px-g.X, py-g.Y)
			if d >= g.Radius {
				continue
			}
			cell := &c.cells[row*c.cols+col]
			cell.Bg = cell.Bg.BlendRgb(g.Color, peak*(1-d/g.Radius))
			if cell.Rune == glyphBlank {
				cell.Fg = cell.Bg
			}
		}
	}
}

func (c *Canvas) circle(s galaxy.Circle) {
	col, row := c.cellAt(s.X, s.Y)
	if !c.inBounds(col, row) {
		return
	}
	alpha := clamp01(s.Alpha)
	cell := &c.cells[row*c.cols+col]
	if cell.Rune != glyphBlank && alpha < cell.weight {
		return
	}
	cell.Rune = starGlyph(s.Radius)
	cell.Fg = cell.Bg.BlendRgb(s.Color, alpha)
	cell.weight = alpha
}

func (c *Canvas) trail(t galaxy.Trail) {
	tc, tr := t.TailX/c.opts.CellWidth, t.TailY/c.opts.CellHeight
	hc, hr := t.HeadX/c.opts.CellWidth, t.HeadY/c.opts.CellHeight
	dc, dr := hc-tc, hr-tr

	steps := int(math.Ceil(math.Max(math.Abs(dc), math.Abs(dr))))
	if steps < 1 {
		steps = 1
	}
	body := strokeGlyph(dc, dr)
	head := clamp01(t.HeadAlpha)

	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		col := int(math.Floor(tc + dc*f))
		row := int(math.Floor(tr + dr*f))
		if !c.inBounds(col, row) {
			continue
		}
		alpha := head * f
		cell := &c.cells[row*c.cols+col]
		if alpha <= 0 || alpha < cell.weight {
			continue
		}
		cell.Rune = body
		if i == steps {
			cell.Rune = glyphTrailHead
		}
		cell.Fg = cell.Bg.BlendRgb(t.Color, alpha)
		cell.weight = alpha
	}
}

func (c *Canvas) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / c.opts.CellWidth)), int(math.Floor(y / c.opts.CellHeight))
}

// starGlyph picks a glyph by star radius.
func starGlyph(radius float64) rune {
	switch {
	case radius < 1.0:
		return glyphStarSmall
	case radius < 1.8:
		return glyphStarMedium
	default:
		return glyphStarLarge
	}
}

// strokeGlyph picks a line glyph for a direction in cell space.
func strokeGlyph(dc, dr float64) rune {
	ac, ar := math.Abs(dc), math.Abs(dr)
	switch {
	case ar < ac*0.3:
		return glyphHoriz
	case ac < ar*0.3:
		return glyphVert
	case (dc > 0) == (dr > 0):
		return glyphFall
	default:
		return glyphRise
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// String renders the grid, one line per row, merging runs of cells that
// share colours into a single styled span.
func (c *Canvas) String() string {
	var b strings.Builder
	var run strings.Builder

	for row := 0; row < c.rows; row++ {
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fg)).
				Background(lipgloss.Color(bg))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			cfg, cbg := cell.Fg.Clamped().Hex(), cell.Bg.Clamped().Hex()
			if cfg != fg || cbg != bg {
				flush()
				fg, bg = cfg, cbg
			}
			run.WriteRune(cell.Rune)
		}
		flush()

		if row < c.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PlainString renders the glyphs only, without styling.
func (c *Canvas) PlainString() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.cells[row*c.cols+col].Rune)
		}
		if row < c.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
