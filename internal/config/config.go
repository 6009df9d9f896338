// Package config holds runtime options for the galaxy background.
package config

import (
	"errors"
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/galaxy-bg/internal/canvas"
)

const (
	DefaultFPS = 30
	MinFPS     = 1
	MaxFPS     = 120

	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
	DefaultGlowGain   = 4.0
	DefaultBackground = "#05060d"
)

var (
	ErrCellSize   = errors.New("cell size must be positive")
	ErrGlowGain   = errors.New("glow gain must not be negative")
	ErrBackground = errors.New("background must be a #rrggbb colour")
)

// Config holds options for a galaxy session.
type Config struct {
	FPS        int
	Seed       uint64 // 0 = seed from the clock
	CellWidth  float64
	CellHeight float64
	GlowGain   float64
	Background string
	ShowStatus bool
	LogLevel   string
	LogFile    string
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		FPS:        DefaultFPS,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		GlowGain:   DefaultGlowGain,
		Background: DefaultBackground,
		LogLevel:   "info",
	}
}

// Validate clamps the frame rate into range and rejects values that cannot
// be rendered.
func (c *Config) Validate() error {
	if c.FPS < MinFPS {
		c.FPS = MinFPS
	} else if c.FPS > MaxFPS {
		c.FPS = MaxFPS
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrCellSize, c.CellWidth, c.CellHeight)
	}
	if c.GlowGain < 0 {
		return fmt.Errorf("%w: %g", ErrGlowGain, c.GlowGain)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: %q", ErrBackground, c.Background)
	}
	return nil
}

// FrameInterval is the delay between animation ticks.
func (c Config) FrameInterval() time.Duration {
	fps := c.FPS
	if fps < MinFPS {
		fps = MinFPS
	}
	return time.Second / time.Duration(fps)
}

// CanvasOptions converts the config into rasterizer options.
func (c Config) CanvasOptions() canvas.Options {
	opts := canvas.DefaultOptions()
	opts.CellWidth = c.CellWidth
	opts.CellHeight = c.CellHeight
	opts.GlowGain = c.GlowGain
	if bg, err := colorful.Hex(c.Background); err == nil {
		opts.Background = bg
	}
	return opts
}
