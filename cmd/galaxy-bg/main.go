// Command galaxy-bg draws an animated galaxy background in the terminal.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/galaxy-bg/internal/canvas"
	"github.com/litescript/galaxy-bg/internal/config"
	"github.com/litescript/galaxy-bg/internal/galaxy"
	"github.com/litescript/galaxy-bg/internal/logging"
	"github.com/litescript/galaxy-bg/internal/ui"
	"github.com/litescript/galaxy-bg/internal/version"
)

const (
	fallbackCols = 80
	fallbackRows = 24
)

// snapshot flags
var (
	snapCols  int
	snapRows  int
	snapTicks int
	snapJSON  bool
	snapPlain bool
)

func main() {
	cfg := config.Default()
	root := newRootCmd(&cfg)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galaxy-bg",
		Short: "Animated galaxy background for the terminal",
		Long: `galaxy-bg fills the terminal with a slowly falling, flickering star field,
occasional shooting stars and two drifting nebula glows.

Keys: space/p pause, r reseed, s status line, q quit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), *cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = from clock)")
	pf.Float64Var(&cfg.CellWidth, "cell-width", cfg.CellWidth, "Surface pixels per terminal column")
	pf.Float64Var(&cfg.CellHeight, "cell-height", cfg.CellHeight, "Surface pixels per terminal row")
	pf.Float64Var(&cfg.GlowGain, "glow-gain", cfg.GlowGain, "Multiplier for nebula glow alpha")
	pf.StringVar(&cfg.Background, "background", cfg.Background, "Background colour (#rrggbb)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")

	rootCmd.Flags().IntVar(&cfg.FPS, "fps", cfg.FPS, "Animation frames per second")
	rootCmd.Flags().BoolVar(&cfg.ShowStatus, "status", cfg.ShowStatus, "Show the status line")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cfg.Validate()
	}

	rootCmd.AddCommand(newSnapshotCmd(cfg), newVersionCmd())
	return rootCmd
}

func newSnapshotCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Simulate a number of ticks and print the final frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd.OutOrStdout(), *cfg)
		},
	}
	cmd.Flags().IntVar(&snapCols, "cols", 0, "Columns (default: terminal width)")
	cmd.Flags().IntVar(&snapRows, "rows", 0, "Rows (default: terminal height)")
	cmd.Flags().IntVar(&snapTicks, "ticks", 120, "Ticks to simulate before printing")
	cmd.Flags().BoolVar(&snapJSON, "json", false, "Print animator stats as JSON instead of the frame")
	cmd.Flags().BoolVar(&snapPlain, "plain", false, "Print glyphs without colour")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "galaxy-bg v%s\n", version.Version)
		},
	}
}

// newLogger routes logs to the configured file. Without one, interactive
// sessions discard logs so they never land on the alt screen.
func newLogger(cfg config.Config, interactive bool) (*logging.Logger, io.Closer, error) {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		return logging.Open(cfg.LogFile, level)
	}
	if interactive {
		return logging.Discard(), nopCloser{}, nil
	}
	return logging.New(level), nopCloser{}, nil
}

func runTUI(ctx context.Context, cfg config.Config) error {
	logger, closer, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewGalaxyModel(cfg, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(cfg.FPS),
	)

	logger.Info("galaxy-bg v%s starting at %d fps", version.Version, cfg.FPS)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runSnapshot(w io.Writer, cfg config.Config) error {
	logger, closer, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	cols, rows := snapCols, snapRows
	if cols <= 0 || rows <= 0 {
		tc, tr := terminalSize()
		if cols <= 0 {
			cols = tc
		}
		if rows <= 0 {
			rows = tr
		}
	}
	if snapTicks < 0 {
		return fmt.Errorf("ticks must not be negative: %d", snapTicks)
	}

	c := canvas.New(cols, rows, cfg.CanvasOptions())
	anim := galaxy.New(c, galaxy.NewSource(cfg.Seed))
	anim.Start()

	logger.Debug("simulating %d ticks on %dx%d cells", snapTicks, cols, rows)
	c.Draw(anim.Advance(snapTicks, cfg.FrameInterval()))

	if snapJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(anim.Stats()); err != nil {
			return fmt.Errorf("encode stats: %w", err)
		}
		return nil
	}

	out := c.String()
	if snapPlain {
		out = c.PlainString()
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// terminalSize returns stdout's size, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackCols, fallbackRows
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
