// Package galaxy animates a decorative star field: a fixed population of
// flickering, drifting stars, occasional shooting stars and two slowly
// wandering glow gradients. The animator owns all of its state and emits
// each tick as an ordered list of drawing commands, leaving rasterization
// to the caller.
package galaxy

import "time"

// State is the animator lifecycle.
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Target is the drawing surface the animator paints on.
type Target interface {
	Size() (width, height int)
}

// Animator is the per-frame update and render loop. It is not safe for
// concurrent use; the driver calls Tick and Resize from one goroutine.
type Animator struct {
	target Target
	src    Source
	state  State

	width  int
	height int
	tick   uint64

	stars    []Star
	shooting []ShootingStar
}

// New creates an idle animator. A nil target is allowed: Start will then
// leave the animator idle and every tick draws nothing.
func New(target Target, src Source) *Animator {
	if src == nil {
		src = NewSource(0)
	}
	return &Animator{
		target:   target,
		src:      src,
		stars:    make([]Star, 0, StarCount),
		shooting: make([]ShootingStar, 0, MaxShootingStars),
	}
}

// Start sizes the surface from the target, populates the stars and moves
// the animator to running. It reports whether the animator is running.
func (a *Animator) Start() bool {
	if a.state == StateRunning {
		return true
	}
	if a.target == nil {
		return false
	}
	w, h := a.target.Size()
	a.Resize(w, h)
	a.state = StateRunning
	return true
}

// Resize sets the surface dimensions and repopulates every star.
// Shooting stars in flight are kept.
func (a *Animator) Resize(width, height int) {
	if a.target == nil {
		return
	}
	a.width = width
	a.height = height
	a.stars = populate(a.stars, a.src, width, height)
}

// Reseed replaces the random source and repopulates the stars.
func (a *Animator) Reseed(src Source) {
	if src == nil {
		return
	}
	a.src = src
	a.Resize(a.width, a.height)
}

// Tick advances every population by one step and returns the frame to draw.
// elapsed is the time since the animator started and drives the glow layer.
func (a *Animator) Tick(elapsed time.Duration) Frame {
	if a.state != StateRunning {
		return Frame{}
	}
	a.tick++

	cmds := make([]Command, 0, 3+len(a.stars)+MaxShootingStars)
	cmds = append(cmds, Clear{Width: a.width, Height: a.height})

	for _, g := range glows(elapsed, a.width, a.height) {
		cmds = append(cmds, g)
	}

	for i := range a.stars {
		a.stars[i].advance(a.src, a.width, a.height)
		cmds = append(cmds, a.stars[i].render())
	}

	a.shooting = maybeSpawn(a.shooting, a.src, a.width, a.height)
	a.shooting = advanceShooting(a.shooting, a.width, a.height)
	for _, s := range a.shooting {
		cmds = append(cmds, s.render())
	}

	return Frame{
		Tick:     a.tick,
		Width:    a.width,
		Height:   a.height,
		Commands: cmds,
	}
}

// Advance runs n ticks spaced step apart, starting after the last tick,
// and returns the final frame.
func (a *Animator) Advance(n int, step time.Duration) Frame {
	var f Frame
	for i := 0; i < n; i++ {
		f = a.Tick(time.Duration(a.tick+1) * step)
	}
	return f
}

// State returns the lifecycle state.
func (a *Animator) State() State {
	return a.state
}

// Size returns the current surface dimensions.
func (a *Animator) Size() (int, int) {
	return a.width, a.height
}

// Stars returns a copy of the ambient population.
func (a *Animator) Stars() []Star {
	out := make([]Star, len(a.stars))
	copy(out, a.stars)
	return out
}

// ShootingStars returns a copy of the active shooting stars.
func (a *Animator) ShootingStars() []ShootingStar {
	out := make([]ShootingStar, len(a.shooting))
	copy(out, a.shooting)
	return out
}

// Stats summarizes the animator for status lines and headless export.
type Stats struct {
	State         string `json:"state"`
	Tick          uint64 `json:"tick"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Stars         int    `json:"stars"`
	ShootingStars int    `json:"shooting_stars"`
}

// Stats returns a snapshot of counters.
func (a *Animator) Stats() Stats {
	return Stats{
		State:         a.state.String(),
		Tick:          a.tick,
		Width:         a.width,
		Height:        a.height,
		Stars:         len(a.stars),
		ShootingStars: len(a.shooting),
	}
}
