package galaxy

import colorful "github.com/lucasb-eyer/go-colorful"

// Command is one drawing instruction in a Frame. Commands are applied in order.
type Command interface {
	command()
}

// Clear wipes the whole surface.
type Clear struct {
	Width, Height int
}

// RadialGlow fills the surface with a radial gradient that fades from
// Color at Alpha in the centre to transparent at Radius.
type RadialGlow struct {
	X, Y   float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
}

// Circle is a filled disc.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
}

// Trail is a stroked line whose alpha ramps from 0 at the tail to HeadAlpha at the head.
type Trail struct {
	TailX, TailY float64
	HeadX, HeadY float64
	Color        colorful.Color
	HeadAlpha    float64
	Width        float64
}

func (Clear) command()      {}
func (RadialGlow) command() {}
func (Circle) command()     {}
func (Trail) command()      {}

// Frame is the output of a single tick.
type Frame struct {
	Tick     uint64
	Width    int
	Height   int
	Commands []Command
}

// Empty reports whether the frame draws nothing.
func (f Frame) Empty() bool {
	return len(f.Commands) == 0
}
