package galaxy

import (
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	glowTeal   = colorful.Color{R: 45.0 / 255, G: 212.0 / 255, B: 191.0 / 255}
	glowOrange = colorful.Color{R: 1, G: 140.0 / 255, B: 66.0 / 255}
)

// glows computes the two drifting background gradients for the given time.
func glows(elapsed time.Duration, width, height int) [2]RadialGlow {
	t := float64(elapsed) / float64(time.Millisecond)
	w, h := float64(width), float64(height)

	return [2]RadialGlow{
		{
			X:      w*0.3 + math.Sin(t*0.0002)*50,
			Y:      h*0.4 + math.Cos(t*0.0003)*30,
			Radius: 350,
			Color:  glowTeal,
			Alpha:  0.03,
		},
		{
			X:      w*0.7 + math.Cos(t*0.00025)*40,
			Y:      h*0.2 + math.Sin(t*0.00035)*25,
			Radius: 300,
			Color:  glowOrange,
			Alpha:  0.025,
		},
	}
}
