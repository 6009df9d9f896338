package galaxy

import colorful "github.com/lucasb-eyer/go-colorful"

const (
	// StarCount is the fixed size of the ambient population.
	StarCount = 200

	starMinRadius  = 0.5
	starMaxRadius  = 2.5
	starMinSpeed   = 0.05
	starMaxSpeed   = 0.35
	flickerMin     = 0.005
	flickerMax     = 0.025
	flickerCeiling = 1.0
	flickerFloor   = 0.2
)

// Star palette: white, pale blue, pale orange.
var starPalette = [...]colorful.Color{
	{R: 1, G: 1, B: 1},
	{R: 180.0 / 255, G: 200.0 / 255, B: 1},
	{R: 1, G: 180.0 / 255, B: 120.0 / 255},
}

// Star is a persistent background particle that drifts down and wraps.
type Star struct {
	X, Y    float64
	Radius  float64
	Speed   float64
	Opacity float64
	Flicker float64
	Color   colorful.Color
}

func newStar(src Source, width, height int) Star {
	s := Star{
		X:       src.Float64() * float64(width),
		Y:       src.Float64() * float64(height),
		Radius:  between(src, starMinRadius, starMaxRadius),
		Speed:   between(src, starMinSpeed, starMaxSpeed),
		Opacity: src.Float64(),
		Flicker: between(src, flickerMin, flickerMax),
	}
	idx := int(src.Float64() * float64(len(starPalette)))
	if idx >= len(starPalette) {
		idx = len(starPalette) - 1
	}
	s.Color = starPalette[idx]
	return s
}

// advance applies one tick of flicker and fall. The bounds check runs after
// the increment, so opacity can overshoot by one step before turning.
func (s *Star) advance(src Source, width, height int) {
	s.Opacity += s.Flicker
	if s.Opacity >= flickerCeiling || s.Opacity <= flickerFloor {
		s.Flicker = -s.Flicker
	}

	s.Y += s.Speed
	if s.Y > float64(height) {
		s.Y = 0
		s.X = src.Float64() * float64(width)
	}
}

func (s Star) render() Circle {
	return Circle{X: s.X, Y: s.Y, Radius: s.Radius, Color: s.Color, Alpha: s.Opacity}
}

// populate discards stars and fills it with StarCount fresh ones.
func populate(stars []Star, src Source, width, height int) []Star {
	stars = stars[:0]
	for i := 0; i < StarCount; i++ {
		stars = append(stars, newStar(src, width, height))
	}
	return stars
}
