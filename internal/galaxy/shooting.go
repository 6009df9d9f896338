package galaxy

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MaxShootingStars caps the transient population.
	MaxShootingStars = 2

	spawnChance      = 0.003
	shootingDecay    = 0.01
	shootingLifetime = 100 // ticks until opacity reaches zero
	trailMinLength   = 40
	trailMaxLength   = 120
	shootingMinSpeed = 4
	shootingMaxSpeed = 12
	angleJitter      = 0.3
	trailWidth       = 1.5
)

var trailColor = colorful.Color{R: 1, G: 1, B: 1}

// ShootingStar is a transient streak that fades out over shootingLifetime ticks.
type ShootingStar struct {
	X, Y    float64
	Angle   float64
	Length  float64
	Speed   float64
	Opacity float64

	age int
}

func newShootingStar(src Source, width, height int) ShootingStar {
	return ShootingStar{
		X:       src.Float64() * float64(width),
		Y:       src.Float64() * float64(height) * 0.5,
		Length:  between(src, trailMinLength, trailMaxLength),
		Speed:   between(src, shootingMinSpeed, shootingMaxSpeed),
		Angle:   math.Pi/4 + (src.Float64()-0.5)*angleJitter,
		Opacity: 1,
	}
}

// Tail returns the trailing end of the streak.
func (s ShootingStar) Tail() (float64, float64) {
	return s.X - math.Cos(s.Angle)*s.Length, s.Y - math.Sin(s.Angle)*s.Length
}

// advance moves the streak one tick and reports whether it is still alive.
func (s *ShootingStar) advance(width, height int) bool {
	s.X += math.Cos(s.Angle) * s.Speed
	s.Y += math.Sin(s.Angle) * s.Speed
	s.age++
	// Derived from the integer age so the 100th tick lands on exactly zero.
	s.Opacity = 1 - float64(s.age)*shootingDecay

	if s.age >= shootingLifetime || s.Opacity <= 0 {
		return false
	}
	return s.X <= float64(width) && s.Y <= float64(height)
}

func (s ShootingStar) render() Trail {
	tx, ty := s.Tail()
	return Trail{
		TailX: tx, TailY: ty,
		HeadX: s.X, HeadY: s.Y,
		Color:     trailColor,
		HeadAlpha: s.Opacity,
		Width:     trailWidth,
	}
}

// maybeSpawn draws once per tick and appends a new streak when the draw
// falls under the spawn chance and the population is below the cap.
func maybeSpawn(shooting []ShootingStar, src Source, width, height int) []ShootingStar {
	if src.Float64() < spawnChance && len(shooting) < MaxShootingStars {
		shooting = append(shooting, newShootingStar(src, width, height))
	}
	return shooting
}

// advanceShooting moves every streak and drops the dead ones in place.
func advanceShooting(shooting []ShootingStar, width, height int) []ShootingStar {
	live := shooting[:0]
	for i := range shooting {
		s := shooting[i]
		if s.advance(width, height) {
			live = append(live, s)
		}
	}
	return live
}
