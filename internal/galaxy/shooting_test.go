package galaxy

import (
	"math"
	"testing"
)

func TestMaybeSpawn_Forced800x600(t *testing.T) {
	src := &seqSource{vals: []float64{0, 0.5, 0.5, 0.5, 0.5, 0.5}}
	got := maybeSpawn(nil, src, 800, 600)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	s := got[0]
	if s.X != 400 || s.Y != 150 {
		t.Errorf("position = (%v, %v), want (400, 150)", s.X, s.Y)
	}
	if s.Length != 80 || s.Speed != 8 {
		t.Errorf("length/speed = %v/%v, want 80/8", s.Length, s.Speed)
	}
	if math.Abs(s.Angle-math.Pi/4) > 1e-12 {
		t.Errorf("angle = %v, want pi/4", s.Angle)
	}
	if s.Opacity != 1 {
		t.Errorf("opacity = %v, want 1", s.Opacity)
	}
}

func TestMaybeSpawn_Ranges(t *testing.T) {
	for seed := uint64(1); seed <= 2000; seed++ {
		src := &forcedSource{first: 0, rest: NewSource(seed)}
		got := maybeSpawn(nil, src, 800, 600)
		if len(got) != 1 {
			t.Fatalf("seed %d: len = %d, want 1", seed, len(got))
		}
		s := got[0]
		if s.X < 0 || s.X >= 800 || s.Y < 0 || s.Y >= 300 {
			t.Errorf("seed %d: position (%v, %v) outside [0,800)x[0,300)", seed, s.X, s.Y)
		}
		if s.Length < trailMinLength || s.Length >= trailMaxLength {
			t.Errorf("seed %d: length = %v, want [40, 120)", seed, s.Length)
		}
		if s.Speed < shootingMinSpeed || s.Speed >= shootingMaxSpeed {
			t.Errorf("seed %d: speed = %v, want [4, 12)", seed, s.Speed)
		}
		if s.Angle < math.Pi/4-0.15 || s.Angle > math.Pi/4+0.15 {
			t.Errorf("seed %d: angle = %v, want pi/4 +- 0.15", seed, s.Angle)
		}
	}
}

func TestMaybeSpawn_RespectsCapAndChance(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		draw     float64
		wantLen  int
	}{
		{"draw below chance spawns", 0, 0.001, 1},
		{"draw at chance does not spawn", 0, spawnChance, 0},
		{"draw above chance does not spawn", 1, 0.5, 1},
		{"one active still spawns", 1, 0, 2},
		{"cap reached", MaxShootingStars, 0, MaxShootingStars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shooting := make([]ShootingStar, tt.existing)
			src := &seqSource{vals: []float64{tt.draw}, fallback: 0.5}
			got := maybeSpawn(shooting, src, 800, 600)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestShootingStar_RemovedAfterExactly100Ticks(t *testing.T) {
	shooting := []ShootingStar{{X: 10, Y: 10, Angle: math.Pi / 4, Length: 80, Speed: 4, Opacity: 1}}

	for i := 1; i < shootingLifetime; i++ {
		shooting = advanceShooting(shooting, 100000, 100000)
		if len(shooting) != 1 {
			t.Fatalf("removed early after %d ticks", i)
		}
	}
	if shooting[0].Opacity <= 0 {
		t.Errorf("opacity after 99 ticks = %v, want > 0", shooting[0].Opacity)
	}

	shooting = advanceShooting(shooting, 100000, 100000)
	if len(shooting) != 0 {
		t.Errorf("still alive after %d ticks, opacity %v", shootingLifetime, shooting[0].Opacity)
	}
}

func TestShootingStar_RemovedOffEdges(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		angle float64
		alive bool
	}{
		{"exits right", 798, 10, 0, false},
		{"exits bottom", 10, 598, math.Pi / 2, false},
		{"inside", 100, 100, math.Pi / 4, true},
		{"left edge is not an exit", 1, 100, math.Pi - 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShootingStar{X: tt.x, Y: tt.y, Angle: tt.angle, Speed: 4, Length: 40, Opacity: 1}
			if got := s.advance(800, 600); got != tt.alive {
				t.Errorf("alive = %v, want %v (at %v, %v)", got, tt.alive, s.X, s.Y)
			}
		})
	}
}

func TestShootingStar_TailAndRender(t *testing.T) {
	s := ShootingStar{X: 100, Y: 100, Angle: 0, Length: 50, Opacity: 0.4}
	tx, ty := s.Tail()
	if tx != 50 || ty != 100 {
		t.Errorf("tail = (%v, %v), want (50, 100)", tx, ty)
	}

	tr := s.render()
	if tr.HeadX != 100 || tr.TailX != 50 {
		t.Errorf("trail head/tail x = %v/%v, want 100/50", tr.HeadX, tr.TailX)
	}
	if tr.HeadAlpha != 0.4 || tr.Width != 1.5 {
		t.Errorf("alpha/width = %v/%v, want 0.4/1.5", tr.HeadAlpha, tr.Width)
	}
}
