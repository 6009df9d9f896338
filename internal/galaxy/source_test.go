package galaxy

// seqSource replays vals in order, then returns fallback forever.
type seqSource struct {
	vals     []float64
	i        int
	fallback float64
}

func (s *seqSource) Float64() float64 {
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return s.fallback
}

// forcedSource returns first for the next draw, then defers to rest.
type forcedSource struct {
	first float64
	used  bool
	rest  Source
}

func (s *forcedSource) Float64() float64 {
	if !s.used {
		s.used = true
		return s.first
	}
	return s.rest.Float64()
}

// fixedTarget is a Target with constant dimensions.
type fixedTarget struct{ w, h int }

func (t fixedTarget) Size() (int, int) { return t.w, t.h }
