package rng

// Scripted replays queued draws and falls back to fixed values once a queue
// runs dry. It exists for tests.
//
// The zero fallbacks (Int 0, Float 1.0) read as: every accuracy and chance
// roll succeeds, no critical hit, variance 1.0, paralysis never holds, freeze
// never thaws, sleep lasts one turn, and speed ties go to the first action.
type Scripted struct {
	ints   []int
	floats []float64

	// Int and Float are returned when the queues are empty
	Int   int
	Float float64

	// Draws counts every call, scripted or fallback
	Draws int
}

// NewScripted creates a source with the default fallbacks
func NewScripted() *Scripted {
	return &Scripted{Float: 1.0}
}

// Fixed creates a source that always returns i and f
func Fixed(i int, f float64) *Scripted {
	return &Scripted{Int: i, Float: f}
}

// QueueInts appends Intn results
func (s *Scripted) QueueInts(values ...int) *Scripted {
	s.ints = append(s.ints, values...)
	return s
}

// QueueFloats appends Float64 results
func (s *Scripted) QueueFloats(values ...float64) *Scripted {
	s.floats = append(s.floats, values...)
	return s
}

// Pending reports how many queued draws are left
func (s *Scripted) Pending() int {
	return len(s.ints) + len(s.floats)
}

// Intn implements Source. Queued values are clamped into [0, n).
func (s *Scripted) Intn(n int) int {
	s.Draws++
	v := s.Int
	if len(s.ints) > 0 {
		v, s.ints = s.ints[0], s.ints[1:]
	}
	if n <= 1 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Float64 implements Source. Unlike a real source it may return 1.0 so tests
// can pin variance at its maximum.
func (s *Scripted) Float64() float64 {
	s.Draws++
	v := s.Float
	if len(s.floats) > 0 {
		v, s.floats = s.floats[0], s.floats[1:]
	}
	return v
}
