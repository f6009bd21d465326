// Package rng isolates every random draw the battle engine makes behind one
// seedable Source.
package rng

// Source produces the uniform draws the engine needs
type Source interface {
	// Intn returns a value in [0, n). n <= 1 always yields 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// Chance reports whether a percent roll succeeds. Rolls of 100 or more always
// succeed and 0 or less always fail; neither draws from src.
func Chance(src Source, percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	return src.Intn(100) < percent
}

// Probability reports whether a Float64 draw lands under p
func Probability(src Source, p float64) bool {
	return src.Float64() < p
}

// Between returns a uniform value in [lo, hi]
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Roll returns a 1..sides value, the way a percentile accuracy roll reads
func Roll(src Source, sides int) int {
	return src.Intn(sides) + 1
}
